package dto

import (
	"time"

	"github.com/edusign/edusign-api/internal/models"
)

// AssignmentCreateRequest describes the payload for assignment creation.
// The same shape is used for the replace-style update.
type AssignmentCreateRequest struct {
	Title        string  `json:"title" validate:"required,max=256"`
	Description  string  `json:"description" validate:"required"`
	Subject      string  `json:"subject" validate:"required,max=128"`
	Difficulty   string  `json:"difficulty" validate:"required,max=64"`
	TotalMarks   float64 `json:"total_marks" validate:"required,gt=0"`
	DueDate      string  `json:"due_date" validate:"omitempty,max=64"`
	ThumbnailURL string  `json:"thumbnail_url" validate:"omitempty,url"`
	CreatorEmail string  `json:"creator_email" validate:"omitempty,email"`
	CreatorName  string  `json:"creator_name" validate:"omitempty,max=128"`
}

// Model converts the request into an Assignment document.
func (r AssignmentCreateRequest) Model() models.Assignment {
	return models.Assignment{
		Title:        r.Title,
		Description:  r.Description,
		Subject:      r.Subject,
		Difficulty:   r.Difficulty,
		TotalMarks:   r.TotalMarks,
		DueDate:      r.DueDate,
		ThumbnailURL: r.ThumbnailURL,
		CreatorEmail: r.CreatorEmail,
		CreatorName:  r.CreatorName,
	}
}

// AssignmentFilter describes query string filters for listing assignments.
type AssignmentFilter struct {
	Difficulty string `query:"difficulty"`
	Subject    string `query:"subject"`
	Search     string `query:"search"`
	Sort       string `query:"sort"`
}

// AssignmentResponse is returned to API clients when viewing assignments.
type AssignmentResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Subject      string    `json:"subject"`
	Difficulty   string    `json:"difficulty"`
	TotalMarks   float64   `json:"total_marks"`
	DueDate      string    `json:"due_date,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatorEmail string    `json:"creator_email,omitempty"`
	CreatorName  string    `json:"creator_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewAssignmentResponse converts an Assignment model into a DTO.
func NewAssignmentResponse(model models.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           model.ID.Hex(),
		Title:        model.Title,
		Description:  model.Description,
		Subject:      model.Subject,
		Difficulty:   model.Difficulty,
		TotalMarks:   model.TotalMarks,
		DueDate:      model.DueDate,
		ThumbnailURL: model.ThumbnailURL,
		CreatorEmail: model.CreatorEmail,
		CreatorName:  model.CreatorName,
		CreatedAt:    model.CreatedAt,
	}
}

// NewAssignmentResponseSlice converts assignment models into DTOs.
func NewAssignmentResponseSlice(assignments []models.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment))
	}

	return responses
}
