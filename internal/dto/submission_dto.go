package dto

import (
	"time"

	"github.com/edusign/edusign-api/internal/models"
)

// SubmissionCreateRequest describes the payload for submitting an assignment.
type SubmissionCreateRequest struct {
	AssignmentID  string `json:"assignment_id" validate:"required,len=24,hexadecimal"`
	UserEmail     string `json:"user_email" validate:"required,email"`
	UserName      string `json:"user_name" validate:"omitempty,max=128"`
	GoogleDocsURL string `json:"google_docs_url" validate:"omitempty,url"`
	Note          string `json:"note" validate:"omitempty,max=2048"`
}

// SubmissionGradeRequest carries the examiner's grading payload. Only these
// fields are written; the rest of the document is left untouched.
type SubmissionGradeRequest struct {
	ObtainedMarks float64 `json:"obtained_marks" validate:"gte=0"`
	Feedback      string  `json:"feedback" validate:"omitempty,max=2048"`
}

// SubmissionFilter describes query string filters for listing submissions.
type SubmissionFilter struct {
	UserEmail string `query:"user_email"`
	Status    string `query:"status"`
}

// SubmissionResponse is returned to API clients when viewing submissions.
type SubmissionResponse struct {
	ID               string    `json:"id"`
	AssignmentID     string    `json:"assignment_id"`
	UserEmail        string    `json:"user_email"`
	UserName         string    `json:"user_name,omitempty"`
	GoogleDocsURL    string    `json:"google_docs_url,omitempty"`
	Note             string    `json:"note,omitempty"`
	Status           string    `json:"status"`
	ObtainedMarks    *float64  `json:"obtained_marks"`
	ExaminerFeedback string    `json:"examiner_feedback,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewSubmissionResponse converts a Submission model into a DTO.
func NewSubmissionResponse(model models.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:               model.ID.Hex(),
		AssignmentID:     model.AssignmentID,
		UserEmail:        model.UserEmail,
		UserName:         model.UserName,
		GoogleDocsURL:    model.GoogleDocsURL,
		Note:             model.Note,
		Status:           model.Status,
		ObtainedMarks:    model.ObtainedMarks,
		ExaminerFeedback: model.ExaminerFeedback,
		CreatedAt:        model.CreatedAt,
	}
}

// NewSubmissionResponseSlice converts submission models into DTOs.
func NewSubmissionResponseSlice(submissions []models.Submission) []SubmissionResponse {
	responses := make([]SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, NewSubmissionResponse(submission))
	}

	return responses
}
