package dto

import (
	"time"

	"github.com/edusign/edusign-api/internal/models"
)

// UserCreateRequest describes the payload for account creation. Google
// sign-ups reuse the same shape via the dedicated route.
type UserCreateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"omitempty,max=128"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

// UserFilter describes query string filters for listing users.
type UserFilter struct {
	Email string `query:"email"`
}

// UserResponse is returned to API clients when viewing users.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	GoogleAuth bool      `json:"google_auth,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUserResponse converts a User model into a DTO.
func NewUserResponse(model models.User) UserResponse {
	return UserResponse{
		ID:         model.ID.Hex(),
		Email:      model.Email,
		Name:       model.Name,
		PhotoURL:   model.PhotoURL,
		GoogleAuth: model.GoogleAuth,
		CreatedAt:  model.CreatedAt,
	}
}

// NewUserResponseSlice converts user models into DTOs.
func NewUserResponseSlice(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}

	return responses
}
