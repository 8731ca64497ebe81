package dto

import (
	"time"

	"github.com/harborlight/orphanage-api/internal/models"
)

// StaffCreateRequest captures the payload for registering a staff member.
type StaffCreateRequest struct {
	FullName string    `json:"full_name" validate:"required"`
	Position string    `json:"position" validate:"required"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Phone    string    `json:"phone"`
	HiredAt  time.Time `json:"hired_at"`
}

// StaffResponse serializes a staff member for API clients.
type StaffResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Position  string    `json:"position"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	HiredAt   time.Time `json:"hired_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStaffResponse converts a model into a DTO.
func NewStaffResponse(model models.Staff) StaffResponse {
	return StaffResponse{
		ID:        model.ID,
		FullName:  model.FullName,
		Position:  model.Position,
		Email:     model.Email,
		Phone:     model.Phone,
		HiredAt:   model.HiredAt,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewStaffResponseSlice converts a slice of models into DTOs.
func NewStaffResponseSlice(staff []models.Staff) []StaffResponse {
	responses := make([]StaffResponse, 0, len(staff))
	for _, member := range staff {
		responses = append(responses, NewStaffResponse(member))
	}

	return responses
}
