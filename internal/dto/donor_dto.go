package dto

import (
	"time"

	"github.com/harborlight/orphanage-api/internal/models"
)

// DonorCreateRequest captures the payload for registering a donor.
type DonorCreateRequest struct {
	FullName string  `json:"full_name" validate:"required"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Phone    string  `json:"phone"`
	Address  *string `json:"address"`
}

// DonorResponse serializes a donor for API clients.
type DonorResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDonorResponse converts a model into a DTO.
func NewDonorResponse(model models.Donor) DonorResponse {
	return DonorResponse{
		ID:        model.ID,
		FullName:  model.FullName,
		Email:     model.Email,
		Phone:     model.Phone,
		Address:   model.Address,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewDonorResponseSlice converts a slice of models into DTOs.
func NewDonorResponseSlice(donors []models.Donor) []DonorResponse {
	responses := make([]DonorResponse, 0, len(donors))
	for _, donor := range donors {
		responses = append(responses, NewDonorResponse(donor))
	}

	return responses
}
