package dto

import (
	"time"

	"github.com/harborlight/orphanage-api/internal/models"
)

// ChildCreateRequest captures the payload for registering a child.
type ChildCreateRequest struct {
	FullName   string    `json:"full_name" validate:"required"`
	BirthDate  time.Time `json:"birth_date" validate:"required"`
	Gender     string    `json:"gender"`
	AdmittedAt time.Time `json:"admitted_at" validate:"required"`
	Background *string   `json:"background"`
}

// ChildUpdateRequest is a partial update for a child record.
type ChildUpdateRequest struct {
	FullName   Optional[string]             `json:"full_name"`
	BirthDate  Optional[time.Time]          `json:"birth_date"`
	Gender     Optional[string]             `json:"gender"`
	Background Optional[string]             `json:"background"`
	Status     Optional[models.ChildStatus] `json:"status"`
}

// ChildResponse serializes a child for API clients.
type ChildResponse struct {
	ID         uint               `json:"id"`
	FullName   string             `json:"full_name"`
	BirthDate  time.Time          `json:"birth_date"`
	Gender     string             `json:"gender"`
	AdmittedAt time.Time          `json:"admitted_at"`
	Background *string            `json:"background"`
	Status     models.ChildStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// NewChildResponse converts a model into a DTO.
func NewChildResponse(model models.Child) ChildResponse {
	return ChildResponse{
		ID:         model.ID,
		FullName:   model.FullName,
		BirthDate:  model.BirthDate,
		Gender:     model.Gender,
		AdmittedAt: model.AdmittedAt,
		Background: model.Background,
		Status:     model.Status,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// NewChildResponseSlice converts a slice of models into DTOs.
func NewChildResponseSlice(children []models.Child) []ChildResponse {
	responses := make([]ChildResponse, 0, len(children))
	for _, child := range children {
		responses = append(responses, NewChildResponse(child))
	}

	return responses
}
