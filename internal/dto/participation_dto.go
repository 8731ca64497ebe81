package dto

import (
	"time"

	"github.com/harborlight/orphanage-api/internal/models"
)

// EnrollmentRequest captures the payload for enrolling a child into an
// activity. The caller chooses the initial status.
type EnrollmentRequest struct {
	ActivityID uint                       `json:"activity_id" validate:"required"`
	ChildID    uint                       `json:"child_id" validate:"required"`
	Status     models.ParticipationStatus `json:"status" validate:"required"`
	Notes      *string                    `json:"notes"`
}

// ParticipationStatusUpdateRequest carries the status-only update.
type ParticipationStatusUpdateRequest struct {
	Status models.ParticipationStatus `json:"status" validate:"required"`
}

// ParticipationResponse serializes an enrollment for API clients.
type ParticipationResponse struct {
	ID           uint                       `json:"id"`
	ActivityID   uint                       `json:"activity_id"`
	ChildID      uint                       `json:"child_id"`
	Status       models.ParticipationStatus `json:"status"`
	Notes        *string                    `json:"notes"`
	RegisteredAt time.Time                  `json:"registered_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// RemovalResponse reports whether a removal deleted a row.
type RemovalResponse struct {
	Success bool `json:"success"`
}

// NewParticipationResponse converts a model into a DTO.
func NewParticipationResponse(model models.ActivityParticipation) ParticipationResponse {
	return ParticipationResponse{
		ID:           model.ID,
		ActivityID:   model.ActivityID,
		ChildID:      model.ChildID,
		Status:       model.Status,
		Notes:        model.Notes,
		RegisteredAt: model.RegisteredAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// NewParticipationResponseSlice converts a slice of models into DTOs.
func NewParticipationResponseSlice(participations []models.ActivityParticipation) []ParticipationResponse {
	responses := make([]ParticipationResponse, 0, len(participations))
	for _, participation := range participations {
		responses = append(responses, NewParticipationResponse(participation))
	}

	return responses
}
