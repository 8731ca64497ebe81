package dto

import (
	"time"

	"github.com/harborlight/orphanage-api/internal/models"
)

// ActivityCreateRequest captures the payload for creating an activity.
// Status is never part of the payload: new activities always start PLANNED.
type ActivityCreateRequest struct {
	Title           string    `json:"title" validate:"required"`
	Description     *string   `json:"description"`
	ActivityDate    time.Time `json:"activity_date" validate:"required"`
	Location        *string   `json:"location"`
	MaxParticipants *int      `json:"max_participants" validate:"omitempty,gt=0"`
	CreatedBy       uint      `json:"created_by" validate:"required"`
}

// ActivityUpdateRequest is a partial update. Optional wrappers keep
// "omitted" and "explicit null" apart for the nullable columns.
type ActivityUpdateRequest struct {
	Title           Optional[string]    `json:"title"`
	Description     Optional[string]    `json:"description"`
	ActivityDate    Optional[time.Time] `json:"activity_date"`
	Location        Optional[string]    `json:"location"`
	MaxParticipants Optional[int]       `json:"max_participants"`
	CreatedBy       Optional[uint]      `json:"created_by"`
}

// ActivityStatusUpdateRequest carries the status-only update.
type ActivityStatusUpdateRequest struct {
	Status models.ActivityStatus `json:"status" validate:"required"`
}

// ActivityResponse serializes an activity for API clients.
type ActivityResponse struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     *string               `json:"description"`
	ActivityDate    time.Time             `json:"activity_date"`
	Location        *string               `json:"location"`
	Status          models.ActivityStatus `json:"status"`
	MaxParticipants *int                  `json:"max_participants"`
	CreatedBy       uint                  `json:"created_by"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// NewActivityResponse converts a model into a DTO.
func NewActivityResponse(model models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:              model.ID,
		Title:           model.Title,
		Description:     model.Description,
		ActivityDate:    model.ActivityDate,
		Location:        model.Location,
		Status:          model.Status,
		MaxParticipants: model.MaxParticipants,
		CreatedBy:       model.CreatedBy,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// NewActivityResponseSlice converts a slice of models into DTOs.
func NewActivityResponseSlice(activities []models.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, NewActivityResponse(activity))
	}

	return responses
}
