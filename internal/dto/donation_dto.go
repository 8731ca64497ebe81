package dto

import (
	"time"

	"github.com/harborlight/orphanage-api/internal/models"
)

// DonationCreateRequest captures the payload for recording a donation.
type DonationCreateRequest struct {
	DonorID    uint                `json:"donor_id" validate:"required"`
	Amount     float64             `json:"amount" validate:"required,gt=0"`
	Currency   string              `json:"currency"`
	Type       models.DonationType `json:"type" validate:"required"`
	Note       *string             `json:"note"`
	ReceivedAt time.Time           `json:"received_at"`
}

// DonationResponse serializes a donation for API clients.
type DonationResponse struct {
	ID         uint                `json:"id"`
	DonorID    uint                `json:"donor_id"`
	Amount     float64             `json:"amount"`
	Currency   string              `json:"currency"`
	Type       models.DonationType `json:"type"`
	Note       *string             `json:"note"`
	ReceivedAt time.Time           `json:"received_at"`
	CreatedAt  time.Time           `json:"created_at"`
}

// NewDonationResponse converts a model into a DTO.
func NewDonationResponse(model models.Donation) DonationResponse {
	return DonationResponse{
		ID:         model.ID,
		DonorID:    model.DonorID,
		Amount:     model.Amount,
		Currency:   model.Currency,
		Type:       model.Type,
		Note:       model.Note,
		ReceivedAt: model.ReceivedAt,
		CreatedAt:  model.CreatedAt,
	}
}

// NewDonationResponseSlice converts a slice of models into DTOs.
func NewDonationResponseSlice(donations []models.Donation) []DonationResponse {
	responses := make([]DonationResponse, 0, len(donations))
	for _, donation := range donations {
		responses = append(responses, NewDonationResponse(donation))
	}

	return responses
}
