package dto

import (
	"time"

	"github.com/harborlight/orphanage-api/internal/models"
)

// ExpenseCreateRequest captures the payload for recording an expense.
type ExpenseCreateRequest struct {
	Category    string    `json:"category" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Description *string   `json:"description"`
	RecordedBy  uint      `json:"recorded_by" validate:"required"`
	IncurredAt  time.Time `json:"incurred_at"`
}

// ExpenseResponse serializes an expense for API clients.
type ExpenseResponse struct {
	ID          uint      `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description *string   `json:"description"`
	RecordedBy  uint      `json:"recorded_by"`
	IncurredAt  time.Time `json:"incurred_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewExpenseResponse converts a model into a DTO.
func NewExpenseResponse(model models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          model.ID,
		Category:    model.Category,
		Amount:      model.Amount,
		Description: model.Description,
		RecordedBy:  model.RecordedBy,
		IncurredAt:  model.IncurredAt,
		CreatedAt:   model.CreatedAt,
	}
}

// NewExpenseResponseSlice converts a slice of models into DTOs.
func NewExpenseResponseSlice(expenses []models.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, NewExpenseResponse(expense))
	}

	return responses
}
