package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/models"
	"github.com/harborlight/orphanage-api/internal/repository"
)

// ExpenseService records and lists expenses. The recording staff
// reference is validated at creation time only.
type ExpenseService interface {
	Create(ctx context.Context, req dto.ExpenseCreateRequest) (dto.ExpenseResponse, error)
	List(ctx context.Context) ([]dto.ExpenseResponse, error)
}

type expenseService struct {
	expenses  repository.ExpenseRepository
	staff     repository.StaffRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewExpenseService constructs the expense service.
func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	staffRepo repository.StaffRepository,
	validate *validator.Validate,
	logger zerolog.Logger,
) ExpenseService {
	return &expenseService{
		expenses:  expenseRepo,
		staff:     staffRepo,
		validator: validate,
		logger:    logger.With().Str("component", "expense_service").Logger(),
		now:       time.Now,
	}
}

func (s *expenseService) Create(ctx context.Context, req dto.ExpenseCreateRequest) (dto.ExpenseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ExpenseResponse{}, err
	}

	exists, err := s.staff.Exists(ctx, req.RecordedBy)
	if err != nil {
		return dto.ExpenseResponse{}, err
	}
	if !exists {
		return dto.ExpenseResponse{}, fmt.Errorf("staff %d: %w", req.RecordedBy, ErrStaffNotFound)
	}

	incurredAt := req.IncurredAt
	if incurredAt.IsZero() {
		incurredAt = s.now()
	}

	expense := models.Expense{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		RecordedBy:  req.RecordedBy,
		IncurredAt:  incurredAt,
	}

	if err := s.expenses.Create(ctx, &expense); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist expense")
		return dto.ExpenseResponse{}, err
	}

	return dto.NewExpenseResponse(expense), nil
}

func (s *expenseService) List(ctx context.Context) ([]dto.ExpenseResponse, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewExpenseResponseSlice(expenses), nil
}
