package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/models"
	"github.com/harborlight/orphanage-api/internal/repository"
)

// StaffService wraps staff records with conventional operations.
type StaffService interface {
	Create(ctx context.Context, req dto.StaffCreateRequest) (dto.StaffResponse, error)
	Get(ctx context.Context, id uint) (dto.StaffResponse, error)
	List(ctx context.Context) ([]dto.StaffResponse, error)
}

type staffService struct {
	staff     repository.StaffRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStaffService constructs the staff service.
func NewStaffService(staffRepo repository.StaffRepository, validate *validator.Validate, logger zerolog.Logger) StaffService {
	return &staffService{
		staff:     staffRepo,
		validator: validate,
		logger:    logger.With().Str("component", "staff_service").Logger(),
	}
}

func (s *staffService) Create(ctx context.Context, req dto.StaffCreateRequest) (dto.StaffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.StaffResponse{}, err
	}

	staff := models.Staff{
		FullName: strings.TrimSpace(req.FullName),
		Position: strings.TrimSpace(req.Position),
		Email:    req.Email,
		Phone:    req.Phone,
		HiredAt:  req.HiredAt,
	}

	if err := s.staff.Create(ctx, &staff); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist staff")
		return dto.StaffResponse{}, err
	}

	return dto.NewStaffResponse(staff), nil
}

func (s *staffService) Get(ctx context.Context, id uint) (dto.StaffResponse, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StaffResponse{}, fmt.Errorf("staff %d: %w", id, ErrStaffNotFound)
		}
		return dto.StaffResponse{}, err
	}

	return dto.NewStaffResponse(staff), nil
}

func (s *staffService) List(ctx context.Context) ([]dto.StaffResponse, error) {
	staff, err := s.staff.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewStaffResponseSlice(staff), nil
}
