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

// DonorService wraps donor records with conventional operations.
type DonorService interface {
	Create(ctx context.Context, req dto.DonorCreateRequest) (dto.DonorResponse, error)
	Get(ctx context.Context, id uint) (dto.DonorResponse, error)
	List(ctx context.Context) ([]dto.DonorResponse, error)
}

type donorService struct {
	donors    repository.DonorRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewDonorService constructs the donor service.
func NewDonorService(donorRepo repository.DonorRepository, validate *validator.Validate, logger zerolog.Logger) DonorService {
	return &donorService{
		donors:    donorRepo,
		validator: validate,
		logger:    logger.With().Str("component", "donor_service").Logger(),
	}
}

func (s *donorService) Create(ctx context.Context, req dto.DonorCreateRequest) (dto.DonorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.DonorResponse{}, err
	}

	donor := models.Donor{
		FullName: strings.TrimSpace(req.FullName),
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	if err := s.donors.Create(ctx, &donor); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist donor")
		return dto.DonorResponse{}, err
	}

	return dto.NewDonorResponse(donor), nil
}

func (s *donorService) Get(ctx context.Context, id uint) (dto.DonorResponse, error) {
	donor, err := s.donors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DonorResponse{}, fmt.Errorf("donor %d: %w", id, ErrDonorNotFound)
		}
		return dto.DonorResponse{}, err
	}

	return dto.NewDonorResponse(donor), nil
}

func (s *donorService) List(ctx context.Context) ([]dto.DonorResponse, error) {
	donors, err := s.donors.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewDonorResponseSlice(donors), nil
}
