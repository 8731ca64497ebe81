package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/models"
	"github.com/harborlight/orphanage-api/internal/repository"
)

// DonationService records and lists donations. The donor reference is
// validated at creation time only.
type DonationService interface {
	Create(ctx context.Context, req dto.DonationCreateRequest) (dto.DonationResponse, error)
	List(ctx context.Context) ([]dto.DonationResponse, error)
	ListByDonor(ctx context.Context, donorID uint) ([]dto.DonationResponse, error)
}

type donationService struct {
	donations repository.DonationRepository
	donors    repository.DonorRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewDonationService constructs the donation service.
func NewDonationService(
	donationRepo repository.DonationRepository,
	donorRepo repository.DonorRepository,
	validate *validator.Validate,
	logger zerolog.Logger,
) DonationService {
	return &donationService{
		donations: donationRepo,
		donors:    donorRepo,
		validator: validate,
		logger:    logger.With().Str("component", "donation_service").Logger(),
		now:       time.Now,
	}
}

func (s *donationService) Create(ctx context.Context, req dto.DonationCreateRequest) (dto.DonationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.DonationResponse{}, err
	}

	exists, err := s.donors.Exists(ctx, req.DonorID)
	if err != nil {
		return dto.DonationResponse{}, err
	}
	if !exists {
		return dto.DonationResponse{}, fmt.Errorf("donor %d: %w", req.DonorID, ErrDonorNotFound)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	receivedAt := req.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = s.now()
	}

	donation := models.Donation{
		DonorID:    req.DonorID,
		Amount:     req.Amount,
		Currency:   currency,
		Type:       req.Type,
		Note:       req.Note,
		ReceivedAt: receivedAt,
	}

	if err := s.donations.Create(ctx, &donation); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist donation")
		return dto.DonationResponse{}, err
	}

	s.logger.Info().
		Uint("donation_id", donation.ID).
		Uint("donor_id", donation.DonorID).
		Float64("amount", donation.Amount).
		Msg("donation recorded")

	return dto.NewDonationResponse(donation), nil
}

func (s *donationService) List(ctx context.Context) ([]dto.DonationResponse, error) {
	donations, err := s.donations.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewDonationResponseSlice(donations), nil
}

func (s *donationService) ListByDonor(ctx context.Context, donorID uint) ([]dto.DonationResponse, error) {
	donations, err := s.donations.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}

	return dto.NewDonationResponseSlice(donations), nil
}
