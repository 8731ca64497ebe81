package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/models"
	"github.com/harborlight/orphanage-api/internal/repository"
)

// ActivityService manages the activity lifecycle: creation, partial
// metadata updates and status transitions. Status transitions are
// deliberately unrestricted; there is no transition table.
type ActivityService interface {
	Create(ctx context.Context, req dto.ActivityCreateRequest) (dto.ActivityResponse, error)
	List(ctx context.Context) ([]dto.ActivityResponse, error)
	Get(ctx context.Context, id uint) (dto.ActivityResponse, error)
	Update(ctx context.Context, id uint, req dto.ActivityUpdateRequest) (dto.ActivityResponse, error)
	UpdateStatus(ctx context.Context, id uint, status models.ActivityStatus) (dto.ActivityResponse, error)
}

type activityService struct {
	activities repository.ActivityRepository
	staff      repository.StaffRepository
	validator  *validator.Validate
	sanitizer  *bluemonday.Policy
	logger     zerolog.Logger
}

// NewActivityService constructs the activity service.
func NewActivityService(
	activityRepo repository.ActivityRepository,
	staffRepo repository.StaffRepository,
	validate *validator.Validate,
	logger zerolog.Logger,
) ActivityService {
	return &activityService{
		activities: activityRepo,
		staff:      staffRepo,
		validator:  validate,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     logger.With().Str("component", "activity_service").Logger(),
	}
}

func (s *activityService) Create(ctx context.Context, req dto.ActivityCreateRequest) (dto.ActivityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ActivityResponse{}, err
	}

	if err := s.ensureStaffExists(ctx, req.CreatedBy); err != nil {
		return dto.ActivityResponse{}, err
	}

	activity := models.Activity{
		Title:           s.sanitizeText(req.Title),
		Description:     s.sanitizeOptionalText(req.Description),
		ActivityDate:    req.ActivityDate,
		Location:        s.sanitizeOptionalText(req.Location),
		Status:          models.ActivityStatusPlanned,
		MaxParticipants: req.MaxParticipants,
		CreatedBy:       req.CreatedBy,
	}

	if err := s.activities.Create(ctx, &activity); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist activity")
		return dto.ActivityResponse{}, err
	}

	s.logger.Info().
		Uint("activity_id", activity.ID).
		Uint("created_by", activity.CreatedBy).
		Msg("activity created")

	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) List(ctx context.Context) ([]dto.ActivityResponse, error) {
	activities, err := s.activities.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewActivityResponseSlice(activities), nil
}

func (s *activityService) Get(ctx context.Context, id uint) (dto.ActivityResponse, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ActivityResponse{}, fmt.Errorf("activity %d: %w", id, ErrActivityNotFound)
		}
		return dto.ActivityResponse{}, err
	}

	return dto.NewActivityResponse(activity), nil
}

// Update applies a partial update. Fields absent from the payload keep
// their prior values; an explicit null clears a nullable column. Status
// is never touched here.
func (s *activityService) Update(ctx context.Context, id uint, req dto.ActivityUpdateRequest) (dto.ActivityResponse, error) {
	fields := map[string]interface{}{}

	if req.Title.Present() {
		title, ok := req.Title.Value()
		if !ok || strings.TrimSpace(title) == "" {
			return dto.ActivityResponse{}, fmt.Errorf("title must not be empty: %w", ErrInvalidField)
		}
		fields["title"] = s.sanitizeText(title)
	}

	if req.Description.Present() {
		if description, ok := req.Description.Value(); ok {
			fields["description"] = s.sanitizeText(description)
		} else {
			fields["description"] = nil
		}
	}

	if req.ActivityDate.Present() {
		date, ok := req.ActivityDate.Value()
		if !ok {
			return dto.ActivityResponse{}, fmt.Errorf("activity_date must not be null: %w", ErrInvalidField)
		}
		fields["activity_date"] = date
	}

	if req.Location.Present() {
		if location, ok := req.Location.Value(); ok {
			fields["location"] = s.sanitizeText(location)
		} else {
			fields["location"] = nil
		}
	}

	if req.MaxParticipants.Present() {
		if max, ok := req.MaxParticipants.Value(); ok {
			if max <= 0 {
				return dto.ActivityResponse{}, fmt.Errorf("max_participants must be positive: %w", ErrInvalidField)
			}
			fields["max_participants"] = max
		} else {
			fields["max_participants"] = nil
		}
	}

	if req.CreatedBy.Present() {
		staffID, ok := req.CreatedBy.Value()
		if !ok {
			return dto.ActivityResponse{}, fmt.Errorf("created_by must not be null: %w", ErrInvalidField)
		}
		if err := s.ensureStaffExists(ctx, staffID); err != nil {
			return dto.ActivityResponse{}, err
		}
		fields["created_by"] = staffID
	}

	activity, err := s.activities.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ActivityResponse{}, fmt.Errorf("activity %d: %w", id, ErrActivityNotFound)
		}
		return dto.ActivityResponse{}, err
	}

	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) UpdateStatus(ctx context.Context, id uint, status models.ActivityStatus) (dto.ActivityResponse, error) {
	if !status.Valid() {
		return dto.ActivityResponse{}, fmt.Errorf("unknown activity status %q: %w", status, ErrInvalidField)
	}

	activity, err := s.activities.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ActivityResponse{}, fmt.Errorf("activity %d: %w", id, ErrActivityNotFound)
		}
		return dto.ActivityResponse{}, err
	}

	s.logger.Info().
		Uint("activity_id", id).
		Str("status", string(status)).
		Msg("activity status updated")

	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) ensureStaffExists(ctx context.Context, staffID uint) error {
	exists, err := s.staff.Exists(ctx, staffID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("staff %d: %w", staffID, ErrStaffNotFound)
	}
	return nil
}

func (s *activityService) sanitizeText(input string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(input))
}

func (s *activityService) sanitizeOptionalText(input *string) *string {
	if input == nil {
		return nil
	}
	sanitized := s.sanitizeText(*input)
	return &sanitized
}
