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

// ChildService wraps child records with conventional create/read/update
// operations.
type ChildService interface {
	Create(ctx context.Context, req dto.ChildCreateRequest) (dto.ChildResponse, error)
	Get(ctx context.Context, id uint) (dto.ChildResponse, error)
	List(ctx context.Context) ([]dto.ChildResponse, error)
	Update(ctx context.Context, id uint, req dto.ChildUpdateRequest) (dto.ChildResponse, error)
}

type childService struct {
	children  repository.ChildRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewChildService constructs the child service.
func NewChildService(childRepo repository.ChildRepository, validate *validator.Validate, logger zerolog.Logger) ChildService {
	return &childService{
		children:  childRepo,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "child_service").Logger(),
	}
}

func (s *childService) Create(ctx context.Context, req dto.ChildCreateRequest) (dto.ChildResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ChildResponse{}, err
	}

	child := models.Child{
		FullName:   strings.TrimSpace(req.FullName),
		BirthDate:  req.BirthDate,
		Gender:     req.Gender,
		AdmittedAt: req.AdmittedAt,
		Status:     models.ChildStatusActive,
	}
	if req.Background != nil {
		background := s.sanitizer.Sanitize(*req.Background)
		child.Background = &background
	}

	if err := s.children.Create(ctx, &child); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist child")
		return dto.ChildResponse{}, err
	}

	return dto.NewChildResponse(child), nil
}

func (s *childService) Get(ctx context.Context, id uint) (dto.ChildResponse, error) {
	child, err := s.children.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ChildResponse{}, fmt.Errorf("child %d: %w", id, ErrChildNotFound)
		}
		return dto.ChildResponse{}, err
	}

	return dto.NewChildResponse(child), nil
}

func (s *childService) List(ctx context.Context) ([]dto.ChildResponse, error) {
	children, err := s.children.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewChildResponseSlice(children), nil
}

func (s *childService) Update(ctx context.Context, id uint, req dto.ChildUpdateRequest) (dto.ChildResponse, error) {
	fields := map[string]interface{}{}

	if req.FullName.Present() {
		name, ok := req.FullName.Value()
		if !ok || strings.TrimSpace(name) == "" {
			return dto.ChildResponse{}, fmt.Errorf("full_name must not be empty: %w", ErrInvalidField)
		}
		fields["full_name"] = strings.TrimSpace(name)
	}

	if req.BirthDate.Present() {
		date, ok := req.BirthDate.Value()
		if !ok {
			return dto.ChildResponse{}, fmt.Errorf("birth_date must not be null: %w", ErrInvalidField)
		}
		fields["birth_date"] = date
	}

	if req.Gender.Present() {
		gender, _ := req.Gender.Value()
		fields["gender"] = gender
	}

	if req.Background.Present() {
		if background, ok := req.Background.Value(); ok {
			fields["background"] = s.sanitizer.Sanitize(background)
		} else {
			fields["background"] = nil
		}
	}

	if req.Status.Present() {
		status, ok := req.Status.Value()
		if !ok {
			return dto.ChildResponse{}, fmt.Errorf("status must not be null: %w", ErrInvalidField)
		}
		fields["status"] = status
	}

	child, err := s.children.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ChildResponse{}, fmt.Errorf("child %d: %w", id, ErrChildNotFound)
		}
		return dto.ChildResponse{}, err
	}

	return dto.NewChildResponse(child), nil
}
