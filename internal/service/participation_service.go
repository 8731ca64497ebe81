package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/models"
	"github.com/harborlight/orphanage-api/internal/observability"
	"github.com/harborlight/orphanage-api/internal/repository"
)

// EventPublisher publishes participation lifecycle events. *nats.Conn
// satisfies it directly.
type EventPublisher interface {
	Publish(subject string, data []byte) error
}

type participationEvent struct {
	Type            string                     `json:"type"`
	ParticipationID uint                       `json:"participation_id"`
	ActivityID      uint                       `json:"activity_id,omitempty"`
	ChildID         uint                       `json:"child_id,omitempty"`
	Status          models.ParticipationStatus `json:"status,omitempty"`
	OccurredAt      time.Time                  `json:"occurred_at"`
}

// ParticipationService enrolls children into activities under the
// capacity and uniqueness invariants, and manages per-enrollment status
// and removal. A CANCELLED row still blocks re-enrollment of the same
// pair; freeing the slot requires an explicit removal. This mirrors the
// current product behaviour and is not to be relaxed without sign-off.
type ParticipationService interface {
	Enroll(ctx context.Context, req dto.EnrollmentRequest) (dto.ParticipationResponse, error)
	GetByActivity(ctx context.Context, activityID uint) ([]dto.ParticipationResponse, error)
	GetByChild(ctx context.Context, childID uint) ([]dto.ParticipationResponse, error)
	UpdateStatus(ctx context.Context, id uint, status models.ParticipationStatus) (dto.ParticipationResponse, error)
	Remove(ctx context.Context, id uint) (bool, error)
}

type participationService struct {
	participations repository.ParticipationRepository
	activities     repository.ActivityRepository
	children       repository.ChildRepository
	validator      *validator.Validate
	sanitizer      *bluemonday.Policy
	publisher      EventPublisher
	subject        string
	logger         zerolog.Logger
	tracer         trace.Tracer
	now            func() time.Time
}

// NewParticipationService constructs the participation service. The
// publisher may be nil, in which case events are skipped.
func NewParticipationService(
	participationRepo repository.ParticipationRepository,
	activityRepo repository.ActivityRepository,
	childRepo repository.ChildRepository,
	validate *validator.Validate,
	publisher EventPublisher,
	subjectBase string,
	logger zerolog.Logger,
) ParticipationService {
	subject := "participation"
	if subjectBase != "" {
		subject = subjectBase + ".participation"
	}

	return &participationService{
		participations: participationRepo,
		activities:     activityRepo,
		children:       childRepo,
		validator:      validate,
		sanitizer:      bluemonday.StrictPolicy(),
		publisher:      publisher,
		subject:        subject,
		logger:         logger.With().Str("component", "participation_service").Logger(),
		tracer:         otel.Tracer("github.com/harborlight/orphanage-api/internal/service/participation"),
		now:            time.Now,
	}
}

// Enroll validates the activity reference, then the child reference, and
// delegates the duplicate check, the capacity check and the insert to the
// repository as one atomic unit. The check order is part of the contract:
// a caller with a bad activity id gets the activity error even when the
// child id is bad too.
func (s *participationService) Enroll(ctx context.Context, req dto.EnrollmentRequest) (dto.ParticipationResponse, error) {
	ctx, span := s.tracer.Start(ctx, "participation.enroll", trace.WithAttributes(
		attribute.Int64("activity.id", int64(req.ActivityID)),
		attribute.Int64("child.id", int64(req.ChildID)),
	))
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return dto.ParticipationResponse{}, err
	}

	if !req.Status.Valid() {
		return dto.ParticipationResponse{}, fmt.Errorf("unknown participation status %q: %w", req.Status, ErrInvalidField)
	}

	if _, err := s.activities.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ParticipationResponse{}, fmt.Errorf("activity %d: %w", req.ActivityID, ErrActivityNotFound)
		}
		return dto.ParticipationResponse{}, err
	}

	exists, err := s.children.Exists(ctx, req.ChildID)
	if err != nil {
		return dto.ParticipationResponse{}, err
	}
	if !exists {
		return dto.ParticipationResponse{}, fmt.Errorf("child %d: %w", req.ChildID, ErrChildNotFound)
	}

	registeredAt := s.now()
	participation := models.ActivityParticipation{
		ActivityID:   req.ActivityID,
		ChildID:      req.ChildID,
		Status:       req.Status,
		Notes:        s.sanitizeNotes(req.Notes),
		RegisteredAt: registeredAt,
		UpdatedAt:    registeredAt,
	}

	if err := s.participations.Enroll(ctx, &participation); err != nil {
		switch {
		case errors.Is(err, repository.ErrEnrollmentExists):
			observability.EnrollmentOutcomes().WithLabelValues("duplicate").Inc()
			return dto.ParticipationResponse{}, fmt.Errorf("activity %d, child %d: %w", req.ActivityID, req.ChildID, ErrDuplicateEnrollment)
		case errors.Is(err, repository.ErrActivityFull):
			observability.EnrollmentOutcomes().WithLabelValues("capacity_exceeded").Inc()
			return dto.ParticipationResponse{}, fmt.Errorf("activity %d: %w", req.ActivityID, ErrCapacityExceeded)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Activity deleted between the existence check and the transaction.
			return dto.ParticipationResponse{}, fmt.Errorf("activity %d: %w", req.ActivityID, ErrActivityNotFound)
		default:
			observability.EnrollmentOutcomes().WithLabelValues("error").Inc()
			s.logger.Error().Err(err).Msg("failed to persist enrollment")
			return dto.ParticipationResponse{}, err
		}
	}

	observability.EnrollmentOutcomes().WithLabelValues("success").Inc()
	span.SetAttributes(attribute.Int64("participation.id", int64(participation.ID)))

	s.logger.Info().
		Uint("participation_id", participation.ID).
		Uint("activity_id", participation.ActivityID).
		Uint("child_id", participation.ChildID).
		Str("status", string(participation.Status)).
		Msg("child enrolled")

	s.publish(participationEvent{
		Type:            "enrolled",
		ParticipationID: participation.ID,
		ActivityID:      participation.ActivityID,
		ChildID:         participation.ChildID,
		Status:          participation.Status,
		OccurredAt:      registeredAt,
	})

	return dto.NewParticipationResponse(participation), nil
}

// GetByActivity returns every enrollment of the activity. Reads never
// validate referential existence: an unknown id yields an empty slice.
func (s *participationService) GetByActivity(ctx context.Context, activityID uint) ([]dto.ParticipationResponse, error) {
	participations, err := s.participations.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	return dto.NewParticipationResponseSlice(participations), nil
}

func (s *participationService) GetByChild(ctx context.Context, childID uint) ([]dto.ParticipationResponse, error) {
	participations, err := s.participations.ListByChild(ctx, childID)
	if err != nil {
		return nil, err
	}

	return dto.NewParticipationResponseSlice(participations), nil
}

// UpdateStatus sets the status unconditionally. Capacity is enforced only
// at enrollment time; no transition re-checks it.
func (s *participationService) UpdateStatus(ctx context.Context, id uint, status models.ParticipationStatus) (dto.ParticipationResponse, error) {
	if !status.Valid() {
		return dto.ParticipationResponse{}, fmt.Errorf("unknown participation status %q: %w", status, ErrInvalidField)
	}

	participation, err := s.participations.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ParticipationResponse{}, fmt.Errorf("participation %d: %w", id, ErrParticipationNotFound)
		}
		return dto.ParticipationResponse{}, err
	}

	s.publish(participationEvent{
		Type:            "status_changed",
		ParticipationID: participation.ID,
		ActivityID:      participation.ActivityID,
		ChildID:         participation.ChildID,
		Status:          status,
		OccurredAt:      s.now(),
	})

	return dto.NewParticipationResponse(participation), nil
}

// Remove deletes the row permanently. The second removal of the same id
// reports false without error. Removing never retro-admits an enrollment
// that was previously blocked on capacity; there is no waitlist.
func (s *participationService) Remove(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.participations.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info().Uint("participation_id", id).Msg("participation removed")
		s.publish(participationEvent{
			Type:            "removed",
			ParticipationID: id,
			OccurredAt:      s.now(),
		})
	}

	return deleted, nil
}

// publish is fire-and-forget: event delivery never fails the request.
func (s *participationService) publish(event participationEvent) {
	if s.publisher == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode participation event")
		return
	}

	if err := s.publisher.Publish(s.subject, payload); err != nil {
		s.logger.Warn().Err(err).Str("subject", s.subject).Msg("failed to publish participation event")
	}
}

func (s *participationService) sanitizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	sanitized := s.sanitizer.Sanitize(*notes)
	return &sanitized
}
