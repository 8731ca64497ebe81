package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harborlight/orphanage-api/internal/models"
)

var (
	// ErrEnrollmentExists signals that a participation row already exists
	// for the (activity, child) pair, whatever its status.
	ErrEnrollmentExists = errors.New("enrollment already exists for activity and child")
	// ErrActivityFull signals that the activity reached its participant limit.
	ErrActivityFull = errors.New("activity capacity reached")
)

// ParticipationRepository persists enrollments of children into activities.
type ParticipationRepository interface {
	Enroll(ctx context.Context, participation *models.ActivityParticipation) error
	GetByID(ctx context.Context, id uint) (models.ActivityParticipation, error)
	ListByActivity(ctx context.Context, activityID uint) ([]models.ActivityParticipation, error)
	ListByChild(ctx context.Context, childID uint) ([]models.ActivityParticipation, error)
	ListRecent(ctx context.Context, limit int) ([]models.ActivityParticipation, error)
	UpdateStatus(ctx context.Context, id uint, status models.ParticipationStatus) (models.ActivityParticipation, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type participationRepository struct {
	db *gorm.DB
}

// NewParticipationRepository constructs the participation repository.
func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

// Enroll runs the duplicate check, the capacity check and the insert as
// one transaction. The activity row is locked FOR UPDATE so that two
// enrollments racing for the last slot of the same activity serialize;
// enrollments into different activities proceed in parallel. The unique
// index on (activity_id, child_id) backs the duplicate check at the
// constraint level.
func (r *participationRepository) Enroll(ctx context.Context, participation *models.ActivityParticipation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity models.Activity
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&activity, participation.ActivityID).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.ActivityParticipation{}).
			Where("activity_id = ? AND child_id = ?", participation.ActivityID, participation.ChildID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrEnrollmentExists
		}

		if activity.MaxParticipants != nil {
			var enrolled int64
			if err := tx.Model(&models.ActivityParticipation{}).
				Where("activity_id = ?", participation.ActivityID).
				Count(&enrolled).Error; err != nil {
				return err
			}
			if enrolled >= int64(*activity.MaxParticipants) {
				return ErrActivityFull
			}
		}

		if err := tx.Create(participation).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEnrollmentExists
			}
			return err
		}

		return nil
	})
}

func (r *participationRepository) GetByID(ctx context.Context, id uint) (models.ActivityParticipation, error) {
	var participation models.ActivityParticipation
	if err := r.db.WithContext(ctx).First(&participation, id).Error; err != nil {
		return models.ActivityParticipation{}, err
	}

	return participation, nil
}

func (r *participationRepository) ListByActivity(ctx context.Context, activityID uint) ([]models.ActivityParticipation, error) {
	var participations []models.ActivityParticipation
	if err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("registered_at ASC").
		Find(&participations).Error; err != nil {
		return nil, err
	}

	return participations, nil
}

func (r *participationRepository) ListByChild(ctx context.Context, childID uint) ([]models.ActivityParticipation, error) {
	var participations []models.ActivityParticipation
	if err := r.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("registered_at ASC").
		Find(&participations).Error; err != nil {
		return nil, err
	}

	return participations, nil
}

func (r *participationRepository) ListRecent(ctx context.Context, limit int) ([]models.ActivityParticipation, error) {
	query := r.db.WithContext(ctx).Order("registered_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var participations []models.ActivityParticipation
	if err := query.Find(&participations).Error; err != nil {
		return nil, err
	}

	return participations, nil
}

func (r *participationRepository) UpdateStatus(ctx context.Context, id uint, status models.ParticipationStatus) (models.ActivityParticipation, error) {
	var participation models.ActivityParticipation
	if err := r.db.WithContext(ctx).First(&participation, id).Error; err != nil {
		return models.ActivityParticipation{}, err
	}

	if err := r.db.WithContext(ctx).Model(&participation).Update("status", status).Error; err != nil {
		return models.ActivityParticipation{}, err
	}

	return participation, nil
}

// Delete removes the row permanently. The bool result distinguishes a
// deletion from an id that was already gone.
func (r *participationRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.ActivityParticipation{}, id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
