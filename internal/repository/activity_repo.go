package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/harborlight/orphanage-api/internal/models"
)

// ActivityRepository persists activities. Activities are never deleted;
// their lifecycle ends at a terminal-capable status instead.
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id uint) (models.Activity, error)
	List(ctx context.Context) ([]models.Activity, error)
	ListUpcoming(ctx context.Context, limit int) ([]models.Activity, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (models.Activity, error)
	UpdateStatus(ctx context.Context, id uint, status models.ActivityStatus) (models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository constructs the activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) GetByID(ctx context.Context, id uint) (models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return models.Activity{}, err
	}

	return activity, nil
}

func (r *activityRepository) List(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.WithContext(ctx).Order("activity_date ASC").Find(&activities).Error; err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) ListUpcoming(ctx context.Context, limit int) ([]models.Activity, error) {
	query := r.db.WithContext(ctx).
		Where("activity_date >= CURRENT_TIMESTAMP").
		Where("status IN ?", []models.ActivityStatus{models.ActivityStatusPlanned, models.ActivityStatusOngoing}).
		Order("activity_date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var activities []models.Activity
	if err := query.Find(&activities).Error; err != nil {
		return nil, err
	}

	return activities, nil
}

// Update applies the given column set to an existing activity. Explicit
// nulls travel as nil map values so callers can clear nullable columns.
func (r *activityRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return models.Activity{}, err
	}

	if len(fields) == 0 {
		return activity, nil
	}

	if err := r.db.WithContext(ctx).Model(&activity).Updates(fields).Error; err != nil {
		return models.Activity{}, err
	}

	return activity, nil
}

func (r *activityRepository) UpdateStatus(ctx context.Context, id uint, status models.ActivityStatus) (models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return models.Activity{}, err
	}

	if err := r.db.WithContext(ctx).Model(&activity).Update("status", status).Error; err != nil {
		return models.Activity{}, err
	}

	return activity, nil
}
