package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/harborlight/orphanage-api/internal/models"
)

// ChildRepository persists child records and answers existence checks for
// reference validation.
type ChildRepository interface {
	Create(ctx context.Context, child *models.Child) error
	GetByID(ctx context.Context, id uint) (models.Child, error)
	List(ctx context.Context) ([]models.Child, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (models.Child, error)
	Exists(ctx context.Context, id uint) (bool, error)
	CountByStatus(ctx context.Context, status models.ChildStatus) (int64, error)
}

type childRepository struct {
	db *gorm.DB
}

// NewChildRepository constructs the child repository.
func NewChildRepository(db *gorm.DB) ChildRepository {
	return &childRepository{db: db}
}

func (r *childRepository) Create(ctx context.Context, child *models.Child) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childRepository) GetByID(ctx context.Context, id uint) (models.Child, error) {
	var child models.Child
	if err := r.db.WithContext(ctx).First(&child, id).Error; err != nil {
		return models.Child{}, err
	}

	return child, nil
}

func (r *childRepository) List(ctx context.Context) ([]models.Child, error) {
	var children []models.Child
	if err := r.db.WithContext(ctx).Order("full_name ASC").Find(&children).Error; err != nil {
		return nil, err
	}

	return children, nil
}

func (r *childRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (models.Child, error) {
	var child models.Child
	if err := r.db.WithContext(ctx).First(&child, id).Error; err != nil {
		return models.Child{}, err
	}

	if len(fields) == 0 {
		return child, nil
	}

	if err := r.db.WithContext(ctx).Model(&child).Updates(fields).Error; err != nil {
		return models.Child{}, err
	}

	return child, nil
}

func (r *childRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Child{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *childRepository) CountByStatus(ctx context.Context, status models.ChildStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Child{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
