package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/harborlight/orphanage-api/internal/models"
)

// DonorRepository persists donor records.
type DonorRepository interface {
	Create(ctx context.Context, donor *models.Donor) error
	GetByID(ctx context.Context, id uint) (models.Donor, error)
	List(ctx context.Context) ([]models.Donor, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository constructs the donor repository.
func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) Create(ctx context.Context, donor *models.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

func (r *donorRepository) GetByID(ctx context.Context, id uint) (models.Donor, error) {
	var donor models.Donor
	if err := r.db.WithContext(ctx).First(&donor, id).Error; err != nil {
		return models.Donor{}, err
	}

	return donor, nil
}

func (r *donorRepository) List(ctx context.Context) ([]models.Donor, error) {
	var donors []models.Donor
	if err := r.db.WithContext(ctx).Order("full_name ASC").Find(&donors).Error; err != nil {
		return nil, err
	}

	return donors, nil
}

func (r *donorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Donor{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *donorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Donor{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
