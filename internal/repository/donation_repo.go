package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/harborlight/orphanage-api/internal/models"
)

// DonationRepository persists donations.
type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	List(ctx context.Context) ([]models.Donation, error)
	ListByDonor(ctx context.Context, donorID uint) ([]models.Donation, error)
	SumAmount(ctx context.Context) (float64, error)
}

type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository constructs the donation repository.
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) List(ctx context.Context) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.WithContext(ctx).Order("received_at DESC").Find(&donations).Error; err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *donationRepository) ListByDonor(ctx context.Context, donorID uint) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("received_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *donationRepository) SumAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
