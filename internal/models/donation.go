package models

import "time"

// DonationType classifies what was donated.
type DonationType string

// Possible donation types.
const (
	DonationTypeMonetary DonationType = "MONETARY"
	DonationTypeGoods    DonationType = "GOODS"
	DonationTypeServices DonationType = "SERVICES"
)

// Donation records a single contribution from a donor.
type Donation struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	DonorID    uint         `gorm:"not null;index" json:"donor_id"`
	Amount     float64      `gorm:"not null" json:"amount"`
	Currency   string       `gorm:"size:8;not null;default:USD" json:"currency"`
	Type       DonationType `gorm:"size:32;not null" json:"type"`
	Note       *string      `json:"note"`
	ReceivedAt time.Time    `json:"received_at"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
