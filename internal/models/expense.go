package models

import "time"

// Expense records money spent by the orphanage.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Category    string    `gorm:"size:64;not null" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description *string   `json:"description"`
	RecordedBy  uint      `gorm:"not null;index" json:"recorded_by"`
	IncurredAt  time.Time `json:"incurred_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
