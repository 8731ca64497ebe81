package models

import "time"

// Staff is an employee of the orphanage. Activities reference staff via
// CreatedBy and expenses via RecordedBy.
type Staff struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	FullName  string    `gorm:"size:255;not null" json:"full_name"`
	Position  string    `gorm:"size:128;not null" json:"position"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	HiredAt   time.Time `json:"hired_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
