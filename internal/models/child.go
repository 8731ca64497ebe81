package models

import "time"

// ChildStatus represents a child's placement state.
type ChildStatus string

// Possible child statuses.
const (
	ChildStatusActive    ChildStatus = "ACTIVE"
	ChildStatusAdopted   ChildStatus = "ADOPTED"
	ChildStatusReunified ChildStatus = "REUNIFIED"
	ChildStatusAgedOut   ChildStatus = "AGED_OUT"
)

// Child is a resident of the orphanage. Participations reference children
// but never own them.
type Child struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     *uint       `gorm:"index" json:"user_id"`
	FullName   string      `gorm:"size:255;not null" json:"full_name"`
	BirthDate  time.Time   `json:"birth_date"`
	Gender     string      `gorm:"size:16" json:"gender"`
	AdmittedAt time.Time   `json:"admitted_at"`
	Background *string     `json:"background"`
	Status     ChildStatus `gorm:"size:32;not null;default:ACTIVE" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
