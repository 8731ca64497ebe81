package models

import "time"

// ParticipationStatus represents the lifecycle of an enrollment.
type ParticipationStatus string

// Possible participation statuses. The initial status is chosen by the
// caller at enrollment time; transitions are unrestricted.
const (
	ParticipationStatusRegistered ParticipationStatus = "REGISTERED"
	ParticipationStatusAttended   ParticipationStatus = "ATTENDED"
	ParticipationStatusAbsent     ParticipationStatus = "ABSENT"
	ParticipationStatusCancelled  ParticipationStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known participation statuses.
func (s ParticipationStatus) Valid() bool {
	switch s {
	case ParticipationStatusRegistered, ParticipationStatusAttended, ParticipationStatusAbsent, ParticipationStatusCancelled:
		return true
	}
	return false
}

// ActivityParticipation links one child to one activity. The composite
// unique index backs the one-enrollment-per-pair invariant at the store
// level, regardless of the row's status.
type ActivityParticipation struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	ActivityID   uint                `gorm:"not null;uniqueIndex:idx_activity_child" json:"activity_id"`
	ChildID      uint                `gorm:"not null;uniqueIndex:idx_activity_child" json:"child_id"`
	Status       ParticipationStatus `gorm:"size:32;not null" json:"status"`
	Notes        *string             `json:"notes"`
	RegisteredAt time.Time           `gorm:"not null" json:"registered_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
