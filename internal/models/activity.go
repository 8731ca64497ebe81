package models

import "time"

// ActivityStatus represents the lifecycle of an activity.
type ActivityStatus string

// Possible activity statuses. Transitions are unrestricted: any status
// may be set from any other via the status update operation.
const (
	ActivityStatusPlanned   ActivityStatus = "PLANNED"
	ActivityStatusOngoing   ActivityStatus = "ONGOING"
	ActivityStatusCompleted ActivityStatus = "COMPLETED"
	ActivityStatusCancelled ActivityStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known activity statuses.
func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityStatusPlanned, ActivityStatusOngoing, ActivityStatusCompleted, ActivityStatusCancelled:
		return true
	}
	return false
}

// Activity is a scheduled event children may be enrolled into, owned and
// managed by a staff member. A nil MaxParticipants means unlimited capacity.
type Activity struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Description     *string        `json:"description"`
	ActivityDate    time.Time      `gorm:"not null" json:"activity_date"`
	Location        *string        `gorm:"size:255" json:"location"`
	Status          ActivityStatus `gorm:"size:32;not null;default:PLANNED" json:"status"`
	MaxParticipants *int           `json:"max_participants"`
	CreatedBy       uint           `gorm:"not null;index" json:"created_by"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
