package models

import "time"

// UserRole scopes dashboard access and RBAC checks.
type UserRole string

// Roles recognised by the API.
const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleStaff UserRole = "STAFF"
	UserRoleDonor UserRole = "DONOR"
	UserRoleChild UserRole = "CHILD"
)

// User is an account able to authenticate against the API.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	Role         UserRole  `gorm:"size:32;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
