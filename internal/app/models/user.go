package models

import (
	"time"
)

// RoleType is the authorization role carried by a user account.
type RoleType string

const (
	// RoleAdmin may mutate inventory data and manage users.
	RoleAdmin RoleType = "admin"
	// RoleStaff may only read.
	RoleStaff RoleType = "staff"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"budi"`                    // Login name, unique
	Password  string    `json:"-" db:"password"`                                          // Bcrypt hash (excluded from JSON)
	FullName  string    `json:"fullName" db:"full_name" example:"Budi Santoso"`           // Display name
	Role      RoleType  `json:"role" db:"role" example:"staff"`                           // admin or staff
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
