package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email       string     `json:"email" db:"email" example:"dean@iitb.ac.in"`               // User's email address
	Password    string     `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	Name        string     `json:"name" db:"name" example:"Asha Rao"`                        // User's full name
	Phone       *string    `json:"phone,omitempty" db:"phone" example:"+91-9812345678"`      // Contact phone (nullable)
	RoleType    RoleType   `json:"roleType" db:"role_type" example:"STUDENT"`                // User's role (STUDENT, INSTITUTE or FACULTY)
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`                 // Timestamp of the last login (nullable)
}
