package models

import (
	"strings"
	"time"
)

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash of the password
	FirstName    string    `json:"first_name" db:"first_name"` // Given name
	LastName     string    `json:"last_name" db:"last_name"`   // Family name
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// DisplayName returns "first last" trimmed, or the username when both names are blank.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// HasName reports whether both first and last name are set.
func (u *User) HasName() bool {
	return u.FirstName != "" && u.LastName != ""
}

// UserResponse is returned by GET /api/user
// swagger:model UserResponse
type UserResponse struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	HasName   bool   `json:"has_name"`
}

// ProfileRequest represents the JSON body for a profile update
// swagger:model ProfileRequest
type ProfileRequest struct {
	// example: Jane
	FirstName string `json:"first_name"`
	// example: Doe
	LastName string `json:"last_name"`
}

// ProfileResponse represents a successful profile update
// swagger:model ProfileResponse
type ProfileResponse struct {
	Message   string `json:"message"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
