package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique email
	Phone        string    `json:"phone" db:"phone"`           // Contact phone
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Identity returns the token identity of the user.
func (u *UserDB) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Phone: u.Phone}
}
