package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row in the database.
// Immutable after creation except for the display name.
type UserDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Unique user identifier
	Name      string    `json:"name" db:"name"`             // Display name, the only mutable column
	Email     string    `json:"email" db:"email"`           // Unique email address
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last update
}
