package models

import (
	"time"

	"github.com/google/uuid"
)

// LobbyDB represents a lobby row in the database.
// A lobby is created open and closed exactly once, after which it is immutable.
type LobbyDB struct {
	LobbyID   uuid.UUID  `json:"lobby_id" db:"lobby_id"`
	Name      string     `json:"name" db:"name"`
	JobID     *uuid.UUID `json:"job_id" db:"job_id"` // Identifier of the asynchronous task that created the lobby
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	ClosedAt  *time.Time `json:"closed_at" db:"closed_at"`
}

// LobbyMembershipDB represents a join record between a user and a lobby.
// Unique per (user, lobby); re-used across joins and leaves.
type LobbyMembershipDB struct {
	MembershipID uuid.UUID  `json:"membership_id" db:"membership_id"`
	LobbyID      uuid.UUID  `json:"lobby_id" db:"lobby_id"`
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	JoinedAt     time.Time  `json:"joined_at" db:"joined_at"`
	LeftAt       *time.Time `json:"left_at" db:"left_at"`
}
