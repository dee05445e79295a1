package models

import (
	"time"

	"github.com/google/uuid"
)

// GameDB represents a game row in the database.
// A game is spawned from exactly one lobby; a lobby may spawn many games.
type GameDB struct {
	GameID    uuid.UUID  `json:"game_id" db:"game_id"`
	LobbyID   uuid.UUID  `json:"lobby_id" db:"lobby_id"`
	JobID     *uuid.UUID `json:"job_id" db:"job_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	EndedAt   *time.Time `json:"ended_at" db:"ended_at"`
}

// GameMembershipDB is the snapshot, taken at game creation, of which lobby
// members are playing the game. It determines round eligibility.
type GameMembershipDB struct {
	MemberID          uuid.UUID `json:"member_id" db:"member_id"`
	GameID            uuid.UUID `json:"game_id" db:"game_id"`
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	LobbyMembershipID uuid.UUID `json:"lobby_membership_id" db:"lobby_membership_id"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
