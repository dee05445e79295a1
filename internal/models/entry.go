package models

import (
	"time"

	"github.com/google/uuid"
)

// GameRoundEntryDB represents one member's submission for a round.
// Unique per (round, member); the auto flag marks system-generated
// fill-in entries.
type GameRoundEntryDB struct {
	EntryID   uuid.UUID `json:"entry_id" db:"entry_id"`
	RoundID   uuid.UUID `json:"round_id" db:"round_id"`
	MemberID  uuid.UUID `json:"member_id" db:"member_id"`
	Entry     string    `json:"entry" db:"entry"`
	Auto      bool      `json:"auto" db:"auto"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
