package models

import (
	"time"

	"github.com/google/uuid"
)

// GameRoundEntryVoteDB represents one member's vote for a round, referencing
// the entry voted for. Unique per (round, member); first vote is final.
type GameRoundEntryVoteDB struct {
	VoteID    uuid.UUID `json:"vote_id" db:"vote_id"`
	RoundID   uuid.UUID `json:"round_id" db:"round_id"`
	MemberID  uuid.UUID `json:"member_id" db:"member_id"`
	EntryID   uuid.UUID `json:"entry_id" db:"entry_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// EntryTally is one row of a round's vote tally.
type EntryTally struct {
	EntryID        uuid.UUID `db:"entry_id"`
	Votes          int       `db:"votes"`
	EntryCreatedAt time.Time `db:"entry_created_at"` // tie-break: earliest entry wins
}
