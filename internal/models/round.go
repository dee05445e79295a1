package models

import (
	"time"

	"github.com/google/uuid"
)

// RoundState is the lifecycle state of a round, derived from which of the
// four timestamps are set.
type RoundState int

const (
	RoundCreated RoundState = iota
	RoundStarted
	RoundFulfilled
	RoundCompleted
)

func (s RoundState) String() string {
	switch s {
	case RoundCreated:
		return "created"
	case RoundStarted:
		return "started"
	case RoundFulfilled:
		return "fulfilled"
	case RoundCompleted:
		return "completed"
	}
	return "unknown"
}

// GameRoundDB represents a game round row in the database. The four
// timestamps form a monotonically populated prefix: created_at is always
// set, and each later timestamp may only be set after its predecessor.
type GameRoundDB struct {
	RoundID       uuid.UUID  `json:"round_id" db:"round_id"`
	GameID        uuid.UUID  `json:"game_id" db:"game_id"`
	Position      int        `json:"position" db:"position"`
	PromptID      *uuid.UUID `json:"prompt_id" db:"prompt_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	StartedAt     *time.Time `json:"started_at" db:"started_at"`
	FulfilledAt   *time.Time `json:"fulfilled_at" db:"fulfilled_at"`
	CompletedAt   *time.Time `json:"completed_at" db:"completed_at"`
	WinnerEntryID *uuid.UUID `json:"winner_entry_id" db:"winner_entry_id"` // nil on a completed round means no winner
}

// StateOf derives the round's lifecycle state from timestamp nullness.
// It is the single source of truth for state derivation; no caller should
// re-implement the null checks.
func StateOf(round GameRoundDB) RoundState {
	switch {
	case round.CompletedAt != nil:
		return RoundCompleted
	case round.FulfilledAt != nil:
		return RoundFulfilled
	case round.StartedAt != nil:
		return RoundStarted
	}
	return RoundCreated
}
