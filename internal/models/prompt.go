package models

import (
	"time"

	"github.com/google/uuid"
)

// PromptDB represents a prompt catalog row. Prompts are append-only and
// moderated via the approved flag; they are never deleted.
type PromptDB struct {
	PromptID  uuid.UUID `json:"prompt_id" db:"prompt_id"`
	Text      string    `json:"text" db:"text"`
	Approved  bool      `json:"approved" db:"approved"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
