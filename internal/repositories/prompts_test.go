package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptReadRepository_ListApproved(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewPromptReadRepository(db, nil)
	ctx := context.Background()

	approved := uuid.New()
	pending := uuid.New()
	_, err := db.Exec(`INSERT INTO prompts (prompt_id, text, approved) VALUES ($1, 'worst superpower', TRUE)`, approved)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO prompts (prompt_id, text, approved) VALUES ($1, 'awaiting review', FALSE)`, pending)
	require.NoError(t, err)

	prompts, err := repo.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, approved, prompts[0].PromptID)
	assert.Equal(t, "worst superpower", prompts[0].Text)
	assert.True(t, prompts[0].Approved)
}

func TestPromptWriteRepository_SetApproved(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewPromptWriteRepository(db, nil)
	ctx := context.Background()

	promptID := uuid.New()
	_, err := db.Exec(`INSERT INTO prompts (prompt_id, text, approved) VALUES ($1, 'awaiting review', FALSE)`, promptID)
	require.NoError(t, err)

	t.Run("Approve", func(t *testing.T) {
		err := repo.SetApproved(ctx, promptID, true)
		require.NoError(t, err)

		var approved bool
		require.NoError(t, db.Get(&approved, `SELECT approved FROM prompts WHERE prompt_id = $1`, promptID))
		assert.True(t, approved)
	})

	t.Run("Revoke", func(t *testing.T) {
		err := repo.SetApproved(ctx, promptID, false)
		require.NoError(t, err)

		var approved bool
		require.NoError(t, db.Get(&approved, `SELECT approved FROM prompts WHERE prompt_id = $1`, promptID))
		assert.False(t, approved)
	})

	t.Run("MissingPrompt", func(t *testing.T) {
		err := repo.SetApproved(ctx, uuid.New(), true)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
