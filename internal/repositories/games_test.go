package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameWriteRepository_SetEnded(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewGameWriteRepository(db, nil)
	ctx := context.Background()

	f := seedRoundFixture(t, db, 2)

	ended, err := repo.SetEnded(ctx, f.gameID)
	require.NoError(t, err)
	assert.True(t, ended)

	var endedAt *string
	require.NoError(t, db.Get(&endedAt, `SELECT ended_at::text FROM games WHERE game_id = $1`, f.gameID))
	assert.NotNil(t, endedAt)

	// replaying the end-game write is a no-op
	ended, err = repo.SetEnded(ctx, f.gameID)
	require.NoError(t, err)
	assert.False(t, ended)
}
