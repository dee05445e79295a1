package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryWriteRepository_Upsert(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewEntryWriteRepository(db, nil)
	ctx := context.Background()

	t.Run("InsertsNewEntry", func(t *testing.T) {
		f := seedRoundFixture(t, db, 2)

		entry, err := repo.Upsert(ctx, f.roundID, f.members[0], "my dog ate the car keys")
		require.NoError(t, err)

		assert.Equal(t, f.roundID, entry.RoundID)
		assert.Equal(t, f.members[0], entry.MemberID)
		assert.Equal(t, "my dog ate the car keys", entry.Entry)
		assert.False(t, entry.Auto)
	})

	t.Run("OverwritesOwnEntry", func(t *testing.T) {
		f := seedRoundFixture(t, db, 2)

		first, err := repo.Upsert(ctx, f.roundID, f.members[0], "first draft")
		require.NoError(t, err)

		second, err := repo.Upsert(ctx, f.roundID, f.members[0], "final answer")
		require.NoError(t, err)

		assert.Equal(t, first.EntryID, second.EntryID)
		assert.Equal(t, "final answer", second.Entry)

		var count int
		require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM game_round_entries WHERE round_id = $1`, f.roundID))
		assert.Equal(t, 1, count)
	})

	t.Run("OverwriteResetsAutoFlag", func(t *testing.T) {
		f := seedRoundFixture(t, db, 2)

		require.NoError(t, repo.InsertAuto(ctx, f.roundID, f.members[0], "(no answer)"))

		entry, err := repo.Upsert(ctx, f.roundID, f.members[0], "late but real")
		require.NoError(t, err)

		assert.False(t, entry.Auto)
		assert.Equal(t, "late but real", entry.Entry)
	})
}

func TestEntryWriteRepository_InsertAuto(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewEntryWriteRepository(db, nil)
	ctx := context.Background()

	f := seedRoundFixture(t, db, 2)

	err := repo.InsertAuto(ctx, f.roundID, f.members[0], "(no answer)")
	require.NoError(t, err)

	var auto bool
	require.NoError(t, db.Get(&auto, `SELECT auto FROM game_round_entries WHERE round_id = $1 AND member_id = $2`,
		f.roundID, f.members[0]))
	assert.True(t, auto)

	err = repo.InsertAuto(ctx, f.roundID, f.members[0], "(no answer)")
	assert.True(t, IsUniqueViolation(err))
}

func TestEntryReadRepository(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewEntryReadRepository(db, nil)
	ctx := context.Background()

	f := seedRoundFixture(t, db, 3)
	entryID := seedEntry(t, db, f.roundID, f.members[0], "a very convincing alibi", time.Now())
	seedEntry(t, db, f.roundID, f.members[1], "traffic, somehow", time.Now())

	t.Run("GetByID", func(t *testing.T) {
		entry, err := repo.GetByID(ctx, entryID)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, f.roundID, entry.RoundID)
		assert.Equal(t, "a very convincing alibi", entry.Entry)
	})

	t.Run("GetByIDMissing", func(t *testing.T) {
		entry, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("CountByRound", func(t *testing.T) {
		count, err := repo.CountByRound(ctx, f.roundID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
