package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteWriteRepository_Insert(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewVoteWriteRepository(db, nil)
	ctx := context.Background()

	f := seedRoundFixture(t, db, 3)
	entryA := seedEntry(t, db, f.roundID, f.members[0], "entry a", time.Now())
	entryB := seedEntry(t, db, f.roundID, f.members[1], "entry b", time.Now())

	vote, err := repo.Insert(ctx, f.roundID, f.members[2], entryA)
	require.NoError(t, err)
	assert.Equal(t, f.roundID, vote.RoundID)
	assert.Equal(t, f.members[2], vote.MemberID)
	assert.Equal(t, entryA, vote.EntryID)

	// one ballot per member per round, regardless of which entry
	_, err = repo.Insert(ctx, f.roundID, f.members[2], entryB)
	assert.True(t, IsUniqueViolation(err))
}

func TestVoteReadRepository_CountByRound(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewVoteReadRepository(db, nil)
	write := NewVoteWriteRepository(db, nil)
	ctx := context.Background()

	f := seedRoundFixture(t, db, 3)
	entryA := seedEntry(t, db, f.roundID, f.members[0], "entry a", time.Now())

	count, err := repo.CountByRound(ctx, f.roundID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = write.Insert(ctx, f.roundID, f.members[1], entryA)
	require.NoError(t, err)
	_, err = write.Insert(ctx, f.roundID, f.members[2], entryA)
	require.NoError(t, err)

	count, err = repo.CountByRound(ctx, f.roundID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestVoteReadRepository_TallyByRound(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewVoteReadRepository(db, nil)
	write := NewVoteWriteRepository(db, nil)
	ctx := context.Background()

	f := seedRoundFixture(t, db, 4)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entryA := seedEntry(t, db, f.roundID, f.members[0], "entry a", base)
	entryB := seedEntry(t, db, f.roundID, f.members[1], "entry b", base.Add(time.Second))
	entryC := seedEntry(t, db, f.roundID, f.members[2], "entry c", base.Add(2*time.Second))

	// two votes for B, one for A, none for C
	_, err := write.Insert(ctx, f.roundID, f.members[0], entryB)
	require.NoError(t, err)
	_, err = write.Insert(ctx, f.roundID, f.members[2], entryB)
	require.NoError(t, err)
	_, err = write.Insert(ctx, f.roundID, f.members[3], entryA)
	require.NoError(t, err)

	tallies, err := repo.TallyByRound(ctx, f.roundID)
	require.NoError(t, err)
	require.Len(t, tallies, 3)

	assert.Equal(t, entryB, tallies[0].EntryID)
	assert.Equal(t, 2, tallies[0].Votes)
	assert.Equal(t, entryA, tallies[1].EntryID)
	assert.Equal(t, 1, tallies[1].Votes)
	assert.Equal(t, entryC, tallies[2].EntryID)
	assert.Equal(t, 0, tallies[2].Votes)
}

func TestVoteReadRepository_TallyByRound_TieBreaksByEntryAge(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewVoteReadRepository(db, nil)
	write := NewVoteWriteRepository(db, nil)
	ctx := context.Background()

	f := seedRoundFixture(t, db, 4)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entryA := seedEntry(t, db, f.roundID, f.members[0], "entry a", base)
	entryB := seedEntry(t, db, f.roundID, f.members[1], "entry b", base.Add(time.Second))

	_, err := write.Insert(ctx, f.roundID, f.members[2], entryB)
	require.NoError(t, err)
	_, err = write.Insert(ctx, f.roundID, f.members[3], entryA)
	require.NoError(t, err)

	tallies, err := repo.TallyByRound(ctx, f.roundID)
	require.NoError(t, err)
	require.Len(t, tallies, 2)

	assert.Equal(t, entryA, tallies[0].EntryID)
	assert.Equal(t, entryB, tallies[1].EntryID)
}
