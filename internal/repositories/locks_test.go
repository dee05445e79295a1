package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundLockRepository_WithRoundLock(t *testing.T) {
	db, teardown := setupRoundsPostgresContainer(t)
	defer teardown()

	repo := NewRoundLockRepository(db)
	ctx := context.Background()

	t.Run("InjectsTransaction", func(t *testing.T) {
		err := repo.WithRoundLock(ctx, uuid.New(), func(ctx context.Context) error {
			assert.NotNil(t, TxFromContext(ctx))
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("CommitsOnSuccess", func(t *testing.T) {
		f := seedRoundFixture(t, db, 2)
		rounds := NewRoundWriteRepository(db, TxFromContext)

		err := repo.WithRoundLock(ctx, f.roundID, func(ctx context.Context) error {
			return rounds.SetStarted(ctx, f.roundID, f.promptID)
		})
		require.NoError(t, err)

		var started *string
		require.NoError(t, db.Get(&started, `SELECT started_at::text FROM game_rounds WHERE round_id = $1`, f.roundID))
		assert.NotNil(t, started)
	})

	t.Run("RollsBackOnError", func(t *testing.T) {
		f := seedRoundFixture(t, db, 2)
		rounds := NewRoundWriteRepository(db, TxFromContext)
		boom := errors.New("transition aborted")

		err := repo.WithRoundLock(ctx, f.roundID, func(ctx context.Context) error {
			if err := rounds.SetStarted(ctx, f.roundID, f.promptID); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var started *string
		require.NoError(t, db.Get(&started, `SELECT started_at::text FROM game_rounds WHERE round_id = $1`, f.roundID))
		assert.Nil(t, started)
	})

	t.Run("SecondHolderFailsFast", func(t *testing.T) {
		roundID := uuid.New()
		acquired := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)

		go func() {
			done <- repo.WithRoundLock(ctx, roundID, func(ctx context.Context) error {
				close(acquired)
				<-release
				return nil
			})
		}()

		<-acquired

		err := repo.WithRoundLock(ctx, roundID, func(ctx context.Context) error {
			t.Error("must not run while the lock is held")
			return nil
		})
		assert.ErrorIs(t, err, ErrRoundBusy)

		close(release)
		require.NoError(t, <-done)
	})

	t.Run("DifferentRoundsDoNotContend", func(t *testing.T) {
		acquired := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)

		go func() {
			done <- repo.WithRoundLock(ctx, uuid.New(), func(ctx context.Context) error {
				close(acquired)
				<-release
				return nil
			})
		}()

		<-acquired

		err := repo.WithRoundLock(ctx, uuid.New(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)

		close(release)
		require.NoError(t, <-done)
	})
}
