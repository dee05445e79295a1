package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/parlorgames/party-rounds/internal/logger"
)

// ErrRoundBusy is returned when the per-round advisory lock is already held
// by another transition attempt.
var ErrRoundBusy = errors.New("round lock already held")

// RoundLockRepository serializes state transitions per round using a
// postgres advisory lock scoped to the transaction. Exactly one transition
// attempt per round may be in flight at a time; a second attempt fails fast
// with ErrRoundBusy instead of interleaving reads and writes with the first.
type RoundLockRepository struct {
	db *sqlx.DB
}

func NewRoundLockRepository(db *sqlx.DB) *RoundLockRepository {
	return &RoundLockRepository{db: db}
}

// WithRoundLock opens a transaction, takes the round-scoped advisory lock,
// and runs fn with the transaction injected into the context so repository
// calls inside fn share it. The transaction commits only if fn returns nil.
// The lock is released automatically on commit or rollback.
func (r *RoundLockRepository) WithRoundLock(ctx context.Context, roundID uuid.UUID, fn func(ctx context.Context) error) error {
	query := `SELECT pg_try_advisory_xact_lock(hashtextextended($1, 0))`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	var acquired bool
	err = tx.GetContext(ctx, &acquired, query, roundID.String())

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID},
		"result", acquired,
		"error", err,
	)

	if err != nil {
		tx.Rollback()
		return err
	}
	if !acquired {
		tx.Rollback()
		return ErrRoundBusy
	}

	if err := fn(WithTx(ctx, tx)); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
