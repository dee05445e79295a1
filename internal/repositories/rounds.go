package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/models"
)

// RoundReadRepository handles round read operations.
type RoundReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRoundReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RoundReadRepository {
	return &RoundReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the round's current persisted state. Transition functions
// must call this fresh inside the guarded section; in-memory copies are
// never assumed current.
func (r *RoundReadRepository) GetByID(ctx context.Context, roundID uuid.UUID) (*models.GameRoundDB, error) {
	query := `
		SELECT round_id, game_id, position, prompt_id,
		       created_at, started_at, fulfilled_at, completed_at, winner_entry_id
		FROM game_rounds
		WHERE round_id = $1
	`

	var round models.GameRoundDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &round, query, roundID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &round, nil
}

// RemainingRounds counts a game's rounds that have not yet completed.
// Used by upstream logic to decide whether the game itself can end.
func (r *RoundReadRepository) RemainingRounds(ctx context.Context, gameID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM game_rounds
		WHERE game_id = $1 AND completed_at IS NULL
	`

	var remaining int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &remaining, query, gameID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"result", remaining,
		"error", err,
	)

	return remaining, err
}

// RoundWriteRepository handles round lifecycle writes. Every write carries a
// WHERE guard on the predecessor timestamps so a replayed or interleaved
// update can never move a timestamp backwards or skip a state.
type RoundWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRoundWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RoundWriteRepository {
	return &RoundWriteRepository{db: db, txGetter: txGetter}
}

// SetStarted marks the round started and assigns its prompt if not already
// assigned. Start may coincide exactly with creation, hence GREATEST.
func (r *RoundWriteRepository) SetStarted(ctx context.Context, roundID, promptID uuid.UUID) error {
	query := `
		UPDATE game_rounds
		SET started_at = GREATEST(NOW(), created_at),
		    prompt_id = COALESCE(prompt_id, $2)
		WHERE round_id = $1 AND started_at IS NULL
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, roundID, promptID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID, promptID},
		"error", err,
	)

	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// SetFulfilled closes the entry phase. Fulfillment must strictly follow
// start, so the timestamp is forced past started_at even under clock skew.
func (r *RoundWriteRepository) SetFulfilled(ctx context.Context, roundID uuid.UUID) error {
	query := `
		UPDATE game_rounds
		SET fulfilled_at = GREATEST(NOW(), started_at + INTERVAL '1 microsecond')
		WHERE round_id = $1 AND started_at IS NOT NULL AND fulfilled_at IS NULL
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, roundID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID},
		"error", err,
	)

	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// SetCompleted closes voting and records the outcome. A nil winner is the
// no-winner outcome of a zero-vote round.
func (r *RoundWriteRepository) SetCompleted(ctx context.Context, roundID uuid.UUID, winnerEntryID *uuid.UUID) error {
	query := `
		UPDATE game_rounds
		SET completed_at = GREATEST(NOW(), fulfilled_at + INTERVAL '1 microsecond'),
		    winner_entry_id = $2
		WHERE round_id = $1 AND fulfilled_at IS NOT NULL AND completed_at IS NULL
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, roundID, winnerEntryID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID, winnerEntryID},
		"error", err,
	)

	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// requireRowAffected maps a zero-row update to sql.ErrNoRows. The lifecycle
// service re-reads state under the lock before writing, so zero rows means
// the guard and the decision disagreed.
func requireRowAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
