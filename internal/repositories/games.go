package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/parlorgames/party-rounds/internal/logger"
)

// GameWriteRepository handles game lifecycle writes.
type GameWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGameWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GameWriteRepository {
	return &GameWriteRepository{db: db, txGetter: txGetter}
}

// SetEnded marks the game ended. The WHERE guard makes a replayed end-game
// job a no-op; ended reports whether this call performed the write.
func (r *GameWriteRepository) SetEnded(ctx context.Context, gameID uuid.UUID) (ended bool, err error) {
	query := `
		UPDATE games
		SET ended_at = NOW()
		WHERE game_id = $1 AND ended_at IS NULL
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, gameID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"error", err,
	)

	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
