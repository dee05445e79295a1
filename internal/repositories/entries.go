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

// EntryReadRepository handles round entry read operations.
type EntryReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEntryReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EntryReadRepository {
	return &EntryReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns a single entry, or nil if it does not exist.
func (r *EntryReadRepository) GetByID(ctx context.Context, entryID uuid.UUID) (*models.GameRoundEntryDB, error) {
	query := `
		SELECT entry_id, round_id, member_id, entry, auto, created_at
		FROM game_round_entries
		WHERE entry_id = $1
	`

	var entry models.GameRoundEntryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query, entryID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{entryID},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// CountByRound returns the number of entries recorded for a round.
func (r *EntryReadRepository) CountByRound(ctx context.Context, roundID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM game_round_entries
		WHERE round_id = $1
	`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, roundID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID},
		"result", count,
		"error", err,
	)

	return count, err
}

// EntryWriteRepository handles round entry write operations.
type EntryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEntryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EntryWriteRepository {
	return &EntryWriteRepository{db: db, txGetter: txGetter}
}

// Upsert records a member's submission. Re-submission while the round is
// still open overwrites the previous content in place (last write wins);
// the (round, member) uniqueness constraint guarantees a single row.
func (r *EntryWriteRepository) Upsert(ctx context.Context, roundID, memberID uuid.UUID, content string) (*models.GameRoundEntryDB, error) {
	query := `
		INSERT INTO game_round_entries (entry_id, round_id, member_id, entry, auto, created_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
		ON CONFLICT ON CONSTRAINT single_round_entry
		DO UPDATE SET entry = EXCLUDED.entry, auto = FALSE
		RETURNING entry_id, round_id, member_id, entry, auto, created_at
	`

	var entry models.GameRoundEntryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query,
		uuid.New(), roundID, memberID, content)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID, memberID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// InsertAuto synthesizes a placeholder entry for a member who submitted
// nothing before fulfillment. Runs inside the fulfillment transaction; the
// uniqueness constraint rejects a duplicate if one raced in.
func (r *EntryWriteRepository) InsertAuto(ctx context.Context, roundID, memberID uuid.UUID, placeholder string) error {
	query := `
		INSERT INTO game_round_entries (entry_id, round_id, member_id, entry, auto, created_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW())
	`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		uuid.New(), roundID, memberID, placeholder)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID, memberID},
		"error", err,
	)

	return err
}
