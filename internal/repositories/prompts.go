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

// PromptReadRepository reads the prompt catalog.
type PromptReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPromptReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PromptReadRepository {
	return &PromptReadRepository{db: db, txGetter: txGetter}
}

// ListApproved returns every approved prompt.
func (r *PromptReadRepository) ListApproved(ctx context.Context) ([]models.PromptDB, error) {
	query := `
		SELECT prompt_id, text, approved, created_at
		FROM prompts
		WHERE approved = TRUE
	`

	var prompts []models.PromptDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &prompts, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(prompts),
		"error", err,
	)

	return prompts, err
}

// PromptWriteRepository handles prompt moderation writes. Prompts are
// append-only; the approval flag is the only mutable column.
type PromptWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPromptWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PromptWriteRepository {
	return &PromptWriteRepository{db: db, txGetter: txGetter}
}

// SetApproved toggles a prompt's approval flag.
func (r *PromptWriteRepository) SetApproved(ctx context.Context, promptID uuid.UUID, approved bool) error {
	query := `
		UPDATE prompts
		SET approved = $2
		WHERE prompt_id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, promptID, approved)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{promptID, approved},
		"error", err,
	)

	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
