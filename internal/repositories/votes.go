package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/models"
)

// VoteReadRepository handles vote read operations.
type VoteReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVoteReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VoteReadRepository {
	return &VoteReadRepository{db: db, txGetter: txGetter}
}

// CountByRound returns the number of votes recorded for a round.
func (r *VoteReadRepository) CountByRound(ctx context.Context, roundID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM game_round_entry_votes
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

// TallyByRound counts votes grouped by entry. Rows are ordered by vote
// count descending with ties broken by earliest entry creation, so the
// first row with a nonzero count is the round's outcome.
func (r *VoteReadRepository) TallyByRound(ctx context.Context, roundID uuid.UUID) ([]models.EntryTally, error) {
	query := `
		SELECT e.entry_id, COUNT(v.vote_id) AS votes, e.created_at AS entry_created_at
		FROM game_round_entries e
		LEFT JOIN game_round_entry_votes v ON v.entry_id = e.entry_id
		WHERE e.round_id = $1
		GROUP BY e.entry_id, e.created_at
		ORDER BY votes DESC, e.created_at ASC
	`

	var tallies []models.EntryTally
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &tallies, query, roundID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID},
		"result", len(tallies),
		"error", err,
	)

	return tallies, err
}

// VoteWriteRepository handles vote write operations.
type VoteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVoteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VoteWriteRepository {
	return &VoteWriteRepository{db: db, txGetter: txGetter}
}

// Insert records a member's vote. Votes are not overwritable; a second vote
// for the same round violates the uniqueness constraint and surfaces as a
// unique violation for the caller to translate.
func (r *VoteWriteRepository) Insert(ctx context.Context, roundID, memberID, entryID uuid.UUID) (*models.GameRoundEntryVoteDB, error) {
	query := `
		INSERT INTO game_round_entry_votes (vote_id, round_id, member_id, entry_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING vote_id, round_id, member_id, entry_id, created_at
	`

	var vote models.GameRoundEntryVoteDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &vote, query,
		uuid.New(), roundID, memberID, entryID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID, memberID, entryID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &vote, nil
}
