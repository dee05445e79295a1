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

// GameMembershipReadRepository resolves round eligibility from the game
// membership snapshot taken at game creation.
type GameMembershipReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGameMembershipReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GameMembershipReadRepository {
	return &GameMembershipReadRepository{db: db, txGetter: txGetter}
}

// GetForUserRound resolves the caller's game membership for the round's
// game, or nil when the user is not playing that game.
func (r *GameMembershipReadRepository) GetForUserRound(ctx context.Context, roundID, userID uuid.UUID) (*models.GameMembershipDB, error) {
	query := `
		SELECT gm.member_id, gm.game_id, gm.user_id, gm.lobby_membership_id, gm.created_at
		FROM game_memberships gm
		JOIN game_rounds gr ON gr.game_id = gm.game_id
		WHERE gr.round_id = $1 AND gm.user_id = $2
	`

	var member models.GameMembershipDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &member, query, roundID, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID, userID},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// CountEligible returns the number of members in the game's snapshot.
func (r *GameMembershipReadRepository) CountEligible(ctx context.Context, gameID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM game_memberships
		WHERE game_id = $1
	`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, gameID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"result", count,
		"error", err,
	)

	return count, err
}

// ListMissingEntries returns the members of the round's game who have no
// entry for the round. The fulfillment reconciler synthesizes auto entries
// for exactly these members.
func (r *GameMembershipReadRepository) ListMissingEntries(ctx context.Context, roundID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT gm.member_id
		FROM game_memberships gm
		JOIN game_rounds gr ON gr.game_id = gm.game_id
		LEFT JOIN game_round_entries e ON e.round_id = gr.round_id AND e.member_id = gm.member_id
		WHERE gr.round_id = $1 AND e.entry_id IS NULL
	`

	var members []uuid.UUID
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &members, query, roundID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roundID},
		"result", len(members),
		"error", err,
	)

	return members, err
}
