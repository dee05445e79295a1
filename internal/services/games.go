package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/parlorgames/party-rounds/internal/logger"
)

// RoundCounter reads how many of a game's rounds remain incomplete.
type RoundCounter interface {
	RemainingRounds(ctx context.Context, gameID uuid.UUID) (int, error)
}

// GameEndWriter marks a game ended.
type GameEndWriter interface {
	SetEnded(ctx context.Context, gameID uuid.UUID) (bool, error)
}

// GameService aggregates round lifecycles into the game lifecycle.
type GameService struct {
	rounds RoundCounter
	games  GameEndWriter
}

// NewGameService creates a new GameService.
func NewGameService(rounds RoundCounter, games GameEndWriter) *GameService {
	return &GameService{rounds: rounds, games: games}
}

// CheckGameEnd ends the game once no incomplete rounds remain. Replays and
// premature checks are no-ops; the ended_at guard makes the write
// idempotent.
func (s *GameService) CheckGameEnd(ctx context.Context, gameID uuid.UUID) error {
	remaining, err := s.rounds.RemainingRounds(ctx, gameID)
	if err != nil {
		logger.Log.Errorw("failed to count remaining rounds", "gameID", gameID, "error", err)
		return err
	}

	if remaining > 0 {
		logger.Log.Infow("game not ready to end", "game_id", gameID, "remaining_rounds", remaining)
		return nil
	}

	ended, err := s.games.SetEnded(ctx, gameID)
	if err != nil {
		logger.Log.Errorw("failed to end game", "gameID", gameID, "error", err)
		return err
	}

	if ended {
		logger.Log.Infow("game ended", "game_id", gameID)
	} else {
		logger.Log.Infow("game already ended, replay is a no-op", "game_id", gameID)
	}
	return nil
}
