package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/models"
	"github.com/parlorgames/party-rounds/internal/repositories"
)

// autoEntryPlaceholder is the content of system-generated fill-in entries.
const autoEntryPlaceholder = "(no answer)"

// RoundLocker serializes transition attempts per round. fn runs inside the
// lock's transaction; the commit releases the lock.
type RoundLocker interface {
	WithRoundLock(ctx context.Context, roundID uuid.UUID, fn func(ctx context.Context) error) error
}

// RoundReader reads round state. Transition decisions always re-read inside
// the guarded section.
type RoundReader interface {
	GetByID(ctx context.Context, roundID uuid.UUID) (*models.GameRoundDB, error)
}

// RoundWriter applies round lifecycle writes.
type RoundWriter interface {
	SetStarted(ctx context.Context, roundID, promptID uuid.UUID) error
	SetFulfilled(ctx context.Context, roundID uuid.UUID) error
	SetCompleted(ctx context.Context, roundID uuid.UUID, winnerEntryID *uuid.UUID) error
}

// RosterReader resolves round eligibility from the game membership snapshot.
type RosterReader interface {
	CountEligible(ctx context.Context, gameID uuid.UUID) (int, error)
	ListMissingEntries(ctx context.Context, roundID uuid.UUID) ([]uuid.UUID, error)
}

// AutoEntryWriter synthesizes placeholder entries at fulfillment time.
type AutoEntryWriter interface {
	InsertAuto(ctx context.Context, roundID, memberID uuid.UUID, placeholder string) error
}

// TallyReader reads vote tallies for completion.
type TallyReader interface {
	CountByRound(ctx context.Context, roundID uuid.UUID) (int, error)
	TallyByRound(ctx context.Context, roundID uuid.UUID) ([]models.EntryTally, error)
}

// PromptPicker supplies a prompt for rounds that reach start without one.
type PromptPicker interface {
	RandomApproved(ctx context.Context) (*models.PromptDB, error)
}

// RoundLifecycleService owns the transition logic for one round:
// created -> started -> fulfilled -> completed. Each transition executes
// under the per-round lock, re-reads persisted state before deciding, and
// treats "already at or past the target state" as success so that
// at-least-once job delivery never double-processes a round.
type RoundLifecycleService struct {
	locks     RoundLocker
	roundRead RoundReader
	rounds    RoundWriter
	roster    RosterReader
	entries   AutoEntryWriter
	votes     TallyReader
	prompts   PromptPicker
	jobs      JobEnqueuer
}

// NewRoundLifecycleService creates a new RoundLifecycleService.
func NewRoundLifecycleService(
	locks RoundLocker,
	roundRead RoundReader,
	rounds RoundWriter,
	roster RosterReader,
	entries AutoEntryWriter,
	votes TallyReader,
	prompts PromptPicker,
	jobs JobEnqueuer,
) *RoundLifecycleService {
	return &RoundLifecycleService{
		locks:     locks,
		roundRead: roundRead,
		rounds:    rounds,
		roster:    roster,
		entries:   entries,
		votes:     votes,
		prompts:   prompts,
		jobs:      jobs,
	}
}

// withLock runs fn under the per-round lock and translates lock contention
// into the retryable taxonomy error.
func (s *RoundLifecycleService) withLock(ctx context.Context, roundID uuid.UUID, fn func(ctx context.Context) error) error {
	err := s.locks.WithRoundLock(ctx, roundID, fn)
	if errors.Is(err, repositories.ErrRoundBusy) {
		return ErrRoundLocked
	}
	return err
}

// loadRound re-reads the round inside the guarded section.
func (s *RoundLifecycleService) loadRound(ctx context.Context, roundID uuid.UUID) (*models.GameRoundDB, error) {
	round, err := s.roundRead.GetByID(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if round == nil {
		return nil, ErrRoundNotFound
	}
	return round, nil
}

// StartRound moves a round from created to started, assigning a prompt from
// the approved catalog when none was assigned at creation.
func (s *RoundLifecycleService) StartRound(ctx context.Context, roundID uuid.UUID) error {
	return s.withLock(ctx, roundID, func(ctx context.Context) error {
		round, err := s.loadRound(ctx, roundID)
		if err != nil {
			return err
		}

		if models.StateOf(*round) >= models.RoundStarted {
			logger.Log.Infow("round already started, replay is a no-op", "round_id", roundID)
			return nil
		}

		promptID := round.PromptID
		if promptID == nil {
			prompt, err := s.prompts.RandomApproved(ctx)
			if err != nil {
				if errors.Is(err, ErrNoApprovedPrompts) {
					// A round cannot start without a prompt; retrying
					// against an empty catalog cannot change the outcome.
					return ErrInvalidTransition
				}
				return err
			}
			promptID = &prompt.PromptID
		}

		if err := s.rounds.SetStarted(ctx, roundID, *promptID); err != nil {
			return err
		}

		logger.Log.Infow("round started", "round_id", roundID, "prompt_id", *promptID)
		return nil
	})
}

// FulfillRound closes the entry phase once every eligible member has an
// entry, or immediately when forced past the operational deadline. Members
// with no entry get a synthesized auto entry so the vote options are
// complete. Not-ready rounds are left untouched; the next entry submission
// enqueues another check.
func (s *RoundLifecycleService) FulfillRound(ctx context.Context, roundID uuid.UUID, force bool) error {
	return s.withLock(ctx, roundID, func(ctx context.Context) error {
		round, err := s.loadRound(ctx, roundID)
		if err != nil {
			return err
		}

		switch state := models.StateOf(*round); {
		case state >= models.RoundFulfilled:
			logger.Log.Infow("round already fulfilled, replay is a no-op", "round_id", roundID)
			return nil
		case state < models.RoundStarted:
			// created -> fulfilled skips the entry phase entirely.
			return ErrInvalidTransition
		}

		missing, err := s.roster.ListMissingEntries(ctx, roundID)
		if err != nil {
			return err
		}

		if len(missing) > 0 && !force {
			logger.Log.Infow("round not ready to fulfill",
				"round_id", roundID, "missing_entries", len(missing))
			return nil
		}

		for _, memberID := range missing {
			if err := s.entries.InsertAuto(ctx, roundID, memberID, autoEntryPlaceholder); err != nil {
				return err
			}
		}

		if err := s.rounds.SetFulfilled(ctx, roundID); err != nil {
			return err
		}

		logger.Log.Infow("round fulfilled",
			"round_id", roundID, "auto_entries", len(missing), "forced", force)
		return nil
	})
}

// CompleteRound closes voting once every eligible member has voted, or
// immediately when forced. The entry with the highest vote count wins; ties
// break to the earliest-created entry, and a zero-vote round completes with
// no winner rather than failing. Completion enqueues a game-end check.
func (s *RoundLifecycleService) CompleteRound(ctx context.Context, roundID uuid.UUID, force bool) error {
	var gameID uuid.UUID
	var completed bool

	err := s.withLock(ctx, roundID, func(ctx context.Context) error {
		round, err := s.loadRound(ctx, roundID)
		if err != nil {
			return err
		}

		switch state := models.StateOf(*round); {
		case state == models.RoundCompleted:
			logger.Log.Infow("round already completed, replay is a no-op", "round_id", roundID)
			return nil
		case state < models.RoundFulfilled:
			// started -> completed skips the voting phase.
			return ErrInvalidTransition
		}

		voteCount, err := s.votes.CountByRound(ctx, roundID)
		if err != nil {
			return err
		}

		eligible, err := s.roster.CountEligible(ctx, round.GameID)
		if err != nil {
			return err
		}

		if voteCount < eligible && !force {
			logger.Log.Infow("round not ready to complete",
				"round_id", roundID, "votes", voteCount, "eligible", eligible)
			return nil
		}

		winner, err := s.pickWinner(ctx, roundID)
		if err != nil {
			return err
		}

		if err := s.rounds.SetCompleted(ctx, roundID, winner); err != nil {
			return err
		}

		gameID = round.GameID
		completed = true

		logger.Log.Infow("round completed",
			"round_id", roundID, "winner_entry_id", winner, "votes", voteCount, "forced", force)
		return nil
	})
	if err != nil {
		return err
	}

	// Enqueue outside the lock so the follow-up job only exists once the
	// completion has committed.
	if completed {
		job := models.Job{
			JobID:      uuid.NewString(),
			TargetKind: models.TargetGame,
			TargetID:   gameID.String(),
			Action:     models.ActionCheckGameEnd,
		}
		if err := s.jobs.Enqueue(ctx, job); err != nil {
			logger.Log.Errorw("failed to enqueue game end check",
				"job_id", job.JobID, "game_id", gameID, "error", err)
		}
	}

	return nil
}

// pickWinner computes the round outcome from the tally: highest vote count
// wins, earliest-created entry breaks ties, zero votes means no winner.
func (s *RoundLifecycleService) pickWinner(ctx context.Context, roundID uuid.UUID) (*uuid.UUID, error) {
	tallies, err := s.votes.TallyByRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	if len(tallies) == 0 || tallies[0].Votes == 0 {
		return nil, nil
	}

	winner := tallies[0].EntryID
	return &winner, nil
}
