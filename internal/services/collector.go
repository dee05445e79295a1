package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/models"
	"github.com/parlorgames/party-rounds/internal/repositories"
)

// RoundGetter reads a round's current persisted state.
type RoundGetter interface {
	GetByID(ctx context.Context, roundID uuid.UUID) (*models.GameRoundDB, error) // Returns nil if the round does not exist
}

// MemberResolver resolves the caller's game membership for a round.
type MemberResolver interface {
	GetForUserRound(ctx context.Context, roundID, userID uuid.UUID) (*models.GameMembershipDB, error)
}

// EntryWriter records member submissions.
type EntryWriter interface {
	Upsert(ctx context.Context, roundID, memberID uuid.UUID, content string) (*models.GameRoundEntryDB, error)
}

// EntryReader reads submissions.
type EntryReader interface {
	GetByID(ctx context.Context, entryID uuid.UUID) (*models.GameRoundEntryDB, error)
	CountByRound(ctx context.Context, roundID uuid.UUID) (int, error)
}

// VoteWriter records votes.
type VoteWriter interface {
	Insert(ctx context.Context, roundID, memberID, entryID uuid.UUID) (*models.GameRoundEntryVoteDB, error)
}

// VoteCounter reads vote counts.
type VoteCounter interface {
	CountByRound(ctx context.Context, roundID uuid.UUID) (int, error)
}

// JobEnqueuer hands a job to the asynchronous transport. Delivery is
// at-least-once; every enqueued action must be idempotent on replay.
type JobEnqueuer interface {
	Enqueue(ctx context.Context, job models.Job) error
}

// CollectorService validates and persists a single player's entry or vote
// for a round. It never performs a state transition itself; state-advancing
// work is represented as a job and handed to the transport.
type CollectorService struct {
	rounds      RoundGetter
	memberships MemberResolver
	entryWrite  EntryWriter
	entryRead   EntryReader
	voteWrite   VoteWriter
	voteRead    VoteCounter
	jobs        JobEnqueuer
}

// NewCollectorService creates a new CollectorService.
func NewCollectorService(
	rounds RoundGetter,
	memberships MemberResolver,
	entryWrite EntryWriter,
	entryRead EntryReader,
	voteWrite VoteWriter,
	voteRead VoteCounter,
	jobs JobEnqueuer,
) *CollectorService {
	return &CollectorService{
		rounds:      rounds,
		memberships: memberships,
		entryWrite:  entryWrite,
		entryRead:   entryRead,
		voteWrite:   voteWrite,
		voteRead:    voteRead,
		jobs:        jobs,
	}
}

// enqueueCheck hands a follow-up check job to the transport. Failures are
// logged, not surfaced: the player's write already committed, and a missed
// check is recovered by the next one or the operational force-close.
func (s *CollectorService) enqueueCheck(ctx context.Context, roundID uuid.UUID, action string) {
	job := models.Job{
		JobID:      uuid.NewString(),
		TargetKind: models.TargetRound,
		TargetID:   roundID.String(),
		Action:     action,
	}

	if err := s.jobs.Enqueue(ctx, job); err != nil {
		logger.Log.Errorw("failed to enqueue check job",
			"job_id", job.JobID, "round_id", roundID, "action", action, "error", err)
		return
	}
	logger.Log.Infow("check job enqueued", "job_id", job.JobID, "round_id", roundID, "action", action)
}

// SubmitEntry records a member's submission for a round in the entry phase.
// Re-submission before fulfillment overwrites (last write wins); a
// conflicting concurrent insert is rejected as a duplicate, never silently
// merged.
func (s *CollectorService) SubmitEntry(ctx context.Context, roundID, userID uuid.UUID, content string) (*models.GameRoundEntryDB, error) {
	round, err := s.rounds.GetByID(ctx, roundID)
	if err != nil {
		logger.Log.Errorw("failed to read round", "roundID", roundID, "error", err)
		return nil, err
	}
	if round == nil {
		return nil, ErrRoundNotFound
	}

	member, err := s.memberships.GetForUserRound(ctx, roundID, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve membership", "roundID", roundID, "userID", userID, "error", err)
		return nil, err
	}
	if member == nil {
		return nil, ErrMembershipNotFound
	}

	if models.StateOf(*round) != models.RoundStarted {
		return nil, ErrRoundNotAcceptingEntries
	}

	entry, err := s.entryWrite.Upsert(ctx, roundID, member.MemberID, content)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		logger.Log.Errorw("failed to write entry", "roundID", roundID, "memberID", member.MemberID, "error", err)
		return nil, err
	}

	s.enqueueCheck(ctx, roundID, models.ActionCheckFulfillment)

	return entry, nil
}

// SubmitVote records a member's vote for another member's entry while the
// round is fulfilled and not yet completed. First vote is final.
func (s *CollectorService) SubmitVote(ctx context.Context, roundID, userID, entryID uuid.UUID) (*models.GameRoundEntryVoteDB, error) {
	round, err := s.rounds.GetByID(ctx, roundID)
	if err != nil {
		logger.Log.Errorw("failed to read round", "roundID", roundID, "error", err)
		return nil, err
	}
	if round == nil {
		return nil, ErrRoundNotFound
	}

	member, err := s.memberships.GetForUserRound(ctx, roundID, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve membership", "roundID", roundID, "userID", userID, "error", err)
		return nil, err
	}
	if member == nil {
		return nil, ErrMembershipNotFound
	}

	if models.StateOf(*round) != models.RoundFulfilled {
		return nil, ErrRoundNotAcceptingVotes
	}

	entry, err := s.entryRead.GetByID(ctx, entryID)
	if err != nil {
		logger.Log.Errorw("failed to read entry", "entryID", entryID, "error", err)
		return nil, err
	}
	if entry == nil || entry.RoundID != roundID {
		return nil, ErrInvalidEntryReference
	}
	if entry.MemberID == member.MemberID {
		return nil, ErrSelfVoteForbidden
	}

	vote, err := s.voteWrite.Insert(ctx, roundID, member.MemberID, entryID)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrDuplicateVote
		}
		logger.Log.Errorw("failed to write vote", "roundID", roundID, "memberID", member.MemberID, "error", err)
		return nil, err
	}

	s.enqueueCheck(ctx, roundID, models.ActionCheckCompletion)

	return vote, nil
}

// GetRoundState returns the round with its derived lifecycle state and
// participation counts. Pure read, no side effects.
func (s *CollectorService) GetRoundState(ctx context.Context, roundID uuid.UUID) (*models.RoundStateView, error) {
	round, err := s.rounds.GetByID(ctx, roundID)
	if err != nil {
		logger.Log.Errorw("failed to read round", "roundID", roundID, "error", err)
		return nil, err
	}
	if round == nil {
		return nil, ErrRoundNotFound
	}

	entryCount, err := s.entryRead.CountByRound(ctx, roundID)
	if err != nil {
		logger.Log.Errorw("failed to count entries", "roundID", roundID, "error", err)
		return nil, err
	}

	voteCount, err := s.voteRead.CountByRound(ctx, roundID)
	if err != nil {
		logger.Log.Errorw("failed to count votes", "roundID", roundID, "error", err)
		return nil, err
	}

	return &models.RoundStateView{
		Round:      *round,
		State:      models.StateOf(*round).String(),
		EntryCount: entryCount,
		VoteCount:  voteCount,
	}, nil
}
