package services

import "errors"

var (
	// ErrInvalidTransition is a logically impossible state change, such as
	// skipping a lifecycle state. Terminal: never retried.
	ErrInvalidTransition = errors.New("invalid round state transition")

	// ErrRoundLocked means another transition attempt holds the per-round
	// lock. Retryable with backoff.
	ErrRoundLocked = errors.New("round is locked by another transition")

	// ErrDuplicateEntry is a conflicting concurrent entry write, surfaced to
	// the caller as a rejected action rather than a system fault.
	ErrDuplicateEntry = errors.New("member already has an entry for this round")

	// ErrDuplicateVote means the member already voted; first vote is final.
	ErrDuplicateVote = errors.New("member already voted in this round")

	// ErrRoundNotAcceptingEntries means the round is not in the entry phase.
	ErrRoundNotAcceptingEntries = errors.New("round is not accepting entries")

	// ErrRoundNotAcceptingVotes means the round is not in the voting phase.
	ErrRoundNotAcceptingVotes = errors.New("round is not accepting votes")

	// ErrInvalidEntryReference means the referenced entry does not belong to
	// the round being voted on.
	ErrInvalidEntryReference = errors.New("entry does not belong to this round")

	// ErrSelfVoteForbidden means a member tried to vote for their own entry.
	ErrSelfVoteForbidden = errors.New("voting for your own entry is forbidden")

	// ErrRoundNotFound means no round exists with the given identifier.
	ErrRoundNotFound = errors.New("round not found")

	// ErrMembershipNotFound means the caller is not a member of the round's game.
	ErrMembershipNotFound = errors.New("no game membership for this round")

	// ErrPromptNotFound means no prompt exists with the given identifier.
	ErrPromptNotFound = errors.New("prompt not found")

	// ErrNoApprovedPrompts means a round cannot start because the catalog has
	// no approved prompt to assign.
	ErrNoApprovedPrompts = errors.New("no approved prompts available")
)
