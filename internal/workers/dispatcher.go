package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/parlorgames/party-rounds/internal/jobqueue"
	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/models"
	"github.com/parlorgames/party-rounds/internal/services"
)

// JobSource delivers jobs and settles their outcome.
type JobSource interface {
	Fetch(ctx context.Context) (*jobqueue.Delivery, error)
	Ack(ctx context.Context, d *jobqueue.Delivery) error
	Nack(ctx context.Context, d *jobqueue.Delivery) error
	DeadLetter(ctx context.Context, d *jobqueue.Delivery, reason string) error
}

// RoundTransitioner executes round state transitions.
type RoundTransitioner interface {
	StartRound(ctx context.Context, roundID uuid.UUID) error
	FulfillRound(ctx context.Context, roundID uuid.UUID, force bool) error
	CompleteRound(ctx context.Context, roundID uuid.UUID, force bool) error
}

// GameEnder checks whether a game can end.
type GameEnder interface {
	CheckGameEnd(ctx context.Context, gameID uuid.UUID) error
}

// Dispatcher is the worker control loop: it resolves each job to a target
// and requested transition, executes it, and reports the outcome back to
// the transport. Retryable failures requeue the job unchanged; terminal
// failures dead-letter it so a state that cannot change is never retried
// forever. Failures are job-scoped and never stop the loop.
type Dispatcher struct {
	source JobSource
	rounds RoundTransitioner
	games  GameEnder
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(source JobSource, rounds RoundTransitioner, games GameEnder) *Dispatcher {
	return &Dispatcher{source: source, rounds: rounds, games: games}
}

// Run processes jobs until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		delivery, err := d.source.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Log.Errorw("failed to fetch job", "error", err)
			continue
		}

		if err := d.Process(ctx, delivery); err != nil {
			logger.Log.Errorw("failed to settle job",
				"job_id", delivery.Job.JobID, "error", err)
		}
	}
}

// Process executes one delivery and settles it with the transport.
func (d *Dispatcher) Process(ctx context.Context, delivery *jobqueue.Delivery) error {
	job := delivery.Job

	err := d.execute(ctx, job)
	if err == nil {
		logger.Log.Infow("job done",
			"job_id", job.JobID, "target_id", job.TargetID, "action", job.Action, "attempt", job.Attempt)
		return d.source.Ack(ctx, delivery)
	}

	if isTerminal(err) {
		return d.source.DeadLetter(ctx, delivery, err.Error())
	}

	logger.Log.Warnw("job failed, requeueing",
		"job_id", job.JobID, "target_id", job.TargetID, "action", job.Action,
		"attempt", job.Attempt, "error", err)
	return d.source.Nack(ctx, delivery)
}

// execute resolves the job target and runs one state transition.
func (d *Dispatcher) execute(ctx context.Context, job models.Job) error {
	targetID, err := uuid.Parse(job.TargetID)
	if err != nil {
		return terminalf("unparseable target id %q: %v", job.TargetID, err)
	}

	switch job.TargetKind {
	case models.TargetRound:
		switch job.Action {
		case models.ActionStartRound:
			return d.rounds.StartRound(ctx, targetID)
		case models.ActionCheckFulfillment:
			return d.rounds.FulfillRound(ctx, targetID, false)
		case models.ActionForceFulfillment:
			return d.rounds.FulfillRound(ctx, targetID, true)
		case models.ActionCheckCompletion:
			return d.rounds.CompleteRound(ctx, targetID, false)
		case models.ActionForceCompletion:
			return d.rounds.CompleteRound(ctx, targetID, true)
		}
		return terminalf("unknown round action %q", job.Action)

	case models.TargetGame:
		if job.Action == models.ActionCheckGameEnd {
			return d.games.CheckGameEnd(ctx, targetID)
		}
		return terminalf("unknown game action %q", job.Action)
	}

	return terminalf("unknown target kind %q", job.TargetKind)
}

// terminalError marks failures that no amount of redelivery can fix.
type terminalError struct {
	msg string
}

func (e *terminalError) Error() string { return e.msg }

func terminalf(format string, args ...any) error {
	return &terminalError{msg: fmt.Sprintf(format, args...)}
}

// isTerminal classifies a transition failure. Logically impossible
// transitions and unresolvable targets are terminal; lock contention and
// store failures are transient and worth redelivering.
func isTerminal(err error) bool {
	var term *terminalError
	if errors.As(err, &term) {
		return true
	}
	return errors.Is(err, services.ErrInvalidTransition) ||
		errors.Is(err, services.ErrRoundNotFound)
}
