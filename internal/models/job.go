package models

// Target kinds a job may address.
const (
	TargetRound = "round"
	TargetGame  = "game"
)

// Actions a job may request. Force variants close a round past its
// operational deadline regardless of participation.
const (
	ActionStartRound       = "start_round"
	ActionCheckFulfillment = "check_fulfillment"
	ActionForceFulfillment = "force_fulfillment"
	ActionCheckCompletion  = "check_completion"
	ActionForceCompletion  = "force_completion"
	ActionCheckGameEnd     = "check_game_end"
)

// Job is the unit of asynchronous work delivered from the request-handling
// side to the worker side. Delivery is at-least-once; handlers must treat
// replays as no-ops.
type Job struct {
	JobID      string `json:"job_id"`      // Unique identifier of the job
	TargetKind string `json:"target_kind"` // "round" or "game"
	TargetID   string `json:"target_id"`   // Identifier of the targeted round or game
	Action     string `json:"action"`      // Requested transition
	Attempt    int    `json:"attempt"`     // Delivery attempt, incremented on requeue
}

// DeadLetter records a terminally failed job with full context for
// operator inspection.
type DeadLetter struct {
	Job    Job    `json:"job"`
	Reason string `json:"reason"`
}
