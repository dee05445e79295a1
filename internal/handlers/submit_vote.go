package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/parlorgames/party-rounds/internal/jwt"
	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/models"
	"github.com/parlorgames/party-rounds/internal/services"
)

// VoteTokener defines only the methods needed by this handler.
type VoteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// VoteSubmitter defines the interface that the service must implement.
type VoteSubmitter interface {
	SubmitVote(ctx context.Context, roundID, userID, entryID uuid.UUID) (*models.GameRoundEntryVoteDB, error)
}

// SubmitVoteRequest represents the JSON body for casting a vote
// swagger:model SubmitVoteRequest
type SubmitVoteRequest struct {
	// Identifier of the entry voted for
	// required: true
	EntryID string `json:"entry_id"`
}

// SubmitVoteResponse represents a successful vote
// swagger:model SubmitVoteResponse
type SubmitVoteResponse struct {
	// Success message
	// default: Vote recorded
	Message string `json:"message"`

	// The recorded vote
	Vote models.GameRoundEntryVoteDB `json:"vote"`
}

// VoteErrorResponse represents an error response for voting
// swagger:model VoteErrorResponse
type VoteErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewSubmitVoteHandler returns an HTTP handler for casting a round vote.
// @Summary Cast a vote
// @Description Records the caller's vote for an entry while the round is fulfilled. First vote is final; voting for your own entry is forbidden.
// @Tags rounds
// @Accept json
// @Produce json
// @Param roundID path string true "Round ID"
// @Param request body handlers.SubmitVoteRequest true "Vote Request"
// @Success 201 {object} handlers.SubmitVoteResponse "Vote recorded"
// @Failure 400 {object} handlers.VoteErrorResponse "Invalid request or entry reference"
// @Failure 401 {object} handlers.VoteErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.VoteErrorResponse "Self vote forbidden"
// @Failure 404 {object} handlers.VoteErrorResponse "Round or membership not found"
// @Failure 409 {object} handlers.VoteErrorResponse "Round not accepting votes or duplicate vote"
// @Router /rounds/{roundID}/votes [post]
// @Security BearerAuth
func NewSubmitVoteHandler(
	svc VoteSubmitter,
	tokenGetter VoteTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(VoteErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(VoteErrorResponse{Error: "Unauthorized"})
			return
		}

		roundID, err := uuid.Parse(chi.URLParam(r, "roundID"))
		if err != nil {
			logger.Log.Warnw("invalid round id", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VoteErrorResponse{Error: "Invalid round id"})
			return
		}

		var req SubmitVoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode vote request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VoteErrorResponse{Error: "Invalid request body"})
			return
		}

		entryID, err := uuid.Parse(req.EntryID)
		if err != nil {
			logger.Log.Warnw("invalid entry id", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VoteErrorResponse{Error: "Invalid entry id"})
			return
		}

		vote, err := svc.SubmitVote(ctx, roundID, claims.UserID, entryID)
		if err != nil {
			writeVoteError(w, roundID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SubmitVoteResponse{
			Message: "Vote recorded",
			Vote:    *vote,
		})
	}
}

func writeVoteError(w http.ResponseWriter, roundID uuid.UUID, err error) {
	switch {
	case errors.Is(err, services.ErrRoundNotFound), errors.Is(err, services.ErrMembershipNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(VoteErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidEntryReference):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(VoteErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrSelfVoteForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(VoteErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrRoundNotAcceptingVotes), errors.Is(err, services.ErrDuplicateVote):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(VoteErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("failed to submit vote", "round_id", roundID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(VoteErrorResponse{Error: "Internal server error"})
	}
}
