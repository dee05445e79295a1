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

// EntryTokener defines only the methods needed by this handler.
type EntryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// EntrySubmitter defines the interface that the service must implement.
type EntrySubmitter interface {
	SubmitEntry(ctx context.Context, roundID, userID uuid.UUID, content string) (*models.GameRoundEntryDB, error)
}

// SubmitEntryRequest represents the JSON body for submitting a round entry
// swagger:model SubmitEntryRequest
type SubmitEntryRequest struct {
	// Entry content
	// required: true
	Entry string `json:"entry"`
}

// SubmitEntryResponse represents a successful entry submission
// swagger:model SubmitEntryResponse
type SubmitEntryResponse struct {
	// Success message
	// default: Entry recorded
	Message string `json:"message"`

	// The recorded entry
	Entry models.GameRoundEntryDB `json:"entry"`
}

// EntryErrorResponse represents an error response for entry submission
// swagger:model EntryErrorResponse
type EntryErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewSubmitEntryHandler returns an HTTP handler for submitting a round entry.
// @Summary Submit a round entry
// @Description Records the caller's submission for a round in the entry phase. Re-submission before fulfillment overwrites the previous content.
// @Tags rounds
// @Accept json
// @Produce json
// @Param roundID path string true "Round ID"
// @Param request body handlers.SubmitEntryRequest true "Entry Request"
// @Success 201 {object} handlers.SubmitEntryResponse "Entry recorded"
// @Failure 400 {object} handlers.EntryErrorResponse "Invalid request"
// @Failure 401 {object} handlers.EntryErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EntryErrorResponse "Round or membership not found"
// @Failure 409 {object} handlers.EntryErrorResponse "Round not accepting entries or duplicate entry"
// @Router /rounds/{roundID}/entries [post]
// @Security BearerAuth
func NewSubmitEntryHandler(
	svc EntrySubmitter,
	tokenGetter EntryTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EntryErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EntryErrorResponse{Error: "Unauthorized"})
			return
		}

		roundID, err := uuid.Parse(chi.URLParam(r, "roundID"))
		if err != nil {
			logger.Log.Warnw("invalid round id", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EntryErrorResponse{Error: "Invalid round id"})
			return
		}

		var req SubmitEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode entry request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EntryErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Entry == "" {
			logger.Log.Warnw("empty entry content", "round_id", roundID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EntryErrorResponse{Error: "Entry must not be empty"})
			return
		}

		entry, err := svc.SubmitEntry(ctx, roundID, claims.UserID, req.Entry)
		if err != nil {
			writeEntryError(w, roundID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SubmitEntryResponse{
			Message: "Entry recorded",
			Entry:   *entry,
		})
	}
}

func writeEntryError(w http.ResponseWriter, roundID uuid.UUID, err error) {
	switch {
	case errors.Is(err, services.ErrRoundNotFound), errors.Is(err, services.ErrMembershipNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(EntryErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrRoundNotAcceptingEntries), errors.Is(err, services.ErrDuplicateEntry):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(EntryErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("failed to submit entry", "round_id", roundID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(EntryErrorResponse{Error: "Internal server error"})
	}
}
