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

// StateTokener defines only the methods needed by this handler.
type StateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RoundStateReader defines the interface that the service must implement.
type RoundStateReader interface {
	GetRoundState(ctx context.Context, roundID uuid.UUID) (*models.RoundStateView, error)
}

// RoundStateErrorResponse represents an error response for the state read
// swagger:model RoundStateErrorResponse
type RoundStateErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewRoundStateHandler returns an HTTP handler for reading a round's state.
// @Summary Get round state
// @Description Returns the round with its derived lifecycle state and participation counts. Pure read, never performs a transition.
// @Tags rounds
// @Produce json
// @Param roundID path string true "Round ID"
// @Success 200 {object} models.RoundStateView "Round state"
// @Failure 400 {object} handlers.RoundStateErrorResponse "Invalid round id"
// @Failure 401 {object} handlers.RoundStateErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.RoundStateErrorResponse "Round not found"
// @Router /rounds/{roundID} [get]
// @Security BearerAuth
func NewRoundStateHandler(
	svc RoundStateReader,
	tokenGetter StateTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RoundStateErrorResponse{Error: "Unauthorized"})
			return
		}

		if _, err := tokenGetter.GetClaims(ctx, tokenStr); err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RoundStateErrorResponse{Error: "Unauthorized"})
			return
		}

		roundID, err := uuid.Parse(chi.URLParam(r, "roundID"))
		if err != nil {
			logger.Log.Warnw("invalid round id", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RoundStateErrorResponse{Error: "Invalid round id"})
			return
		}

		view, err := svc.GetRoundState(ctx, roundID)
		if err != nil {
			if errors.Is(err, services.ErrRoundNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RoundStateErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to read round state", "round_id", roundID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RoundStateErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(view)
	}
}
