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
	"github.com/parlorgames/party-rounds/internal/services"
)

// PromptTokener defines only the methods needed by this handler.
type PromptTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PromptApprover defines the interface that the service must implement.
type PromptApprover interface {
	SetApproved(ctx context.Context, promptID uuid.UUID, approved bool) error
}

// PromptApprovalRequest represents the JSON body for toggling prompt approval
// swagger:model PromptApprovalRequest
type PromptApprovalRequest struct {
	// Desired approval state
	// required: true
	Approved bool `json:"approved"`
}

// PromptApprovalResponse represents a successful approval toggle
// swagger:model PromptApprovalResponse
type PromptApprovalResponse struct {
	// Success message
	// default: Prompt approval updated
	Message string `json:"message"`
}

// PromptErrorResponse represents an error response for prompt moderation
// swagger:model PromptErrorResponse
type PromptErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewPromptApprovalHandler returns an HTTP handler for toggling a prompt's approval.
// @Summary Toggle prompt approval
// @Description Approves or unapproves a catalog prompt. Prompts are append-only; approval is their only mutable state.
// @Tags prompts
// @Accept json
// @Produce json
// @Param promptID path string true "Prompt ID"
// @Param request body handlers.PromptApprovalRequest true "Approval Request"
// @Success 200 {object} handlers.PromptApprovalResponse "Approval updated"
// @Failure 400 {object} handlers.PromptErrorResponse "Invalid request"
// @Failure 401 {object} handlers.PromptErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.PromptErrorResponse "Prompt not found"
// @Router /prompts/{promptID}/approval [post]
// @Security BearerAuth
func NewPromptApprovalHandler(
	svc PromptApprover,
	tokenGetter PromptTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PromptErrorResponse{Error: "Unauthorized"})
			return
		}

		if _, err := tokenGetter.GetClaims(ctx, tokenStr); err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PromptErrorResponse{Error: "Unauthorized"})
			return
		}

		promptID, err := uuid.Parse(chi.URLParam(r, "promptID"))
		if err != nil {
			logger.Log.Warnw("invalid prompt id", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PromptErrorResponse{Error: "Invalid prompt id"})
			return
		}

		var req PromptApprovalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode approval request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PromptErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.SetApproved(ctx, promptID, req.Approved); err != nil {
			if errors.Is(err, services.ErrPromptNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PromptErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to toggle prompt approval", "prompt_id", promptID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PromptErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PromptApprovalResponse{Message: "Prompt approval updated"})
	}
}
