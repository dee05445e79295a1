package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/parlorgames/party-rounds/internal/jwt"
	"github.com/parlorgames/party-rounds/internal/services"
)

func TestPromptApprovalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	promptID := uuid.New()
	userID := uuid.New()

	authOK := func(m *MockPromptTokener) {
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		m.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
	}

	tests := []struct {
		name         string
		promptParam  string
		body         string
		mockSetup    func(tok *MockPromptTokener, svc *MockPromptApprover)
		expectedCode int
	}{
		{
			name:        "approve",
			promptParam: promptID.String(),
			body:        `{"approved":true}`,
			mockSetup: func(tok *MockPromptTokener, svc *MockPromptApprover) {
				authOK(tok)
				svc.EXPECT().SetApproved(gomock.Any(), promptID, true).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:        "unapprove",
			promptParam: promptID.String(),
			body:        `{"approved":false}`,
			mockSetup: func(tok *MockPromptTokener, svc *MockPromptApprover) {
				authOK(tok)
				svc.EXPECT().SetApproved(gomock.Any(), promptID, false).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:        "missing token",
			promptParam: promptID.String(),
			body:        `{"approved":true}`,
			mockSetup: func(tok *MockPromptTokener, svc *MockPromptApprover) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no authorization header"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:        "invalid prompt id",
			promptParam: "nope",
			body:        `{"approved":true}`,
			mockSetup: func(tok *MockPromptTokener, svc *MockPromptApprover) {
				authOK(tok)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:        "invalid json",
			promptParam: promptID.String(),
			body:        `{"approved":`,
			mockSetup: func(tok *MockPromptTokener, svc *MockPromptApprover) {
				authOK(tok)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:        "prompt not found",
			promptParam: promptID.String(),
			body:        `{"approved":true}`,
			mockSetup: func(tok *MockPromptTokener, svc *MockPromptApprover) {
				authOK(tok)
				svc.EXPECT().SetApproved(gomock.Any(), promptID, true).
					Return(services.ErrPromptNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:        "internal error",
			promptParam: promptID.String(),
			body:        `{"approved":true}`,
			mockSetup: func(tok *MockPromptTokener, svc *MockPromptApprover) {
				authOK(tok)
				svc.EXPECT().SetApproved(gomock.Any(), promptID, true).
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockPromptTokener(ctrl)
			svc := NewMockPromptApprover(ctrl)
			tt.mockSetup(tok, svc)

			r := chi.NewRouter()
			r.Post("/prompts/{promptID}/approval", NewPromptApprovalHandler(svc, tok))

			req := httptest.NewRequest(http.MethodPost, "/prompts/"+tt.promptParam+"/approval", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp PromptApprovalResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "Prompt approval updated", resp.Message)
			}
		})
	}
}
