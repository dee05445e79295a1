package handlers

import (
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
	"github.com/parlorgames/party-rounds/internal/models"
	"github.com/parlorgames/party-rounds/internal/services"
)

func TestRoundStateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roundID := uuid.New()
	userID := uuid.New()

	authOK := func(m *MockStateTokener) {
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		m.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
	}

	tests := []struct {
		name         string
		roundParam   string
		mockSetup    func(tok *MockStateTokener, svc *MockRoundStateReader)
		expectedCode int
	}{
		{
			name:       "success",
			roundParam: roundID.String(),
			mockSetup: func(tok *MockStateTokener, svc *MockRoundStateReader) {
				authOK(tok)
				svc.EXPECT().GetRoundState(gomock.Any(), roundID).Return(&models.RoundStateView{
					Round:      models.GameRoundDB{RoundID: roundID},
					State:      "started",
					EntryCount: 2,
					VoteCount:  0,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:       "missing token",
			roundParam: roundID.String(),
			mockSetup: func(tok *MockStateTokener, svc *MockRoundStateReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no authorization header"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "invalid round id",
			roundParam: "nope",
			mockSetup: func(tok *MockStateTokener, svc *MockRoundStateReader) {
				authOK(tok)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "round not found",
			roundParam: roundID.String(),
			mockSetup: func(tok *MockStateTokener, svc *MockRoundStateReader) {
				authOK(tok)
				svc.EXPECT().GetRoundState(gomock.Any(), roundID).
					Return(nil, services.ErrRoundNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:       "internal error",
			roundParam: roundID.String(),
			mockSetup: func(tok *MockStateTokener, svc *MockRoundStateReader) {
				authOK(tok)
				svc.EXPECT().GetRoundState(gomock.Any(), roundID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockStateTokener(ctrl)
			svc := NewMockRoundStateReader(ctrl)
			tt.mockSetup(tok, svc)

			r := chi.NewRouter()
			r.Get("/rounds/{roundID}", NewRoundStateHandler(svc, tok))

			req := httptest.NewRequest(http.MethodGet, "/rounds/"+tt.roundParam, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var view models.RoundStateView
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
				assert.Equal(t, "started", view.State)
				assert.Equal(t, 2, view.EntryCount)
				assert.Equal(t, roundID, view.Round.RoundID)
			}
		})
	}
}
