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
	"github.com/parlorgames/party-rounds/internal/models"
	"github.com/parlorgames/party-rounds/internal/services"
)

func TestSubmitVoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roundID := uuid.New()
	userID := uuid.New()
	entryID := uuid.New()

	authOK := func(m *MockVoteTokener) {
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		m.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil)
	}
	voteBody := `{"entry_id":"` + entryID.String() + `"}`

	tests := []struct {
		name         string
		roundParam   string
		body         string
		mockSetup    func(tok *MockVoteTokener, svc *MockVoteSubmitter)
		expectedCode int
		expectedErr  string
	}{
		{
			name:       "success",
			roundParam: roundID.String(),
			body:       voteBody,
			mockSetup: func(tok *MockVoteTokener, svc *MockVoteSubmitter) {
				authOK(tok)
				svc.EXPECT().
					SubmitVote(gomock.Any(), roundID, userID, entryID).
					Return(&models.GameRoundEntryVoteDB{VoteID: uuid.New(), RoundID: roundID, EntryID: entryID}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:       "missing token",
			roundParam: roundID.String(),
			body:       voteBody,
			mockSetup: func(tok *MockVoteTokener, svc *MockVoteSubmitter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no authorization header"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
		{
			name:       "invalid round id",
			roundParam: "nope",
			body:       voteBody,
			mockSetup: func(tok *MockVoteTokener, svc *MockVoteSubmitter) {
				authOK(tok)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid round id",
		},
		{
			name:       "invalid entry id",
			roundParam: roundID.String(),
			body:       `{"entry_id":"nope"}`,
			mockSetup: func(tok *MockVoteTokener, svc *MockVoteSubmitter) {
				authOK(tok)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid entry id",
		},
		{
			name:       "entry from another round",
			roundParam: roundID.String(),
			body:       voteBody,
			mockSetup: func(tok *MockVoteTokener, svc *MockVoteSubmitter) {
				authOK(tok)
				svc.EXPECT().SubmitVote(gomock.Any(), roundID, userID, entryID).
					Return(nil, services.ErrInvalidEntryReference)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  services.ErrInvalidEntryReference.Error(),
		},
		{
			name:       "self vote",
			roundParam: roundID.String(),
			body:       voteBody,
			mockSetup: func(tok *MockVoteTokener, svc *MockVoteSubmitter) {
				authOK(tok)
				svc.EXPECT().SubmitVote(gomock.Any(), roundID, userID, entryID).
					Return(nil, services.ErrSelfVoteForbidden)
			},
			expectedCode: http.StatusForbidden,
			expectedErr:  services.ErrSelfVoteForbidden.Error(),
		},
		{
			name:       "round not accepting votes",
			roundParam: roundID.String(),
			body:       voteBody,
			mockSetup: func(tok *MockVoteTokener, svc *MockVoteSubmitter) {
				authOK(tok)
				svc.EXPECT().SubmitVote(gomock.Any(), roundID, userID, entryID).
					Return(nil, services.ErrRoundNotAcceptingVotes)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  services.ErrRoundNotAcceptingVotes.Error(),
		},
		{
			name:       "duplicate vote",
			roundParam: roundID.String(),
			body:       voteBody,
			mockSetup: func(tok *MockVoteTokener, svc *MockVoteSubmitter) {
				authOK(tok)
				svc.EXPECT().SubmitVote(gomock.Any(), roundID, userID, entryID).
					Return(nil, services.ErrDuplicateVote)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  services.ErrDuplicateVote.Error(),
		},
		{
			name:       "round not found",
			roundParam: roundID.String(),
			body:       voteBody,
			mockSetup: func(tok *MockVoteTokener, svc *MockVoteSubmitter) {
				authOK(tok)
				svc.EXPECT().SubmitVote(gomock.Any(), roundID, userID, entryID).
					Return(nil, services.ErrRoundNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  services.ErrRoundNotFound.Error(),
		},
		{
			name:       "internal error",
			roundParam: roundID.String(),
			body:       voteBody,
			mockSetup: func(tok *MockVoteTokener, svc *MockVoteSubmitter) {
				authOK(tok)
				svc.EXPECT().SubmitVote(gomock.Any(), roundID, userID, entryID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockVoteTokener(ctrl)
			svc := NewMockVoteSubmitter(ctrl)
			tt.mockSetup(tok, svc)

			r := chi.NewRouter()
			r.Post("/rounds/{roundID}/votes", NewSubmitVoteHandler(svc, tok))

			req := httptest.NewRequest(http.MethodPost, "/rounds/"+tt.roundParam+"/votes", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				var resp VoteErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			}
			if tt.expectedCode == http.StatusCreated {
				var resp SubmitVoteResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "Vote recorded", resp.Message)
				assert.Equal(t, entryID, resp.Vote.EntryID)
			}
		})
	}
}
