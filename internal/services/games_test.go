package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/parlorgames/party-rounds/internal/services"
)

func TestGameService_CheckGameEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gameID := uuid.New()

	t.Run("ends the game when no rounds remain", func(t *testing.T) {
		rounds := services.NewMockRoundCounter(ctrl)
		games := services.NewMockGameEndWriter(ctrl)
		svc := services.NewGameService(rounds, games)

		rounds.EXPECT().RemainingRounds(gomock.Any(), gameID).Return(0, nil)
		games.EXPECT().SetEnded(gomock.Any(), gameID).Return(true, nil)

		assert.NoError(t, svc.CheckGameEnd(context.Background(), gameID))
	})

	t.Run("premature check is a no-op", func(t *testing.T) {
		rounds := services.NewMockRoundCounter(ctrl)
		games := services.NewMockGameEndWriter(ctrl)
		svc := services.NewGameService(rounds, games)

		rounds.EXPECT().RemainingRounds(gomock.Any(), gameID).Return(2, nil)

		assert.NoError(t, svc.CheckGameEnd(context.Background(), gameID))
	})

	t.Run("replay on an ended game is a no-op", func(t *testing.T) {
		rounds := services.NewMockRoundCounter(ctrl)
		games := services.NewMockGameEndWriter(ctrl)
		svc := services.NewGameService(rounds, games)

		rounds.EXPECT().RemainingRounds(gomock.Any(), gameID).Return(0, nil)
		games.EXPECT().SetEnded(gomock.Any(), gameID).Return(false, nil)

		assert.NoError(t, svc.CheckGameEnd(context.Background(), gameID))
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		rounds := services.NewMockRoundCounter(ctrl)
		games := services.NewMockGameEndWriter(ctrl)
		svc := services.NewGameService(rounds, games)

		rounds.EXPECT().RemainingRounds(gomock.Any(), gameID).Return(0, errors.New("query failed"))

		assert.EqualError(t, svc.CheckGameEnd(context.Background(), gameID), "query failed")
	})
}
