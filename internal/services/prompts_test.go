package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/parlorgames/party-rounds/internal/models"
	"github.com/parlorgames/party-rounds/internal/services"
)

func TestPromptService_RandomApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := []models.PromptDB{
		{PromptID: uuid.New(), Text: "worst superpower", Approved: true},
		{PromptID: uuid.New(), Text: "best excuse", Approved: true},
	}

	t.Run("serves from cache", func(t *testing.T) {
		readRepo := services.NewMockPromptReader(ctrl)
		writeRepo := services.NewMockPromptWriter(ctrl)
		cacheRepo := services.NewMockPromptCache(ctrl)
		svc := services.NewPromptService(readRepo, writeRepo, cacheRepo)

		cacheRepo.EXPECT().GetApproved(gomock.Any()).Return(catalog, nil)

		prompt, err := svc.RandomApproved(context.Background())
		assert.NoError(t, err)
		assert.Contains(t, catalog, *prompt)
	})

	t.Run("falls back to the store on cache miss and repopulates", func(t *testing.T) {
		readRepo := services.NewMockPromptReader(ctrl)
		writeRepo := services.NewMockPromptWriter(ctrl)
		cacheRepo := services.NewMockPromptCache(ctrl)
		svc := services.NewPromptService(readRepo, writeRepo, cacheRepo)

		cacheRepo.EXPECT().GetApproved(gomock.Any()).Return(nil, redis.Nil)
		readRepo.EXPECT().ListApproved(gomock.Any()).Return(catalog, nil)
		cacheRepo.EXPECT().SetApproved(gomock.Any(), catalog).Return(nil)

		prompt, err := svc.RandomApproved(context.Background())
		assert.NoError(t, err)
		assert.Contains(t, catalog, *prompt)
	})

	t.Run("empty catalog", func(t *testing.T) {
		readRepo := services.NewMockPromptReader(ctrl)
		writeRepo := services.NewMockPromptWriter(ctrl)
		cacheRepo := services.NewMockPromptCache(ctrl)
		svc := services.NewPromptService(readRepo, writeRepo, cacheRepo)

		cacheRepo.EXPECT().GetApproved(gomock.Any()).Return(nil, redis.Nil)
		readRepo.EXPECT().ListApproved(gomock.Any()).Return(nil, nil)
		cacheRepo.EXPECT().SetApproved(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.RandomApproved(context.Background())
		assert.ErrorIs(t, err, services.ErrNoApprovedPrompts)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		readRepo := services.NewMockPromptReader(ctrl)
		writeRepo := services.NewMockPromptWriter(ctrl)
		cacheRepo := services.NewMockPromptCache(ctrl)
		svc := services.NewPromptService(readRepo, writeRepo, cacheRepo)

		cacheRepo.EXPECT().GetApproved(gomock.Any()).Return(nil, redis.Nil)
		readRepo.EXPECT().ListApproved(gomock.Any()).Return(nil, errors.New("query failed"))

		_, err := svc.RandomApproved(context.Background())
		assert.EqualError(t, err, "query failed")
	})
}

func TestPromptService_SetApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	promptID := uuid.New()

	t.Run("toggles approval and invalidates the cache", func(t *testing.T) {
		readRepo := services.NewMockPromptReader(ctrl)
		writeRepo := services.NewMockPromptWriter(ctrl)
		cacheRepo := services.NewMockPromptCache(ctrl)
		svc := services.NewPromptService(readRepo, writeRepo, cacheRepo)

		writeRepo.EXPECT().SetApproved(gomock.Any(), promptID, true).Return(nil)
		cacheRepo.EXPECT().Invalidate(gomock.Any()).Return(nil)

		assert.NoError(t, svc.SetApproved(context.Background(), promptID, true))
	})

	t.Run("unknown prompt", func(t *testing.T) {
		readRepo := services.NewMockPromptReader(ctrl)
		writeRepo := services.NewMockPromptWriter(ctrl)
		cacheRepo := services.NewMockPromptCache(ctrl)
		svc := services.NewPromptService(readRepo, writeRepo, cacheRepo)

		writeRepo.EXPECT().SetApproved(gomock.Any(), promptID, false).Return(sql.ErrNoRows)

		err := svc.SetApproved(context.Background(), promptID, false)
		assert.ErrorIs(t, err, services.ErrPromptNotFound)
	})

	t.Run("cache invalidation failure does not fail the toggle", func(t *testing.T) {
		readRepo := services.NewMockPromptReader(ctrl)
		writeRepo := services.NewMockPromptWriter(ctrl)
		cacheRepo := services.NewMockPromptCache(ctrl)
		svc := services.NewPromptService(readRepo, writeRepo, cacheRepo)

		writeRepo.EXPECT().SetApproved(gomock.Any(), promptID, true).Return(nil)
		cacheRepo.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

		assert.NoError(t, svc.SetApproved(context.Background(), promptID, true))
	})
}
