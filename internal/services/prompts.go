package services

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/models"
)

// PromptReader reads the prompt catalog from the store.
type PromptReader interface {
	ListApproved(ctx context.Context) ([]models.PromptDB, error) // Returns all approved prompts
}

// PromptWriter handles moderation writes.
type PromptWriter interface {
	SetApproved(ctx context.Context, promptID uuid.UUID, approved bool) error // Toggles the approval flag
}

// PromptCache caches the approved catalog.
type PromptCache interface {
	GetApproved(ctx context.Context) ([]models.PromptDB, error)       // Returns the cached catalog
	SetApproved(ctx context.Context, prompts []models.PromptDB) error // Caches the catalog
	Invalidate(ctx context.Context) error                             // Drops the cached catalog
}

// PromptService serves the approved prompt catalog cache-first and applies
// moderation toggles.
type PromptService struct {
	readRepo  PromptReader
	writeRepo PromptWriter
	cacheRepo PromptCache
}

// NewPromptService creates a new PromptService.
func NewPromptService(readRepo PromptReader, writeRepo PromptWriter, cacheRepo PromptCache) *PromptService {
	return &PromptService{
		readRepo:  readRepo,
		writeRepo: writeRepo,
		cacheRepo: cacheRepo,
	}
}

// RandomApproved picks a random approved prompt, reading the catalog from
// cache first and falling back to the store on a miss.
func (s *PromptService) RandomApproved(ctx context.Context) (*models.PromptDB, error) {
	prompts, err := s.cacheRepo.GetApproved(ctx)
	if err != nil {
		prompts, err = s.readRepo.ListApproved(ctx)
		if err != nil {
			logger.Log.Errorw("failed to load prompt catalog", "error", err)
			return nil, err
		}

		if err := s.cacheRepo.SetApproved(ctx, prompts); err != nil {
			logger.Log.Errorw("failed to cache prompt catalog", "error", err)
		}
	}

	if len(prompts) == 0 {
		return nil, ErrNoApprovedPrompts
	}

	prompt := prompts[rand.Intn(len(prompts))]
	return &prompt, nil
}

// SetApproved toggles a prompt's approval and invalidates the cached catalog.
func (s *PromptService) SetApproved(ctx context.Context, promptID uuid.UUID, approved bool) error {
	if err := s.writeRepo.SetApproved(ctx, promptID, approved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPromptNotFound
		}
		logger.Log.Errorw("failed to toggle prompt approval", "promptID", promptID, "error", err)
		return err
	}

	if err := s.cacheRepo.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate prompt cache", "error", err)
	}

	return nil
}
