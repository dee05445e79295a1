package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/models"
)

const approvedPromptsKey = "prompts:approved"

// PromptCacheRepository caches the approved prompt catalog in Redis. The
// catalog is read-mostly reference data; moderation invalidates the key.
type PromptCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached catalog
}

// NewPromptCacheRepository creates a new repository instance with a TTL for
// the cached catalog.
func NewPromptCacheRepository(client *redis.Client, expiration time.Duration) *PromptCacheRepository {
	return &PromptCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetApproved fetches the cached approved prompt catalog. A cache miss
// returns redis.Nil for the caller to fall back to the store.
func (r *PromptCacheRepository) GetApproved(ctx context.Context) ([]models.PromptDB, error) {
	val, err := r.client.Get(ctx, approvedPromptsKey).Result()

	logger.Log.Infow("cache read",
		"key", approvedPromptsKey,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	var prompts []models.PromptDB
	if err := json.Unmarshal([]byte(val), &prompts); err != nil {
		logger.Log.Errorw("cache payload corrupt",
			"key", approvedPromptsKey,
			"error", err,
		)
		return nil, err
	}

	return prompts, nil
}

// SetApproved caches the approved prompt catalog with expiration.
func (r *PromptCacheRepository) SetApproved(ctx context.Context, prompts []models.PromptDB) error {
	data, err := json.Marshal(prompts)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, approvedPromptsKey, data, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", approvedPromptsKey,
		"count", len(prompts),
		"error", err,
	)

	return err
}

// Invalidate drops the cached catalog after a moderation write.
func (r *PromptCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, approvedPromptsKey).Err()

	logger.Log.Infow("cache invalidate",
		"key", approvedPromptsKey,
		"error", err,
	)

	return err
}
