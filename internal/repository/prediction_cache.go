package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
)

const predictionKeyPrefix = "ticket-classifier:prediction:"

// PredictionCache memoizes results for identical ticket text. Classification is
// deterministic for a fixed model, so entries never need invalidation within one
// model fingerprint.
type PredictionCache interface {
	Get(ctx context.Context, text string) (*domain.ClassificationResult, bool, error)
	Set(ctx context.Context, text string, result *domain.ClassificationResult) error
}

type cachedPrediction struct {
	Category   string                `json:"category"`
	Urgency    domain.Urgency        `json:"urgency"`
	Priority   domain.TicketPriority `json:"priority"`
	Department domain.Department     `json:"department"`
}

type redisPredictionCache struct {
	client    redis.Cmdable
	namespace string
	ttl       time.Duration
}

// NewRedisPredictionCache builds a cache whose keys are scoped to modelFingerprint.
func NewRedisPredictionCache(client redis.Cmdable, modelFingerprint string, ttl time.Duration) PredictionCache {
	return &redisPredictionCache{
		client:    client,
		namespace: predictionKeyPrefix + modelFingerprint + ":",
		ttl:       ttl,
	}
}

func (c *redisPredictionCache) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return c.namespace + hex.EncodeToString(sum[:])
}

func (c *redisPredictionCache) Get(ctx context.Context, text string) (*domain.ClassificationResult, bool, error) {
	raw, err := c.client.Get(ctx, c.key(text)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var cached cachedPrediction
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, err
	}
	return &domain.ClassificationResult{
		Category:   cached.Category,
		Urgency:    cached.Urgency,
		Priority:   cached.Priority,
		Department: cached.Department,
	}, true, nil
}

func (c *redisPredictionCache) Set(ctx context.Context, text string, result *domain.ClassificationResult) error {
	raw, err := json.Marshal(cachedPrediction{
		Category:   result.Category,
		Urgency:    result.Urgency,
		Priority:   result.Priority,
		Department: result.Department,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(text), raw, c.ttl).Err()
}
