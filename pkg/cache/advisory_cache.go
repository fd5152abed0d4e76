package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DescriptionTTL is the time-to-live for cached product descriptions.
	// Descriptions depend only on their inputs, so entries live for a day.
	DescriptionTTL = 24 * time.Hour

	// RestockAdviceTTL bounds how stale a restock summary can get even if no
	// stock movement invalidates it first.
	RestockAdviceTTL = time.Hour

	descriptionKeyPrefix = "advisory:description"
	restockAdviceKey     = "advisory:restock"
)

// AdvisoryCache stores generated advisory text in Redis so repeated requests
// with the same inputs do not re-hit the text-generation API.
//
// Descriptions are keyed by a hash of their inputs. Restock advice lives under
// a single key and is deleted whenever stock moves (see the stock.adjusted
// subscriber in cmd/api).
type AdvisoryCache struct {
	client *RedisClient
}

// NewAdvisoryCache creates an AdvisoryCache backed by the given RedisClient.
func NewAdvisoryCache(r *RedisClient) *AdvisoryCache {
	return &AdvisoryCache{client: r}
}

// GetDescription returns a cached description for the given inputs.
// Returns redis.Nil error when no entry exists.
func (c *AdvisoryCache) GetDescription(ctx context.Context, name, category, keywords string) (string, error) {
	text, err := c.client.Client().Get(ctx, descriptionKey(name, category, keywords)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", redis.Nil
		}
		return "", fmt.Errorf("cache get description: %w", err)
	}
	return text, nil
}

// SetDescription caches a generated description for its inputs.
func (c *AdvisoryCache) SetDescription(ctx context.Context, name, category, keywords, text string) error {
	if err := c.client.Client().Set(ctx, descriptionKey(name, category, keywords), text, DescriptionTTL).Err(); err != nil {
		return fmt.Errorf("cache set description: %w", err)
	}
	return nil
}

// GetRestockAdvice returns the cached restock summary.
// Returns redis.Nil error when no entry exists.
func (c *AdvisoryCache) GetRestockAdvice(ctx context.Context) (string, error) {
	text, err := c.client.Client().Get(ctx, restockAdviceKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", redis.Nil
		}
		return "", fmt.Errorf("cache get restock advice: %w", err)
	}
	return text, nil
}

// SetRestockAdvice caches the latest restock summary.
func (c *AdvisoryCache) SetRestockAdvice(ctx context.Context, text string) error {
	if err := c.client.Client().Set(ctx, restockAdviceKey, text, RestockAdviceTTL).Err(); err != nil {
		return fmt.Errorf("cache set restock advice: %w", err)
	}
	return nil
}

// InvalidateRestockAdvice drops the cached restock summary. Called whenever
// catalog quantities change so the next request reflects current stock.
func (c *AdvisoryCache) InvalidateRestockAdvice(ctx context.Context) error {
	if err := c.client.Client().Del(ctx, restockAdviceKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate restock advice: %w", err)
	}
	return nil
}

// descriptionKey builds "advisory:description:{sha256 of inputs}".
func descriptionKey(name, category, keywords string) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{name, category, keywords}, "\x00")))
	return descriptionKeyPrefix + ":" + hex.EncodeToString(sum[:])
}
