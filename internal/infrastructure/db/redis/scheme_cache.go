package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kanthalloor/governance-portal/internal/api/metrics"
	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

const (
	catalogKey = "schemes:catalog"
	catalogTTL = 5 * time.Minute
)

// SchemeCache is a read-through cache for the scheme catalog listing. The
// catalog is static reference data, so a short TTL plus invalidation on admin
// writes is enough.
type SchemeCache struct {
	client *redis.Client
}

// NewSchemeCache creates a SchemeCache wrapping the given Redis client.
func NewSchemeCache(client *redis.Client) *SchemeCache {
	return &SchemeCache{client: client}
}

// Get returns the cached catalog, or (nil, nil) on a miss.
func (c *SchemeCache) Get(ctx context.Context) ([]*domain.Scheme, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.SchemeCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("scheme cache get: %w", err)
	}

	var schemes []*domain.Scheme
	if err := json.Unmarshal(raw, &schemes); err != nil {
		return nil, fmt.Errorf("scheme cache decode: %w", err)
	}

	metrics.SchemeCacheTotal.WithLabelValues("hit").Inc()
	return schemes, nil
}

// Set stores the catalog with the cache TTL.
func (c *SchemeCache) Set(ctx context.Context, schemes []*domain.Scheme) error {
	raw, err := json.Marshal(schemes)
	if err != nil {
		return fmt.Errorf("scheme cache encode: %w", err)
	}
	return c.client.Set(ctx, catalogKey, raw, catalogTTL).Err()
}

// Invalidate drops the cached catalog, forcing the next listing to read Mongo.
func (c *SchemeCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
