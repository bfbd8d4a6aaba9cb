package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/academia-online/courses-api/internal/core/domain"
)

const catalogKey = "cursos:publicos"

// CatalogCache holds the serialized public course catalog with a short TTL.
// A miss returns (nil, nil) so the service can fall through to Postgres.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) Get(ctx context.Context) ([]*domain.Course, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog cache get: %w", err)
	}

	var courses []*domain.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("catalog cache decode: %w", err)
	}
	return courses, nil
}

func (c *CatalogCache) Set(ctx context.Context, courses []*domain.Course) error {
	raw, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, catalogKey, raw, c.ttl).Err()
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
