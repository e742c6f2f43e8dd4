// Package cache provides a small redis-backed cache used to avoid
// re-fetching upstream list responses on every request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when the key is absent or the cache is disabled.
var ErrMiss = errors.New("cache miss")

// Cache implements a typed cache over redis. A nil client degrades every
// operation to a miss, so callers need no special handling when caching
// is not configured.
type Cache[T any] struct {
	rc     *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a Cache with the given key prefix and default TTL.
func New[T any](rc *redis.Client, prefix string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{rc: rc, prefix: prefix, ttl: ttl}
}

func (c *Cache[T]) key(k string) string {
	return fmt.Sprintf("%s:%s", c.prefix, k)
}

// Get retrieves a single item from cache.
func (c *Cache[T]) Get(ctx context.Context, k string) (*T, error) {
	if c.rc == nil {
		return nil, ErrMiss
	}

	result, err := c.rc.Get(ctx, c.key(k)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var row T
	if err = json.Unmarshal([]byte(result), &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}
	return &row, nil
}

// Set saves a single item into cache.
func (c *Cache[T]) Set(ctx context.Context, k string, data *T, expire ...time.Duration) error {
	if c.rc == nil || data == nil {
		return nil
	}

	bytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	ttl := c.ttl
	if len(expire) > 0 {
		ttl = expire[0]
	}
	if err := c.rc.Set(ctx, c.key(k), bytes, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Delete removes a single item from cache.
func (c *Cache[T]) Delete(ctx context.Context, k string) error {
	if c.rc == nil {
		return nil
	}
	if err := c.rc.Del(ctx, c.key(k)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}
