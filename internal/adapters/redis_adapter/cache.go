// internal/adapters/redis_adapter/cache.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// ErrCacheMiss is returned when a key is not found in cache
var ErrCacheMiss = ports.ErrCacheMiss

// Cache stores JSON encoded values in Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.CacheRepository = (*Cache)(nil)

// NewCache creates a cache whose entries default to ttl
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "cache")),
	}
}

// SetWithTTL stores value under key. A zero ttl falls back to the cache default.
func (c *Cache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := c.encode(ctx, key, value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = c.ttl
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to write cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis set error: %w", err)
	}

	c.logger.DebugContext(ctx, "cache entry written",
		slog.String("key", key),
		slog.Duration("ttl", ttl))
	return nil
}

// Get decodes the value stored under key into dest
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		c.logger.DebugContext(ctx, "cache miss", slog.String("key", key))
		return ErrCacheMiss
	case err != nil:
		c.logger.ErrorContext(ctx, "failed to read cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis get error: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	return nil
}

// Delete removes keys from cache
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to delete cache entries",
			slog.Any("keys", keys),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis del error: %w", err)
	}
	return nil
}

// DeletePattern removes every key matching pattern
func (c *Cache) DeletePattern(ctx context.Context, pattern string) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan %q error: %w", pattern, err)
	}

	c.logger.DebugContext(ctx, "cache pattern invalidated",
		slog.String("pattern", pattern),
		slog.Int("keys", len(keys)))
	return c.Delete(ctx, keys...)
}

// GetOrSet decodes key into dest, calling fetch and storing its result on a
// miss. Fetch errors are returned wrapped and nothing is cached. When Redis
// is down the fetched value is still returned.
func (c *Cache) GetOrSet(ctx context.Context, key string, dest interface{},
	fetch func() (interface{}, error), ttl time.Duration) error {

	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		c.logger.WarnContext(ctx, "cache unavailable, fetching directly",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	value, err := fetch()
	if err != nil {
		return fmt.Errorf("fetch error: %w", err)
	}

	data, err := c.encode(ctx, key, value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = c.ttl
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to cache fetched value",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	return json.Unmarshal(data, dest)
}

// SetNX stores value only when key is absent and reports whether it did
func (c *Cache) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	data, err := c.encode(ctx, key, value)
	if err != nil {
		return false, err
	}

	ok, err := c.client.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx error: %w", err)
	}
	return ok, nil
}

// Ping checks if Redis is accessible
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping error: %w", err)
	}
	return nil
}

func (c *Cache) encode(ctx context.Context, key string, value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to encode cache value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("marshal error: %w", err)
	}
	return data, nil
}

// CacheManager invalidates groups of derived cache entries
type CacheManager struct {
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewCacheManager creates a new cache manager
func NewCacheManager(cache ports.CacheRepository, logger *slog.Logger) *CacheManager {
	return &CacheManager{
		cache:  cache,
		logger: logger.With(slog.String("component", "cache_manager")),
	}
}

// InvalidateDerived removes summaries and scan results. Product lookups are
// kept since they do not depend on stored lists.
func (m *CacheManager) InvalidateDerived(ctx context.Context) error {
	patterns := []string{
		ports.CacheKey(ports.PrefixSummary, "*"),
		ports.CacheKey(ports.PrefixScan, "*"),
	}

	var errs []error
	for _, pattern := range patterns {
		if err := m.cache.DeletePattern(ctx, pattern); err != nil {
			m.logger.WarnContext(ctx, "failed to invalidate cache pattern",
				slog.String("pattern", pattern),
				slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
