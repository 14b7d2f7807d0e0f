// internal/core/ports/cache.go
package ports

import (
	"context"
	"errors"
	"strings"
	"time"
)

// CacheRepository defines the interface for cache operations
type CacheRepository interface {
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error

	// GetOrSet reads key into dest, filling it from fetch on a miss
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error

	// SetNX writes key only if it is absent
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)

	Ping(ctx context.Context) error
}

// ErrCacheMiss is returned by Get when the key does not exist
var ErrCacheMiss = errors.New("cache miss")

// Cache key prefixes shared by services and adapters
const (
	PrefixProduct = "product"
	PrefixSummary = "summary"
	PrefixScan    = "scan"
	PrefixJob     = "job"
)

// CacheKey joins a prefix and parts with colons, e.g. "product:5901234123457".
func CacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}
