package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/shoplist-be/internal/adapters/redis_adapter"
	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
	"github.com/ammerola/shoplist-be/test/helpers"
)

func newTestCache(t *testing.T) (*redis_a.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger()), mr
}

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	t.Run("stores_and_retrieves_product", func(t *testing.T) {
		product := &domain.Product{Barcode: "5900000000001", Name: "Woda", Category: "napoje", Found: true}
		require.NoError(t, cache.SetWithTTL(ctx, "product:5900000000001", product, time.Minute))

		var got domain.Product
		require.NoError(t, cache.Get(ctx, "product:5900000000001", &got))
		assert.Equal(t, *product, got)
	})

	t.Run("stores_and_retrieves_summary", func(t *testing.T) {
		summary := domain.ListSummary{ListID: 1, TotalItems: 2, ByCategory: map[string]int{"Nabiał": 2}}
		require.NoError(t, cache.SetWithTTL(ctx, "summary:1", summary, time.Minute))

		var got domain.ListSummary
		require.NoError(t, cache.Get(ctx, "summary:1", &got))
		assert.Equal(t, 2, got.ByCategory["Nabiał"])
	})

	t.Run("missing_key_is_cache_miss", func(t *testing.T) {
		var got string
		err := cache.Get(ctx, "missing", &got)
		assert.ErrorIs(t, err, ports.ErrCacheMiss)
	})
}

func TestCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	require.NoError(t, cache.SetWithTTL(ctx, "scan:phone", "value", 100*time.Millisecond))

	var result string
	require.NoError(t, cache.Get(ctx, "scan:phone", &result))
	assert.Equal(t, "value", result)

	mr.FastForward(200 * time.Millisecond)

	err := cache.Get(ctx, "scan:phone", &result)
	assert.Equal(t, redis_a.ErrCacheMiss, err)

	t.Run("zero_ttl_uses_default", func(t *testing.T) {
		require.NoError(t, cache.SetWithTTL(ctx, "summary:7", "value", 0))
		assert.Equal(t, 5*time.Minute, mr.TTL("summary:7"))
	})
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	keysToDelete := []string{"summary:1", "summary:2", "summary:3"}
	keysToKeep := []string{"product:1", "job:abc"}

	for _, key := range append(keysToDelete, keysToKeep...) {
		require.NoError(t, cache.SetWithTTL(ctx, key, "value", time.Minute))
	}

	require.NoError(t, cache.DeletePattern(ctx, "summary:*"))

	for _, key := range keysToDelete {
		var result string
		assert.Equal(t, redis_a.ErrCacheMiss, cache.Get(ctx, key, &result))
	}

	for _, key := range keysToKeep {
		assert.True(t, mr.Exists(key), "key should be kept: %s", key)
	}
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	fetchCount := 0
	fetchFunc := func() (interface{}, error) {
		fetchCount++
		return &domain.Product{Name: "Jogurt", Found: true}, nil
	}

	var first domain.Product
	require.NoError(t, cache.GetOrSet(ctx, "product:1", &first, fetchFunc, time.Minute))
	assert.Equal(t, "Jogurt", first.Name)

	var second domain.Product
	require.NoError(t, cache.GetOrSet(ctx, "product:1", &second, fetchFunc, time.Minute))
	assert.Equal(t, "Jogurt", second.Name)
	assert.Equal(t, 1, fetchCount)
}

func TestCache_GetOrSet_FetchErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	var dest domain.Product
	err := cache.GetOrSet(ctx, "product:2", &dest, func() (interface{}, error) {
		return nil, domain.ErrProductNotFound
	}, time.Minute)

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.False(t, mr.Exists("product:2"))
}

func TestCache_GetOrSet_RedisDownFallsThrough(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	mr.Close()

	var dest string
	err := cache.GetOrSet(ctx, "product:3", &dest, func() (interface{}, error) {
		return "direct", nil
	}, time.Minute)

	require.NoError(t, err)
	assert.Equal(t, "direct", dest)
}

func TestCache_SetNX(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	ok, err := cache.SetNX(ctx, "lock:export", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.SetNX(ctx, "lock:export", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	var stored string
	require.NoError(t, cache.Get(ctx, "lock:export", &stored))
	assert.Equal(t, "first", stored)
}

func TestCacheManager_InvalidateDerived(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)
	manager := redis_a.NewCacheManager(cache, helpers.TestLogger())

	for _, key := range []string{"summary:1", "summary:2", "scan:phone", "product:5900000000001"} {
		require.NoError(t, cache.SetWithTTL(ctx, key, "x", time.Minute))
	}

	require.NoError(t, manager.InvalidateDerived(ctx))

	for _, key := range []string{"summary:1", "summary:2", "scan:phone"} {
		var result string
		assert.Equal(t, redis_a.ErrCacheMiss, cache.Get(ctx, key, &result), "key should be invalidated: %s", key)
	}

	var kept string
	require.NoError(t, cache.Get(ctx, "product:5900000000001", &kept))
}

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "product_key", prefix: ports.PrefixProduct, parts: []string{"5901234123457"}, expected: "product:5901234123457"},
		{name: "summary_key", prefix: ports.PrefixSummary, parts: []string{"12"}, expected: "summary:12"},
		{name: "no_parts", prefix: ports.PrefixScan, expected: "scan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ports.CacheKey(tt.prefix, tt.parts...))
		})
	}
}
