package gumroad_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/opsdisk/gumroad/pkg/gumroad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := gumroad.NewMemoryCache(10)
	ctx := context.Background()

	entry := &gumroad.CacheEntry{
		Body:       []byte(`{"success": true}`),
		StatusCode: 200,
		StoredAt:   time.Now(),
		TTL:        time.Minute,
	}

	err := cache.Set(ctx, "key-1", entry)
	require.NoError(t, err)

	got, err := cache.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, entry.Body, got.Body)
	assert.Equal(t, 200, got.StatusCode)
	assert.True(t, cache.Has(ctx, "key-1"))
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := gumroad.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "missing")
	require.ErrorIs(t, err, gumroad.ErrCacheMiss)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := gumroad.NewMemoryCache(10)
	ctx := context.Background()

	entry := &gumroad.CacheEntry{
		Body:       []byte("stale"),
		StatusCode: 200,
		StoredAt:   time.Now().Add(-2 * time.Minute),
		TTL:        time.Minute,
	}

	require.NoError(t, cache.Set(ctx, "key-1", entry))

	_, err := cache.Get(ctx, "key-1")
	require.ErrorIs(t, err, gumroad.ErrCacheMiss)
}

func TestMemoryCache_Delete(t *testing.T) {
	t.Parallel()

	cache := gumroad.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key-1", &gumroad.CacheEntry{StoredAt: time.Now()}))
	require.NoError(t, cache.Delete(ctx, "key-1"))

	_, err := cache.Get(ctx, "key-1")
	require.ErrorIs(t, err, gumroad.ErrCacheMiss)
}

func TestMemoryCache_Clear(t *testing.T) {
	t.Parallel()

	cache := gumroad.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key-1", &gumroad.CacheEntry{StoredAt: time.Now()}))
	require.NoError(t, cache.Set(ctx, "key-2", &gumroad.CacheEntry{StoredAt: time.Now()}))
	require.NoError(t, cache.Clear(ctx))

	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_MaxSize(t *testing.T) {
	t.Parallel()

	cache := gumroad.NewMemoryCache(2)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "oldest", &gumroad.CacheEntry{StoredAt: time.Now().Add(-time.Hour)}))
	require.NoError(t, cache.Set(ctx, "middle", &gumroad.CacheEntry{StoredAt: time.Now().Add(-time.Minute)}))
	require.NoError(t, cache.Set(ctx, "newest", &gumroad.CacheEntry{StoredAt: time.Now()}))

	assert.Equal(t, 2, cache.Len())

	_, err := cache.Get(ctx, "oldest")
	require.ErrorIs(t, err, gumroad.ErrCacheMiss)
	assert.True(t, cache.Has(ctx, "newest"))
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := gumroad.NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key-1", &gumroad.CacheEntry{}))

	_, err := cache.Get(ctx, "key-1")
	require.ErrorIs(t, err, gumroad.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "key-1"))
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	query := url.Values{"page": []string{"2"}}

	key1 := gumroad.CacheKey("GET", "/v2/sales", query)
	key2 := gumroad.CacheKey("GET", "/v2/sales", url.Values{"page": []string{"2"}})
	key3 := gumroad.CacheKey("GET", "/v2/sales", url.Values{"page": []string{"3"}})

	assert.Equal(t, key1, key2)
	assert.NotEqual(t, key1, key3)
	assert.Len(t, key1, 64)
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults to memory", func(t *testing.T) {
		t.Parallel()

		cache, err := gumroad.NewCacheFromConfig(nil)
		require.NoError(t, err)
		assert.IsType(t, &gumroad.MemoryCache{}, cache)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		cache, err := gumroad.NewCacheFromConfig(&gumroad.CacheConfig{Type: gumroad.CacheTypeNone})
		require.NoError(t, err)
		assert.IsType(t, &gumroad.NoOpCache{}, cache)
	})

	t.Run("nats without config", func(t *testing.T) {
		t.Parallel()

		_, err := gumroad.NewCacheFromConfig(&gumroad.CacheConfig{Type: gumroad.CacheTypeNATS})
		require.ErrorIs(t, err, gumroad.ErrNATSConfigRequired)
	})

	t.Run("nats without URL", func(t *testing.T) {
		t.Parallel()

		_, err := gumroad.NewCacheFromConfig(&gumroad.CacheConfig{
			Type: gumroad.CacheTypeNATS,
			NATS: &gumroad.NATSKVConfig{},
		})
		require.ErrorIs(t, err, gumroad.ErrNATSURLRequired)
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		_, err := gumroad.NewCacheFromConfig(&gumroad.CacheConfig{Type: "redis"})
		require.ErrorIs(t, err, gumroad.ErrUnsupportedCacheType)
	})
}

func TestCacheConfig_EntryTTL(t *testing.T) {
	t.Parallel()

	var nilConfig *gumroad.CacheConfig

	assert.Equal(t, time.Minute, nilConfig.EntryTTL())
	assert.Equal(t, time.Minute, (&gumroad.CacheConfig{}).EntryTTL())
	assert.Equal(t, time.Hour, (&gumroad.CacheConfig{TTL: time.Hour}).EntryTTL())
}
