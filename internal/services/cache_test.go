package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheServiceDisabled(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheService(nil)

	assert.False(t, cache.Enabled())
	assert.NoError(t, cache.Set(ctx, "weather:current:x", map[string]int{"a": 1}, time.Minute))
	assert.NoError(t, cache.Delete(ctx, "weather:current:x"))
	assert.NoError(t, cache.Ping(ctx))

	var dest map[string]int
	assert.ErrorIs(t, cache.Get(ctx, "weather:current:x", &dest), ErrCacheMiss)

	var nilCache *CacheService
	assert.False(t, nilCache.Enabled())
	assert.ErrorIs(t, nilCache.Get(ctx, "k", &dest), ErrCacheMiss)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "weather:current:lakeside", WeatherCacheKey("lakeside"))
	assert.Equal(t, "course:lakeside", CourseCacheKey("lakeside"))
	assert.Equal(t, "hole:lakeside-1", HoleCacheKey("lakeside-1"))
	assert.Equal(t, "baseline:p-1", BaselineCacheKey("p-1"))

	assert.Equal(t, "weather", keyKind(WeatherCacheKey("x")))
	assert.Equal(t, "plain", keyKind("plain"))
}
