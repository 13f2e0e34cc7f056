package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stitts-dev/caddie/internal/metrics"
)

// ErrCacheMiss is returned by Get when the key is absent or caching is disabled
var ErrCacheMiss = errors.New("cache miss")

// CacheService is a JSON cache over redis. A nil client turns every call into
// a miss so the service runs without redis.
type CacheService struct {
	client *redis.Client
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{
		client: client,
	}
}

// Enabled reports whether a redis client is attached
func (s *CacheService) Enabled() bool {
	return s != nil && s.client != nil
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !s.Enabled() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := s.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	if !s.Enabled() {
		return ErrCacheMiss
	}

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCache(keyKind(key), false)
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache: %w", err)
	}
	metrics.RecordCache(keyKind(key), true)

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if !s.Enabled() || len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

// Ping checks redis connectivity. A disabled cache is always healthy.
func (s *CacheService) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	return s.client.Ping(ctx).Err()
}

func keyKind(key string) string {
	if i := strings.Index(key, ":"); i > 0 {
		return key[:i]
	}
	return key
}

// Cache key generators
func WeatherCacheKey(courseID string) string {
	return fmt.Sprintf("weather:current:%s", courseID)
}

func CourseCacheKey(courseID string) string {
	return fmt.Sprintf("course:%s", courseID)
}

func HoleCacheKey(holeID string) string {
	return fmt.Sprintf("hole:%s", holeID)
}

func BaselineCacheKey(playerID string) string {
	return fmt.Sprintf("baseline:%s", playerID)
}
