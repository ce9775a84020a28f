package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{
		RequestsPerMinute: 5,
	}

	key := "test-key-minute"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(key, config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(key, config)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisRateLimiter_Allow_PerHour(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{
		RequestsPerHour: 3,
	}

	key := "test-key-hour"

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(key, config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(key, config)
	require.NoError(t, err)
	assert.False(t, allowed, "4th request should be denied")
}

func TestRedisRateLimiter_GetRemaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{
		RequestsPerMinute: 10,
	}

	key := "test-key-remaining"

	for i := 0; i < 4; i++ {
		_, err := limiter.Allow(key, config)
		require.NoError(t, err)
	}

	used, err := limiter.GetRemaining(key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(4), used)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{
		RequestsPerMinute: 2,
	}

	key := "test-key-reset"

	for i := 0; i < 2; i++ {
		_, err := limiter.Allow(key, config)
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow(key, config)
	require.NoError(t, err)
	require.False(t, allowed)

	err = limiter.Reset(key)
	require.NoError(t, err)

	allowed, err = limiter.Allow(key, config)
	require.NoError(t, err)
	assert.True(t, allowed)
}
