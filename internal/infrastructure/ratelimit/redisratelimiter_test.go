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
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_AllowUnderLimit(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	limit := Limit{Requests: 5, Window: time.Minute}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "webhook:203.0.113.10", limit)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "webhook:203.0.113.10", limit)
	require.NoError(t, err)
	assert.False(t, allowed, "sixth request should be rejected")
}

func TestRedisRateLimiter_KeysAreIndependent(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	limit := Limit{Requests: 1, Window: time.Minute}

	allowed, err := limiter.Allow(ctx, "invite:1", limit)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "invite:1", limit)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "invite:2", limit)
	require.NoError(t, err)
	assert.True(t, allowed, "a different key keeps its own window")
}

func TestRedisRateLimiter_Remaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	limit := Limit{Requests: 10, Window: time.Minute}

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "invite:7", limit)
		require.NoError(t, err)
	}

	remaining, err := limiter.Remaining(ctx, "invite:7", limit)
	require.NoError(t, err)
	assert.Equal(t, int64(7), remaining)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	limit := Limit{Requests: 1, Window: time.Minute}

	_, err := limiter.Allow(ctx, "invite:3", limit)
	require.NoError(t, err)

	allowed, err := limiter.Allow(ctx, "invite:3", limit)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "invite:3"))

	allowed, err = limiter.Allow(ctx, "invite:3", limit)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_ZeroLimitDisables(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	limit := Limit{Requests: 0, Window: time.Minute}

	for i := 0; i < 20; i++ {
		allowed, err := limiter.Allow(ctx, "webhook:open", limit)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
