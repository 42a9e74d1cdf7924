package ratelimit

import (
	"context"
	"time"
)

// Limit is a fixed cap over a sliding window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// RateLimiter throttles requests per caller key. Keys are opaque; callers
// choose what identifies them (client IP, user ID).
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit Limit) (bool, error)
	Remaining(ctx context.Context, key string, limit Limit) (int64, error)
	Reset(ctx context.Context, key string) error
}
