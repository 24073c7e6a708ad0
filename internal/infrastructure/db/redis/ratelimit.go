package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter is a Redis-backed fixed-window rate limiter.
// Key format: ratelimit:<key>:<window_start_unix>
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window.
func NewFixedWindowLimiter(client *redis.Client, limit int64, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, limit: limit, window: window}
}

// Allow reports whether another request is allowed for the given key. The
// counter and its expiry are set in one pipeline so a crashed request cannot
// leave an immortal key behind.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.key(key, time.Now())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}

	return incr.Val() <= l.limit, nil
}

func (l *FixedWindowLimiter) key(key string, now time.Time) string {
	windowStart := now.Truncate(l.window).Unix()
	return fmt.Sprintf("ratelimit:%s:%d", key, windowStart)
}
