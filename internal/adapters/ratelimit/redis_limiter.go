package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zatekoja/nearbycare/internal/domain/providers"
	redisclient "github.com/zatekoja/nearbycare/internal/infrastructure/clients/redis"
)

const keyPrefix = "nearbycare:ratelimit"

// RedisRateLimiter implements a fixed-window RateLimiter on Redis counters
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

var _ providers.RateLimiter = (*RedisRateLimiter)(nil)

// NewRedisRateLimiter creates a limiter allowing limit hits per key per window
func NewRedisRateLimiter(client *redisclient.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client.Client(),
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// WithClock overrides the clock used to pick the window (used for tests).
func (l *RedisRateLimiter) WithClock(now func() time.Time) *RedisRateLimiter {
	l.now = now
	return l
}

// Allow increments the counter for key in the current window
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (*providers.RateLimitResult, error) {
	now := l.now()
	redisKey, resetIn := windowKey(key, now, l.window)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, l.window)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record rate limit hit: %w", err)
	}

	return evaluate(int(incr.Val()), l.limit, resetIn), nil
}

// windowKey returns the counter key for the window containing now and the
// time left until that window closes
func windowKey(key string, now time.Time, window time.Duration) (string, time.Duration) {
	start := now.Truncate(window)
	return fmt.Sprintf("%s:%s:%d", keyPrefix, key, start.Unix()), start.Add(window).Sub(now)
}

func evaluate(count, limit int, resetIn time.Duration) *providers.RateLimitResult {
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return &providers.RateLimitResult{
		Allowed:   count <= limit,
		Remaining: remaining,
		ResetIn:   resetIn,
	}
}
