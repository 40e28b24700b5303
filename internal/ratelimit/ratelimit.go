// Package ratelimit provides the login attempt limiter.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a Redis-backed sliding-window limiter. The window is
// kept as a sorted set of attempt timestamps per key, so the limit holds
// across multiple service instances.
type RedisLimiter struct {
	client    redis.Cmdable
	keyPrefix string
	rate      int
	window    time.Duration
}

// NewRedisLimiter creates a limiter allowing rate attempts per window.
func NewRedisLimiter(client redis.Cmdable, rate int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		keyPrefix: "ratelimit:login:",
		rate:      rate,
		window:    window,
	}
}

// Allow records an attempt for key and reports whether it is within the
// configured rate.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.keyPrefix + key
	now := time.Now()
	windowStart := now.Add(-l.window).UnixMicro()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "-inf", fmt.Sprintf("%d", windowStart))
	count := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixMicro()), Member: now.UnixNano()})
	pipe.Expire(ctx, redisKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return count.Val() < int64(l.rate), nil
}
