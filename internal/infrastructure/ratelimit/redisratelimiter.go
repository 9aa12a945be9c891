package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter implements RateLimiter with a sliding window per
// (identifier, action), kept as a sorted set of attempt timestamps. The
// prune, count, and record steps run in one pipeline; a denied attempt is
// removed again so probing a closed window does not extend it.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) CheckAndRecord(ctx context.Context, identifier, action string, max int, window time.Duration) (Result, error) {
	if max <= 0 {
		return Result{Allowed: true}, nil
	}

	key := l.getKey(identifier, action)
	now := time.Now()
	windowStart := now.Add(-window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, key, window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	count := zcard.Val()
	if count < int64(max) {
		return Result{Allowed: true, Remaining: int64(max) - count - 1}, nil
	}

	if err := l.client.ZRem(ctx, key, nowNano).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to roll back denied attempt: %w", err)
	}

	retryAfter := window
	oldest, err := l.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rate limit window: %w", err)
	}
	if len(oldest) > 0 {
		expiresAt := time.Unix(0, int64(oldest[0].Score)).Add(window)
		if until := expiresAt.Sub(now); until > 0 {
			retryAfter = until
		}
	}

	return Result{Allowed: false, RetryAfter: retryAfter}, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, identifier, action string) error {
	if err := l.client.Del(ctx, l.getKey(identifier, action)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier, action string) string {
	return fmt.Sprintf("ratelimit:%s:%s", action, identifier)
}
