// Package ratelimit counts failed login attempts in Redis.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login_attempts"

// LoginLimiter allows at most max failed attempts per key within a fixed
// window that starts at the first failure.
type LoginLimiter struct {
	rdb    redis.Cmdable
	max    int
	window time.Duration
}

// NewLoginLimiter returns a limiter. Non-positive max or window fall back to 5 per 15 minutes.
func NewLoginLimiter(rdb redis.Cmdable, max int, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{rdb: rdb, max: max, window: window}
}

func (l *LoginLimiter) key(subject string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, strings.ToLower(strings.TrimSpace(subject)))
}

// Allow reports whether subject may attempt another login.
func (l *LoginLimiter) Allow(ctx context.Context, subject string) (bool, error) {
	n, err := l.rdb.Get(ctx, l.key(subject)).Int()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read login attempts: %w", err)
	}
	return n < l.max, nil
}

// Fail records a failed attempt. The counter and its TTL are read in one
// transaction, and a counter without a TTL gets the window again, so a
// failed EXPIRE never leaves the subject locked out for good.
func (l *LoginLimiter) Fail(ctx context.Context, subject string) error {
	key := l.key(subject)

	pipe := l.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("count login attempt: %w", err)
	}

	if ttl.Val() < 0 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("expire login attempts: %w", err)
		}
	}
	return nil
}

// Reset forgets the failures of subject after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, subject string) error {
	if err := l.rdb.Del(ctx, l.key(subject)).Err(); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}
