package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Throttle defaults; disabling the throttle is done by not constructing a
// limiter at all, so non-positive settings here fall back rather than
// meaning "off".
const (
	defaultMaxAttempts = 10
	defaultWindow      = 15 * time.Minute
)

// LoginLimiter throttles repeated failed logins per account name, backed by a
// Redis counter with a sliding expiry window.
// Key format: login_fail:<full_name>
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter creates a limiter allowing maxAttempts failures per window.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow reports whether another login attempt for fullName is permitted.
func (l *LoginLimiter) Allow(ctx context.Context, fullName string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(fullName)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n < l.maxAttempts, nil
}

// RecordFailure notes a failed attempt and restarts the expiry window, so a
// sustained guessing run stays locked out.
func (l *LoginLimiter) RecordFailure(ctx context.Context, fullName string) error {
	key := l.key(fullName)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login limiter record: %w", err)
	}
	return nil
}

// Reset clears the failure count after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, fullName string) error {
	if err := l.client.Del(ctx, l.key(fullName)).Err(); err != nil {
		return fmt.Errorf("login limiter reset: %w", err)
	}
	return nil
}

func (l *LoginLimiter) key(fullName string) string {
	return "login_fail:" + fullName
}
