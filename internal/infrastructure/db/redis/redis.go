// Package redis holds the registry's only Redis concern: the counter behind
// the failed-login throttle. The dependency is optional at runtime; when the
// connect fails the service starts anyway, with throttling disabled and the
// degradation visible on the readiness probe.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dialTimeout = 5 * time.Second

// Config carries the throttle store connection settings.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds the initial ping; non-positive means 5s.
	Timeout time.Duration
}

// Connect opens a client and proves the server answers. Callers decide what a
// failure means; main degrades to a nil limiter rather than refusing to start.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = dialTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
