// Package mongo implements the registry's record store. User accounts and
// gauge records live in two collections of a single database; the
// repositories translate driver errors into domain sentinels at this
// boundary, so nothing above it sees a mongo type in an error path.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultDatabase = "gauge_registry"
	defaultTimeout  = 10 * time.Second
)

// Config carries the record store connection settings.
type Config struct {
	URI string
	// Database to select; empty means "gauge_registry".
	Database string
	// Timeout bounds the initial dial and ping.
	Timeout time.Duration
}

func (c Config) database() string {
	if c.Database == "" {
		return defaultDatabase
	}
	return c.Database
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

// Connect dials the record store and proves it answers with a ping before the
// rest of the service starts. The registry has no degraded mode without its
// store, so callers treat an error here as fatal.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.database()), nil
}

// Bootstrap creates the indexes the registry depends on: the unique full_name
// index that turns a registration collision into ErrDuplicateUser, and the
// listing indexes behind the paginated search. Run once at startup, before
// the first request.
func Bootstrap(ctx context.Context, db *mongo.Database) error {
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := NewGaugeRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("gauge indexes: %w", err)
	}
	return nil
}
