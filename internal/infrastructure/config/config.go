package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Templates is the glob the view renderer loads server-side pages from.
	Templates string `env:"TEMPLATES_GLOB, default=web/templates/*.html"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AuthConfig collects every knob of the authentication core: the signing
// secret, the cookie carrying the token, and the failed-login throttle. It is
// constructed once at startup and passed down explicitly.
type AuthConfig struct {
	JWTSecret  string `env:"JWT_SECRET"`
	CookieName string `env:"AUTH_COOKIE_NAME, default=access_token"`
	// CookieSecure must be enabled behind TLS; the default suits the
	// plain-HTTP internal deployment this service was written for.
	CookieSecure bool          `env:"AUTH_COOKIE_SECURE, default=false"`
	TokenTTL     time.Duration `env:"AUTH_TOKEN_TTL, default=1h"`

	// MaxLoginAttempts of 0 disables the throttle.
	MaxLoginAttempts int           `env:"AUTH_MAX_LOGIN_ATTEMPTS, default=10"`
	LoginWindow      time.Duration `env:"AUTH_LOGIN_WINDOW, default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=gauge_registry"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET must be set")
	}
	return &cfg, nil
}
