package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// ErrMissingSecret is returned when JWT_SECRET is unset outside development.
var ErrMissingSecret = errors.New("config: JWT_SECRET is required outside development")

// devSecret is the signing secret used when none is configured in
// development. It must never reach a production deployment; Validate
// rejects an empty secret in every other environment.
const devSecret = "dev-only-insecure-secret"

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	SQLite SQLiteConfig
	Redis  RedisConfig
	Login  LoginConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=data/identity.db"`
}

type RedisConfig struct {
	// Addr left empty disables the Redis-backed login throttle.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type LoginConfig struct {
	MaxAttempts   int           `env:"LOGIN_MAX_ATTEMPTS,   default=10"`
	AttemptWindow time.Duration `env:"LOGIN_ATTEMPT_WINDOW, default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Development reports whether the process runs in development mode.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Validate enforces the startup invariants. A missing token secret is fatal
// outside development; in development it falls back to a fixed insecure
// value so local setups work out of the box.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		if !c.Development() {
			return ErrMissingSecret
		}
		c.JWTSecret = devSecret
	}
	return nil
}
