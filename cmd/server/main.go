package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/userhub/identity-api/internal/api"
	"github.com/userhub/identity-api/internal/infrastructure/config"
	redisdb "github.com/userhub/identity-api/internal/infrastructure/db/redis"
	"github.com/userhub/identity-api/internal/infrastructure/db/sqlite"
	"github.com/userhub/identity-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the application logic, separated from main so failures map to exit
// codes in one place.
func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Development() && os.Getenv("JWT_SECRET") == "" {
		log.Warn().Msg("JWT_SECRET not set, using insecure development secret")
	}

	db, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.SQLite.Path})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()
	log.Info().Str("path", cfg.SQLite.Path).Msg("database connected")

	// Redis backs the login throttle and is optional: when absent or down
	// the API still serves, just without throttling.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, login throttle disabled")
			rdb = nil
		} else {
			defer rdb.Close()
			log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
		}
	}

	e := api.NewRouter(db, rdb, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
