// Package db opens the PostgreSQL connection pool and owns the schema
// migrations for the feedback table.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/NomadCrew/feedback-service/config"
	"github.com/NomadCrew/feedback-service/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultMaxRetries = 5
	defaultRetryDelay = time.Second
)

// Pinger is implemented by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewPool creates the connection pool described by cfg and waits until the
// database answers a ping.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := config.ConfigurePostgresPool(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := waitForDatabase(ctx, pool, defaultMaxRetries, defaultRetryDelay); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// waitForDatabase pings db up to maxRetries times, doubling the delay after
// each failure.
func waitForDatabase(ctx context.Context, db Pinger, maxRetries int, retryDelay time.Duration) error {
	log := logger.GetLogger()
	if maxRetries < 1 {
		maxRetries = 1
	}

	var err error
	delay := retryDelay
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = db.Ping(ctx); err == nil {
			if attempt > 1 {
				log.Infow("Connected to database after retries", "attempt", attempt)
			}
			return nil
		}

		if attempt == maxRetries {
			break
		}

		log.Warnw("Database not reachable, retrying",
			"error", err,
			"attempt", attempt,
			"max_attempts", maxRetries,
			"retry_in", delay.String())

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}

	return fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}
