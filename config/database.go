package config

import (
	"context"
	"crypto/tls"
	"fmt"
	"math"
	"time"

	"github.com/NomadCrew/feedback-service/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const defaultConnMaxLife = time.Hour

// ConfigurePostgresPool builds a pgxpool.Config from cfg. TLS is verified
// against the configured host whenever the SSL mode asks for encryption.
func ConfigurePostgresPool(cfg *DatabaseConfig) (*pgxpool.Config, error) {
	log := logger.GetLogger()
	connStr := cfg.URL()

	log.Infow("Connecting to database",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
		"sslmode", cfg.SSLMode,
		"connection_string", logger.MaskConnectionString(connStr))

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	switch cfg.SSLMode {
	case "require", "verify-ca", "verify-full":
		poolConfig.ConnConfig.TLSConfig = &tls.Config{
			ServerName: cfg.Host,
			MinVersion: tls.VersionTLS12,
		}
	}

	connMaxLife, err := time.ParseDuration(cfg.ConnMaxLife)
	if err != nil || connMaxLife <= 0 {
		log.Warnw("Invalid connection max lifetime, using default",
			"value", cfg.ConnMaxLife,
			"default", defaultConnMaxLife.String())
		connMaxLife = defaultConnMaxLife
	}

	poolConfig.MaxConns = int32(math.Min(float64(cfg.MaxConnections), float64(math.MaxInt32)))
	poolConfig.MaxConnLifetime = connMaxLife
	poolConfig.HealthCheckPeriod = 30 * time.Second
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	log.Infow("Configured database connection pool",
		"max_conns", poolConfig.MaxConns,
		"max_conn_lifetime", connMaxLife.String(),
		"health_check_period", poolConfig.HealthCheckPeriod.String())

	return poolConfig, nil
}

// ConfigureRedisOptions builds the go-redis options for the event publisher.
func ConfigureRedisOptions(cfg *RedisConfig) *redis.Options {
	opts := &redis.Options{
		Addr:            cfg.Address,
		Password:        cfg.Password,
		DB:              cfg.DB,
		ConnMaxLifetime: time.Hour,
		MaxRetries:      3,
		MinRetryBackoff: 100 * time.Millisecond,
		MaxRetryBackoff: 2 * time.Second,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	}

	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	logger.GetLogger().Infow("Configuring Redis connection",
		"address", cfg.Address,
		"db", cfg.DB,
		"use_tls", cfg.UseTLS,
		"channel", cfg.Channel)

	return opts
}

// PingRedis checks the Redis connection, retrying a few times before giving up.
func PingRedis(ctx context.Context, client redis.UniversalClient, maxRetries int, retryDelay time.Duration) error {
	log := logger.GetLogger()
	if maxRetries < 1 {
		maxRetries = 1
	}

	var err error
	for i := 0; i < maxRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = client.Ping(pingCtx).Err()
		cancel()

		if err == nil {
			if i > 0 {
				log.Infow("Successfully connected to Redis after retries", "attempt", i+1)
			}
			return nil
		}

		if i < maxRetries-1 {
			log.Warnw("Failed to ping Redis, retrying...",
				"error", err,
				"attempt", i+1,
				"max_attempts", maxRetries)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}

	return fmt.Errorf("failed to ping Redis after %d attempts: %w", maxRetries, err)
}
