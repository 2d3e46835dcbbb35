// Package config handles loading and validation of application configuration
// from environment variables and an optional YAML file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/NomadCrew/feedback-service/logger"
	"github.com/spf13/viper"
)

// ConfigFileEnv names the environment variable pointing at an optional YAML
// config file.
const ConfigFileEnv = "CONFIG_FILE"

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment            Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port                   string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins         []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version                string      `mapstructure:"VERSION" yaml:"version"`
	ShutdownTimeoutSeconds int         `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS" yaml:"shutdown_timeout_seconds"`
	// HSTSMaxAgeSeconds is sent in Strict-Transport-Security in production.
	// Zero disables the header.
	HSTSMaxAgeSeconds int `mapstructure:"HSTS_MAX_AGE_SECONDS" yaml:"hsts_max_age_seconds"`
}

// DatabaseConfig holds PostgreSQL database connection details.
type DatabaseConfig struct {
	Host           string `mapstructure:"HOST" yaml:"host"`
	Port           int    `mapstructure:"PORT" yaml:"port"`
	User           string `mapstructure:"USER" yaml:"user"`
	Password       string `mapstructure:"PASSWORD" yaml:"password"`
	Name           string `mapstructure:"NAME" yaml:"name"`
	SSLMode        string `mapstructure:"SSL_MODE" yaml:"ssl_mode"`
	MaxConnections int    `mapstructure:"MAX_CONNECTIONS" yaml:"max_connections"`
	ConnMaxLife    string `mapstructure:"CONN_MAX_LIFE" yaml:"conn_max_life"`
	RunMigrations  bool   `mapstructure:"RUN_MIGRATIONS" yaml:"run_migrations"`
}

// URL returns a postgres:// connection URL usable by pgx and golang-migrate.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds Redis connection details. Redis is only used to fan out
// feedback events and is off unless Enabled is set.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"ENABLED" yaml:"enabled"`
	Address  string `mapstructure:"ADDRESS" yaml:"address"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
	DB       int    `mapstructure:"DB" yaml:"db"`
	UseTLS   bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
	Channel  string `mapstructure:"CHANNEL" yaml:"channel"`
}

// PaginationConfig bounds the page sizes accepted by list endpoints.
type PaginationConfig struct {
	DefaultSize int `mapstructure:"DEFAULT_SIZE" yaml:"default_size"`
	MaxSize     int `mapstructure:"MAX_SIZE" yaml:"max_size"`
}

// WorkerPoolConfig sizes the pool that publishes feedback events off the
// request path.
type WorkerPoolConfig struct {
	MaxWorkers             int `mapstructure:"MAX_WORKERS" yaml:"max_workers"`
	QueueSize              int `mapstructure:"QUEUE_SIZE" yaml:"queue_size"`
	ShutdownTimeoutSeconds int `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS" yaml:"shutdown_timeout_seconds"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server     ServerConfig     `mapstructure:"SERVER" yaml:"server"`
	Database   DatabaseConfig   `mapstructure:"DATABASE" yaml:"database"`
	Redis      RedisConfig      `mapstructure:"REDIS" yaml:"redis"`
	Pagination PaginationConfig `mapstructure:"PAGINATION" yaml:"pagination"`
	WorkerPool WorkerPoolConfig `mapstructure:"WORKER_POOL" yaml:"worker_pool"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SERVER.SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("SERVER.HSTS_MAX_AGE_SECONDS", 31536000)
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "feedback")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_CONNECTIONS", 10)
	v.SetDefault("DATABASE.CONN_MAX_LIFE", "1h")
	v.SetDefault("DATABASE.RUN_MIGRATIONS", true)
	v.SetDefault("REDIS.ENABLED", false)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("REDIS.CHANNEL", "feedback:events")
	v.SetDefault("PAGINATION.DEFAULT_SIZE", 20)
	v.SetDefault("PAGINATION.MAX_SIZE", 100)
	v.SetDefault("WORKER_POOL.MAX_WORKERS", 2)
	v.SetDefault("WORKER_POOL.QUEUE_SIZE", 100)
	v.SetDefault("WORKER_POOL.SHUTDOWN_TIMEOUT_SECONDS", 5)
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	setDefaults(v)

	// An optional YAML file (see cmd/genconfig) sits between the defaults and
	// the environment.
	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		log.Infow("Loaded config file", "path", path)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"SERVER.SHUTDOWN_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT_SECONDS"},
		{"SERVER.HSTS_MAX_AGE_SECONDS", "HSTS_MAX_AGE_SECONDS"},
		// Database config
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		{"DATABASE.MAX_CONNECTIONS", "DB_MAX_CONNECTIONS"},
		{"DATABASE.CONN_MAX_LIFE", "DB_CONN_MAX_LIFE"},
		{"DATABASE.RUN_MIGRATIONS", "DB_RUN_MIGRATIONS"},
		// Redis config
		{"REDIS.ENABLED", "REDIS_ENABLED"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		{"REDIS.CHANNEL", "REDIS_CHANNEL"},
		// Pagination config
		{"PAGINATION.DEFAULT_SIZE", "PAGINATION_DEFAULT_SIZE"},
		{"PAGINATION.MAX_SIZE", "PAGINATION_MAX_SIZE"},
		// Event worker pool config
		{"WORKER_POOL.MAX_WORKERS", "WORKER_POOL_MAX_WORKERS"},
		{"WORKER_POOL.QUEUE_SIZE", "WORKER_POOL_QUEUE_SIZE"},
		{"WORKER_POOL.SHUTDOWN_TIMEOUT_SECONDS", "WORKER_POOL_SHUTDOWN_TIMEOUT_SECONDS"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", v.GetString("SERVER.ENVIRONMENT"),
		"server_port", v.GetString("SERVER.PORT"),
		"db_host", v.GetString("DATABASE.HOST"),
		"redis_enabled", v.GetBool("REDIS.ENABLED"),
		"allowed_origins", v.GetStringSlice("SERVER.ALLOWED_ORIGINS"),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if cfg.Server.Environment != EnvDevelopment && cfg.Server.Environment != EnvProduction {
		return fmt.Errorf("unknown environment %q", cfg.Server.Environment)
	}
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	if cfg.Server.HSTSMaxAgeSeconds < 0 {
		return fmt.Errorf("hsts max age must not be negative")
	}
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	if cfg.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if cfg.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}
	if cfg.Database.MaxConnections <= 0 {
		return fmt.Errorf("database max connections must be positive")
	}
	if cfg.Database.Password == "" {
		log.Warn("Database password is not set. Ensure this is intended (e.g., using trusted auth).")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis address is required when redis is enabled")
		}
		if cfg.Redis.Channel == "" {
			return fmt.Errorf("redis channel is required when redis is enabled")
		}
	}

	if cfg.Pagination.DefaultSize <= 0 {
		return fmt.Errorf("default page size must be positive")
	}
	if cfg.Pagination.MaxSize < cfg.Pagination.DefaultSize {
		return fmt.Errorf("max page size must not be smaller than the default page size")
	}

	if cfg.WorkerPool.MaxWorkers <= 0 {
		return fmt.Errorf("worker pool max workers must be positive")
	}
	if cfg.WorkerPool.QueueSize <= 0 {
		return fmt.Errorf("worker pool queue size must be positive")
	}

	return nil
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
