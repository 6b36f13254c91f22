package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"casino"`
	Version     string `envconfig:"VERSION" default:"dev"`

	// LogDir, when set, also writes a per-process log file there
	LogDir string `envconfig:"LOG_DIR"`

	// Database
	DBUser            string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBHost            string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string        `envconfig:"DB_PORT" default:"5432"`
	DBName            string        `envconfig:"DB_NAME" default:"casino"`
	DBMaxConns        int           `envconfig:"DB_MAX_CONNS" default:"20"`
	DBMaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
	DBMaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`

	// Backends
	StorageBackend   string        `envconfig:"STORAGE_BACKEND" default:"postgres"`
	SessionBackend   string        `envconfig:"SESSION_BACKEND" default:"memory"`
	SessionTTL       time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SessionCacheSize int           `envconfig:"SESSION_CACHE_SIZE" default:"10000"`

	// Jobs
	StatsRefreshCron string `envconfig:"STATS_REFRESH_CRON" default:"@every 1m"`
	SessionPurgeCron string `envconfig:"SESSION_PURGE_CRON" default:"@every 5m"`

	// Events; an empty NATS URL keeps events in-process
	NATSURL             string `envconfig:"NATS_URL"`
	NATSSubject         string `envconfig:"NATS_SUBJECT" default:"casino.events"`
	EventDeadLetterPath string `envconfig:"EVENT_DEADLETTER_PATH" default:"logs/event_deadletter.jsonl"`

	// HTTP
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	RateLimitPerMinute int      `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`

	// RNGSeed of zero selects the crypto-seeded source
	RNGSeed uint64 `envconfig:"RNG_SEED" default:"0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > maxPort {
		return fmt.Errorf("%s: PORT %d", ErrMsgInvalidValue, c.Port)
	}
	switch c.StorageBackend {
	case BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("%s: STORAGE_BACKEND %q", ErrMsgUnknownBackend, c.StorageBackend)
	}
	switch c.SessionBackend {
	case BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("%s: SESSION_BACKEND %q", ErrMsgUnknownBackend, c.SessionBackend)
	}
	if c.SessionBackend == BackendPostgres && c.StorageBackend != BackendPostgres {
		return fmt.Errorf("%s: SESSION_BACKEND=postgres requires STORAGE_BACKEND=postgres", ErrMsgInvalidValue)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%s: SESSION_TTL must be positive", ErrMsgInvalidValue)
	}
	if c.SessionCacheSize <= 0 {
		return fmt.Errorf("%s: SESSION_CACHE_SIZE must be positive", ErrMsgInvalidValue)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("%s: RATE_LIMIT_PER_MINUTE must not be negative", ErrMsgInvalidValue)
	}
	return nil
}

// UsesPostgres reports whether any backend needs a database pool
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == BackendPostgres || c.SessionBackend == BackendPostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
