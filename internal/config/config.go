package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the catalog service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"catalog-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"CATALOG_API_PORT" envDefault:"8080"`
	LogLevel        string        `env:"CATALOG_LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Database (required, no default)
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Database Connection Pool
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	RunMigrations  bool          `env:"DB_RUN_MIGRATIONS" envDefault:"true"`

	// Point-lookup cache
	CacheTTL     time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
	CacheCleanup time.Duration `env:"CATALOG_CACHE_CLEANUP" envDefault:"10m"`

	// Circuit breaker thresholds, shared by the search and bulk operation
	// classes. Thresholds are policy knobs, not hard-coded values.
	BreakerFailureRatio float64       `env:"CATALOG_BREAKER_FAILURE_RATIO" envDefault:"0.6"`
	BreakerMinRequests  uint32        `env:"CATALOG_BREAKER_MIN_REQUESTS" envDefault:"10"`
	BreakerOpenTimeout  time.Duration `env:"CATALOG_BREAKER_OPEN_TIMEOUT" envDefault:"30s"`
	BreakerMaxHalfOpen  uint32        `env:"CATALOG_BREAKER_MAX_HALF_OPEN" envDefault:"3"`

	// Rate limits per operation class
	SearchRatePerSec float64 `env:"CATALOG_SEARCH_RATE" envDefault:"50"`
	SearchBurst      int     `env:"CATALOG_SEARCH_BURST" envDefault:"25"`
	BulkRatePerSec   float64 `env:"CATALOG_BULK_RATE" envDefault:"10"`
	BulkBurst        int     `env:"CATALOG_BULK_BURST" envDefault:"5"`

	// Pagination bounds
	DefaultPageSize int `env:"CATALOG_DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxPageSize     int `env:"CATALOG_MAX_PAGE_SIZE" envDefault:"100"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	if cfg.BreakerFailureRatio <= 0 || cfg.BreakerFailureRatio > 1 {
		return nil, fmt.Errorf("CATALOG_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", cfg.BreakerFailureRatio)
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
