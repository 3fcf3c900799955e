package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/catalog")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "catalog-api", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 0.6, cfg.BreakerFailureRatio)
	assert.Equal(t, uint32(10), cfg.BreakerMinRequests)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.True(t, cfg.RunMigrations)
}

func TestLoadRejectsBadFailureRatio(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/catalog")
	t.Setenv("CATALOG_BREAKER_FAILURE_RATIO", "1.5")

	_, err := Load()
	assert.ErrorContains(t, err, "CATALOG_BREAKER_FAILURE_RATIO")
}

func TestLoadFloorsMaxPageSize(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/catalog")
	t.Setenv("CATALOG_DEFAULT_PAGE_SIZE", "40")
	t.Setenv("CATALOG_MAX_PAGE_SIZE", "20")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.MaxPageSize)
}

func TestLoadTrimsDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "  postgres://localhost:5432/catalog  ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/catalog", cfg.DatabaseURL)
}
