package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg := GetConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "lockerlink", cfg.AppName)
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, Development, cfg.Environment)
	assert.False(t, cfg.AnalyticsEnabled())
	assert.Equal(t, 300, cfg.JobIntervalSeconds)
}

func TestEnvironmentOverrides(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("LOCKERLINK_ENV", "production")
	t.Setenv("LOCKERLINK_DATABASE_PATH", "/data/analytics.db")
	t.Setenv("LOCKERLINK_APP_PORT", "8080")

	cfg := GetConfig()
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.AnalyticsEnabled())
	assert.Equal(t, "/data/analytics.db", cfg.DatabasePath)
	assert.Equal(t, "8080", cfg.AppPort)
}

func TestDatabasePathFallbackVariable(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("DATABASE_PATH", "analytics.db")

	cfg := GetConfig()
	assert.True(t, cfg.AnalyticsEnabled())
	assert.Equal(t, "analytics.db", cfg.DatabasePath)
}

func TestConnectionPoolSizing(t *testing.T) {
	cfg := &Config{Environment: Test}
	assert.Equal(t, 1, cfg.GetMaxOpenConns())
	assert.Equal(t, 1, cfg.GetMaxIdleConns())

	cfg = &Config{Environment: Production}
	assert.Equal(t, 10, cfg.GetMaxOpenConns())
	assert.Equal(t, 5, cfg.GetMaxIdleConns())

	cfg = &Config{Environment: Production, DatabaseMaxOpenConns: 25, DatabaseMaxIdleConns: 12}
	assert.Equal(t, 25, cfg.GetMaxOpenConns())
	assert.Equal(t, 12, cfg.GetMaxIdleConns())
}
