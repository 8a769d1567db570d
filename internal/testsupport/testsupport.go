// Package testsupport provides shared helpers for package tests: throwaway
// SQLite databases and fully wired application instances.
package testsupport

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lockerlink/internal"
	"lockerlink/internal/config"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// SetupTestDB creates a named in-memory database with cache=shared so the
// concurrent summary queries can run against one logical database. The
// single-connection pool serializes them, which in-memory SQLite requires.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("%s_%d", unsafeChars.ReplaceAllString(t.Name(), "_"), rand.Int63())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// TestConfig returns a config with analytics backed by a temp-file database.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		AppName:            "lockerlink-test",
		AppPort:            "0",
		Environment:        config.Test,
		LogLevel:           config.LogLevelError,
		DatabasePath:       filepath.Join(t.TempDir(), "analytics.db"),
		JobIntervalSeconds: 300,
	}
}

// DisabledConfig returns a config with no database, the disabled analytics
// mode.
func DisabledConfig() *config.Config {
	return &config.Config{
		AppName:            "lockerlink-test",
		AppPort:            "0",
		Environment:        config.Test,
		LogLevel:           config.LogLevelError,
		JobIntervalSeconds: 300,
	}
}

// SetupApp builds a complete application for handler tests. Requests go
// through app.Fiber.Test, no listener is started.
func SetupApp(t *testing.T, cfg *config.Config) *internal.Application {
	t.Helper()

	app, err := internal.NewAppWithConfig(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if app.DB != nil {
			if sqlDB, err := app.DB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	})
	return app
}
