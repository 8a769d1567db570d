// Package database opens the SQLite connection used by the analytics store.
package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"lockerlink/internal/config"
)

// Connect opens the configured SQLite database with WAL journaling and a
// busy timeout, and applies the connection pool limits from config. It is
// called once at process start, and only when analytics is configured.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if !cfg.AnalyticsEnabled() {
		return nil, fmt.Errorf("no database configured")
	}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := cfg.DatabasePath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.GetMaxOpenConns())
	sqlDB.SetMaxIdleConns(cfg.GetMaxIdleConns())

	logger.Info("Connected to analytics database", slog.String("path", cfg.DatabasePath))
	return db, nil
}

// CheckpointWAL forces a write-ahead log checkpoint. Used by the background
// maintenance job to keep the WAL file bounded.
func CheckpointWAL(db *gorm.DB, mode string) error {
	return db.Exec("PRAGMA wal_checkpoint(" + mode + ")").Error
}
