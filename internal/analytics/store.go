// Package analytics implements the event store behind the tracking and
// summary endpoints: an append-only analytics_events table with a lazily
// created schema and a handful of fixed aggregation queries.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gorm.io/gorm"
)

// ErrDisabled marks the operating mode where no analytics database is
// configured. It is a known state, not a failure: callers translate it into
// the disabled responses instead of an error page.
var ErrDisabled = errors.New("analytics disabled")

// Store wraps the analytics database connection. A nil *Store is the
// disabled mode; all methods short-circuit with ErrDisabled before touching
// any connection.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger

	readyOnce sync.Once
	readyErr  error
}

// NewStore creates a Store on an open connection. The schema is not created
// here; it is ensured lazily by the first caller of EnsureReady.
func NewStore(db *gorm.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// DB exposes the underlying connection for maintenance jobs and tests.
func (s *Store) DB() *gorm.DB {
	if s == nil {
		return nil
	}
	return s.db
}

// EnsureReady idempotently guarantees the analytics_events table and its
// indexes exist. Safe for concurrent callers: exactly one migration attempt
// is issued per process lifetime and every caller, early or late, observes
// its outcome. A failed attempt stays failed; nothing is cached as ready.
func (s *Store) EnsureReady() error {
	if s == nil {
		return ErrDisabled
	}

	s.readyOnce.Do(func() {
		if err := s.db.AutoMigrate(&Event{}); err != nil {
			s.readyErr = fmt.Errorf("failed to ensure analytics schema: %w", err)
			s.logger.Error("Analytics schema setup failed", slog.Any("error", err))
			return
		}
		s.logger.Info("Analytics schema ready")
	})
	return s.readyErr
}

// Insert appends a single event row. The primary key constraint is the only
// dedup: a colliding id surfaces as an error, which indicates a client retry
// bug rather than a normal path.
func (s *Store) Insert(ctx context.Context, event *Event) error {
	if s == nil {
		return ErrDisabled
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to store event: %w", err)
	}
	return nil
}
