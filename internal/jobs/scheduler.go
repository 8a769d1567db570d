// Package jobs runs the background maintenance loop for the analytics
// database.
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"lockerlink/internal/config"
)

// Scheduler is responsible for running background jobs. It only exists when
// analytics is configured; in disabled mode no scheduler is created.
type Scheduler struct {
	db     *gorm.DB
	logger *slog.Logger
	cfg    *config.Config
	ctx    context.Context
	cancel context.CancelFunc

	isRunning bool

	// Mutex to prevent concurrent job executions
	processingMutex sync.Mutex
	isProcessing    bool

	maintenance *MaintenanceJob

	maintenanceTicker *time.Ticker
}

func NewScheduler(db *gorm.DB, logger *slog.Logger, cfg *config.Config) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		db:     db,
		logger: logger,
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}
	s.maintenance = NewMaintenanceJob(db, logger)
	return s
}

// executeJobSafely runs a job only if no other job is currently executing.
func (s *Scheduler) executeJobSafely(jobName string, jobFunc func() error) {
	s.processingMutex.Lock()
	if s.isProcessing {
		s.logger.Debug("Skipping job execution - previous job still running", slog.String("job", jobName))
		s.processingMutex.Unlock()
		return
	}
	s.isProcessing = true
	s.processingMutex.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Panic recovered in background job",
				slog.String("job", jobName),
				slog.Any("panic", r))
		}

		s.processingMutex.Lock()
		s.isProcessing = false
		s.processingMutex.Unlock()
	}()

	if err := jobFunc(); err != nil {
		s.logger.Error("Error executing job", slog.String("job", jobName), slog.Any("error", err))
	}
}

// Start begins the background jobs.
func (s *Scheduler) Start() {
	if s.isRunning {
		s.logger.Info("Background jobs already running.")
		return
	}

	s.logger.Info("Starting background jobs...")
	s.isRunning = true
	s.startMaintenanceJob()
}

func (s *Scheduler) startMaintenanceJob() {
	interval := time.Duration(s.cfg.JobIntervalSeconds) * time.Second
	s.logger.Info("Starting maintenance job", slog.Duration("interval", interval))
	s.maintenanceTicker = time.NewTicker(interval)

	go func() {
		for {
			select {
			case <-s.maintenanceTicker.C:
				s.executeJobSafely("maintenance", s.maintenance.Run)
			case <-s.ctx.Done():
				s.logger.Info("Maintenance job stopped")
				return
			}
		}
	}()
}

// Stop halts all background jobs.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background jobs...")

	if s.maintenanceTicker != nil {
		s.maintenanceTicker.Stop()
	}

	s.cancel()
	s.isRunning = false
	s.logger.Info("Background jobs stopped")
}

// IsRunning returns whether jobs are currently running.
func (s *Scheduler) IsRunning() bool {
	return s.isRunning
}
