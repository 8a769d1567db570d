package jobs

import (
	"log/slog"

	"gorm.io/gorm"

	"lockerlink/internal/database"
)

// MaintenanceJob keeps the SQLite write-ahead log bounded. The events table
// is append-only with no retention, so checkpointing is the only recurring
// upkeep the database needs.
type MaintenanceJob struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewMaintenanceJob(db *gorm.DB, logger *slog.Logger) *MaintenanceJob {
	return &MaintenanceJob{
		db:     db,
		logger: logger,
	}
}

// Run checkpoints the WAL and truncates it. TRUNCATE blocks writers briefly,
// which is acceptable at the event volumes this table sees.
func (j *MaintenanceJob) Run() error {
	if err := database.CheckpointWAL(j.db, "TRUNCATE"); err != nil {
		j.logger.Error("WAL checkpoint failed", slog.Any("error", err))
		return err
	}

	j.logger.Debug("WAL checkpoint completed")
	return nil
}
