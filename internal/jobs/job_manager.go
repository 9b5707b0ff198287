package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrdersJob *StalePendingOrdersJob
}

// Settings configures the scheduled jobs.
type Settings struct {
	StaleOrderAfter    time.Duration
	StaleOrderSchedule string
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(staleOrders StaleOrdersFinder, settings Settings, logger *slog.Logger) *JobManager {
	return &JobManager{
		staleOrdersJob: NewStalePendingOrdersJob(staleOrders, settings.StaleOrderAfter, settings.StaleOrderSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pending orders job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrdersJob.Stop()
}
