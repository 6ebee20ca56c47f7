package jobs

import (
	"fmt"
	"time"

	"siparisqr/internal/core/ports"

	"go.uber.org/zap"
)

// Config holds the job settings read from the environment.
type Config struct {
	StaleOrderAfter    time.Duration
	StaleOrderSchedule string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleOrderJob *StaleOrderJob
}

func NewJobManager(
	cfg Config,
	finder StaleOrderFinder,
	notifier ports.StaleOrderNotifier,
	logger *zap.Logger,
) (*JobManager, error) {
	staleOrderJob, err := NewStaleOrderJob(finder, notifier, cfg.StaleOrderAfter, cfg.StaleOrderSchedule, logger)
	if err != nil {
		return nil, fmt.Errorf("stale order job: %w", err)
	}
	return &JobManager{staleOrderJob: staleOrderJob}, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderJob.Stop()
}
