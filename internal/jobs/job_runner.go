package jobs

import (
	"car-rental-system/internal/config"
	"car-rental-system/internal/logger"
	"car-rental-system/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	fleet  *service.Guarded
	config *config.Config
}

// NewJobRunner creates a new job runner over the shared manager
func NewJobRunner(fleet *service.Guarded, cfg *config.Config) *JobRunner {
	return &JobRunner{
		fleet:  fleet,
		config: cfg,
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.CleanupOldRentals()
	jr.LogFleetSummary()
}
