package scheduler

import (
	"time"

	"car-rental-system/internal/jobs"
	"car-rental-system/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner. It fails
// if a configured schedule does not parse.
func NewScheduler(jobRunner *jobs.JobRunner) (*Scheduler, error) {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() error {
	cfg := s.jobs.Config().Scheduler

	// Retention cleanup; the summary line rides along on the same schedule
	if _, err := s.cron.AddFunc(cfg.CleanupRentals, s.jobs.CleanupOldRentals); err != nil {
		logger.Error("Failed to register CleanupOldRentals job", "error", err)
		return err
	}
	if _, err := s.cron.AddFunc(cfg.CleanupRentals, s.jobs.LogFleetSummary); err != nil {
		logger.Error("Failed to register LogFleetSummary job", "error", err)
		return err
	}

	logger.Info("All cron jobs registered successfully", "cleanup_rentals", cfg.CleanupRentals)
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// Entries returns the number of registered jobs
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
