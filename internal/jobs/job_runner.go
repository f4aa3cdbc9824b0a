package jobs

import (
	"closetshare-backend/internal/config"
	"closetshare-backend/internal/logger"
	"closetshare-backend/internal/service"
)

// JobRunner executes scheduled maintenance jobs.
type JobRunner struct {
	rentalSvc service.RentalService
	cfg       *config.Config
}

func NewJobRunner(rentalSvc service.RentalService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rentalSvc: rentalSvc,
		cfg:       cfg,
	}
}

// Config returns the application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.cfg
}

// runWithRecovery runs a job and recovers from panics so one bad run cannot
// take the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, job func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Job starting", "job", jobName)
	job()
	logger.Info("Job finished", "job", jobName)
}
