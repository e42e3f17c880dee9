// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cryda/reconciler/internal/pkg/logger"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler creates a scheduler with UTC timezone and seconds precision.
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
		),
	}
}

// AddJob registers a job on the given cron spec.
func (s *Scheduler) AddJob(spec, name string, fn func()) error {
	_, err := s.cron.AddFunc(spec, fn)
	if err != nil {
		logger.Error("Failed to register scheduled job",
			logger.String("job", name),
			logger.String("spec", spec),
			logger.Err(err))
		return err
	}

	logger.Info("Registered scheduled job",
		logger.String("job", name),
		logger.String("spec", spec))
	return nil
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
