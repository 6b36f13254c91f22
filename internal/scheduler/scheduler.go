// Package scheduler enqueues recurring maintenance jobs onto the worker pool on cron schedules.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	cron       *cron.Cron
	workerPool *worker.Pool
}

// New creates a new scheduler. Specs accept the standard five-field syntax
// and descriptors such as "@every 1m".
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		workerPool: pool,
	}
}

// Schedule registers job to be enqueued every time spec fires
func (s *Scheduler) Schedule(spec string, job worker.Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.workerPool.Enqueue(job)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, job.Name(), err)
	}
	logger.Info("Job scheduled", "job", job.Name(), "spec", spec)
	return nil
}

// Start begins firing schedules
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops firing schedules and waits for the trigger goroutines to return or ctx to expire.
// Jobs already on the worker pool are the pool's to finish.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
