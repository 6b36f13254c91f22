package worker

import (
	"context"
	"sync"

	"github.com/osse101/Casino_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.ctx.Done():
			return
		}
	}
}

// run processes one job; a failure is logged and the worker keeps going
func (p *Pool) run(job Job) {
	log := logger.FromContext(p.ctx).With("job", job.Name())
	if err := job.Process(p.ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
		return
	}
	log.Debug(LogMsgWorkerJobDone)
}

// Enqueue adds a job without blocking. It reports false when the queue is full
// or the pool is stopping, in which case the job is dropped.
func (p *Pool) Enqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(p.ctx).Warn(LogMsgWorkerQueueFull, "job", job.Name())
		return false
	}
}

// Stop cancels in-flight jobs and waits for the workers to exit
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}
