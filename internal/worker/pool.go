package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/FrostPlanner_Go/internal/logger"
)

// ErrPoolStopped is returned by Enqueue once the pool is stopping
var ErrPoolStopped = errors.New(ErrMsgPoolStopped)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once

	// mu is held for reading by Enqueue while it may send, and for writing
	// by Stop before draining, so no send can land after the drain.
	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize < 0 {
		queueSize = DefaultQueueSize
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers. ctx is handed to every job.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker is the worker loop
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		// Stop takes priority over queued work
		select {
		case <-p.quit:
			return
		default:
		}

		select {
		case job := <-p.jobQueue:
			if err := job.Process(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue adds a job to the queue, blocking while it is full or until ctx is done.
// Returns ErrPoolStopped once Stop has been called.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop stops the workers and waits for them to finish.
// Jobs still queued are processed with a cancelled context so their waiters return.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)

		// Waits out in-flight Enqueue calls; later ones see stopped
		p.mu.Lock()
		p.stopped = true
		p.mu.Unlock()

		p.wg.Wait()

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		for {
			select {
			case job := <-p.jobQueue:
				logger.FromContext(cancelled).Debug(LogMsgPoolDraining)
				_ = job.Process(cancelled)
			default:
				return
			}
		}
	})
}
