package ingest

import (
	"context"
	"sync"
)

// Job is a unit of work run by the WorkerPool.
type Job func(ctx context.Context) error

// WorkerPool runs jobs on a fixed number of goroutines. Ingest uses it to keep
// several analysis calls in flight on one shared channel.
type WorkerPool struct {
	jobs    chan Job
	done    chan struct{}
	wg      sync.WaitGroup
	workers int

	// Submitters hold the read lock while sending so Close can wait them out
	// before closing jobs.
	sendMu    sync.RWMutex
	closeOnce sync.Once

	// OnError receives job errors. nil drops them.
	OnError func(error)
}

// NewWorkerPool creates a pool with the given worker count and queue capacity.
func NewWorkerPool(workers, queue int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if queue <= 0 {
		queue = workers * 2
	}
	return &WorkerPool{
		jobs:    make(chan Job, queue),
		done:    make(chan struct{}),
		workers: workers,
	}
}

// Start launches the workers. They exit when ctx is done or the pool is closed
// and its queue drained.
func (p *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					if err := job(ctx); err != nil && p.OnError != nil {
						p.OnError(err)
					}
				}
			}
		}()
	}
}

// Submit enqueues a job, blocking while the queue is full.
func (p *WorkerPool) Submit(job Job) error {
	return p.SubmitCtx(context.Background(), job)
}

// SubmitCtx enqueues a job but gives up when ctx is done or the pool closes.
func (p *WorkerPool) SubmitCtx(ctx context.Context, job Job) error {
	p.sendMu.RLock()
	defer p.sendMu.RUnlock()
	select {
	case <-p.done:
		return ErrPoolClosed
	default:
	}
	select {
	case p.jobs <- job:
		return nil
	case <-p.done:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs, releases blocked submitters and waits for the workers.
func (p *WorkerPool) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.sendMu.Lock()
		close(p.jobs)
		p.sendMu.Unlock()
	})
	p.wg.Wait()
}

// ErrPoolClosed is returned by submissions after Close.
var ErrPoolClosed = &PoolError{"worker pool closed"}

type PoolError struct{ msg string }

func (e *PoolError) Error() string { return e.msg }
