// Package pool provides the bounded worker pool shared by batch fitness
// evaluation and the catalog scrapers. Fan-out is always capped by the worker
// count; callers that need per-task output let each task write its own
// pre-allocated slot.
package pool

import (
	"context"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

type Pool struct {
	workers int
	tasks   chan Task

	mu     sync.RWMutex
	rate   <-chan time.Time
	ticker *time.Ticker

	wg sync.WaitGroup
}

func New(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// SetRateLimit throttles task starts across all workers. rps <= 0 removes
// the limit.
func (p *Pool) SetRateLimit(rps int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	if rps <= 0 {
		return
	}
	t := time.NewTicker(time.Second / time.Duration(rps))
	p.ticker = t
	p.rate = t.C
}

func (p *Pool) Submit(t Task) {
	if t == nil {
		return
	}
	p.tasks <- t
}

// Close signals that no more tasks will be submitted. Run's result channel
// closes once the remaining tasks drain.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	close(p.tasks)
}

// Run starts the workers and returns a channel carrying one Result per task.
func (p *Pool) Run(ctx context.Context) <-chan Result {
	buf := p.workers * 64
	out := make(chan Result, buf)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.worker(ctx, out)
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}

func (p *Pool) worker(ctx context.Context, out chan<- Result) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-p.tasks:
			if !ok {
				return
			}
			if t == nil {
				continue
			}

			p.mu.RLock()
			rate := p.rate
			p.mu.RUnlock()
			if rate != nil {
				select {
				case <-ctx.Done():
					return
				case <-rate:
				}
			}

			err := t(ctx)
			select {
			case <-ctx.Done():
				return
			case out <- Result{Err: err}:
			}
		}
	}
}
