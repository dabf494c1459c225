package pool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := New(4, 8)
	results := p.Run(context.Background())

	var ran atomic.Int64
	for i := 0; i < 20; i++ {
		p.Submit(func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	p.Close()

	count := 0
	for res := range results {
		if res.Err != nil {
			t.Fatalf("unexpected err: %v", res.Err)
		}
		count++
	}
	if count != 20 {
		t.Fatalf("expected 20 results, got %d", count)
	}
	if ran.Load() != 20 {
		t.Fatalf("expected 20 tasks run, got %d", ran.Load())
	}
}

func TestPool_BoundedConcurrency(t *testing.T) {
	const workers = 3
	p := New(workers, 0)
	results := p.Run(context.Background())

	var active, peak atomic.Int64
	gate := make(chan struct{})

	go func() {
		for i := 0; i < 12; i++ {
			p.Submit(func(ctx context.Context) error {
				cur := active.Add(1)
				for {
					old := peak.Load()
					if cur <= old || peak.CompareAndSwap(old, cur) {
						break
					}
				}
				<-gate
				active.Add(-1)
				return nil
			})
		}
		p.Close()
	}()

	close(gate)
	for range results {
	}

	if peak.Load() > workers {
		t.Fatalf("concurrency %d exceeded worker bound %d", peak.Load(), workers)
	}
}

func TestPool_TaskErrorsSurface(t *testing.T) {
	boom := errors.New("boom")
	p := New(2, 2)
	results := p.Run(context.Background())

	p.Submit(func(ctx context.Context) error { return boom })
	p.Submit(func(ctx context.Context) error { return nil })
	p.Close()

	var failed int
	for res := range results {
		if res.Err != nil {
			failed++
			if !errors.Is(res.Err, boom) {
				t.Fatalf("unexpected err: %v", res.Err)
			}
		}
	}
	if failed != 1 {
		t.Fatalf("expected 1 failure, got %d", failed)
	}
}
