package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingJob struct {
	counter *atomic.Int64
	fail    bool
}

type countingResult struct {
	err error
}

func (r *countingResult) GetError() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	if j.fail {
		return &countingResult{err: context.Canceled}
	}
	return &countingResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(4)
	pool.Start()

	const jobs = 20
	for i := 0; i < jobs; i++ {
		pool.Submit(&countingJob{counter: &counter})
	}

	results := pool.Wait()
	if len(results) != jobs {
		t.Errorf("results = %d, want %d", len(results), jobs)
	}
	if got := counter.Load(); got != jobs {
		t.Errorf("executed = %d, want %d", got, jobs)
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(2)
	pool.Start()

	pool.Submit(&countingJob{counter: &counter, fail: true})
	pool.Submit(&countingJob{counter: &counter})

	var failed int
	for _, result := range pool.Wait() {
		if result.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
}

func TestPool_MinimumOneWorker(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countingJob{counter: &counter})

	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("results = %d, want 1", len(results))
	}
}

type slowJob struct{}

func (j *slowJob) Execute(ctx context.Context) Result {
	select {
	case <-time.After(5 * time.Second):
	case <-ctx.Done():
	}
	return &countingResult{err: ctx.Err()}
}

func TestPool_ShutdownStopsPromptly(t *testing.T) {
	pool := NewPool(1)
	pool.Start()
	pool.Submit(&slowJob{})

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return promptly")
	}
}
