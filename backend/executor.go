package backend

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Executor schedules backend work
type Executor interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pool is an executor bounding the number of concurrently running functions.
// A pool created with a non-positive limit runs every function directly.
type Pool struct {
	limit int64
	sem   *semaphore.Weighted
}

// Execute runs fn once a slot is available
func (p *Pool) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if p == nil || p.sem == nil {
		return fn(ctx)
	}
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)
	return fn(ctx)
}

// Limit returns max concurrency, 0 means unbounded
func (p *Pool) Limit() int {
	if p == nil {
		return 0
	}
	return int(p.limit)
}

// NewPool creates a pool
func NewPool(limit int) *Pool {
	ret := &Pool{}
	if limit > 0 {
		ret.limit = int64(limit)
		ret.sem = semaphore.NewWeighted(ret.limit)
	}
	return ret
}
