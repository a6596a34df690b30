package workerpool

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Pool bounds how many inbound frames are processed at once across all sessions.
type Pool struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

func New(size int64) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: semaphore.NewWeighted(size)}
}

// Do waits for a free slot and runs fn on it. Once started, fn runs to completion with a
// context that is not cancelled with ctx, so a client disconnecting mid-append cannot
// leave a half-finished write. Do itself returns early with ctx.Err() if ctx is done first.
func (p *Pool) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	p.wg.Add(1)
	result := make(chan error, 1)
	go func() {
		defer p.wg.Done()
		defer p.sem.Release(1)
		result <- fn(context.WithoutCancel(ctx))
	}()

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until every started task has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}
