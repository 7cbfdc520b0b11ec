package pool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrQueueShutdown is recorded for work enqueued after Shutdown.
var ErrQueueShutdown = errors.New("queue is shut down")

// WorkFunc is the signature for async work producing a value of type T.
type WorkFunc[T any] func(ctx context.Context) (T, error)

// Queue manages a batch of concurrent async calls, bounding how many
// run simultaneously.
type Queue[T any] struct {
	wg       sync.WaitGroup
	mu       sync.Mutex
	sem      *semaphore.Weighted
	shutdown atomic.Bool
	errs     []error
}

// NewQueue creates a Queue allowing at most maxConcurrent work
// functions to run at once. If maxConcurrent <= 0, concurrency
// is unlimited.
func NewQueue[T any](maxConcurrent int) *Queue[T] {
	q := &Queue[T]{}
	if maxConcurrent > 0 {
		q.sem = semaphore.NewWeighted(int64(maxConcurrent))
	}
	return q
}

// Wait blocks until all work in the queue completes.
// Returns all errors joined via errors.Join.
func (q *Queue[T]) Wait() error {
	q.wg.Wait()

	q.mu.Lock()
	defer q.mu.Unlock()

	return errors.Join(q.errs...)
}

// Shutdown prevents new work from executing in this queue. Work that
// already holds a slot runs to completion.
func (q *Queue[T]) Shutdown() {
	q.shutdown.Store(true)
}

// Start launches fn in a new goroutine managed by the queue and
// returns a Result for tracking the individual call. fn does not run
// until a slot is free; cancelling ctx while queued records and
// returns the context error.
func (q *Queue[T]) Start(ctx context.Context, fn WorkFunc[T]) *Result[T] {
	ctx, cancel := context.WithCancel(ctx)
	r := &Result[T]{
		done:   make(chan struct{}),
		cancel: cancel,
		queue:  q,
	}

	q.wg.Add(1)
	go func() {
		defer func() {
			cancel()
			close(r.done)
			q.wg.Done()
		}()

		if q.sem != nil {
			if err := q.sem.Acquire(ctx, 1); err != nil {
				r.err = err
				q.recordErr(r.err)
				return
			}
			defer q.sem.Release(1)
		}

		if q.shutdown.Load() {
			r.err = ErrQueueShutdown
			q.recordErr(r.err)
			return
		}

		r.value, r.err = fn(ctx)
		if r.err != nil {
			q.recordErr(r.err)
		}
	}()

	return r
}

// recordErr appends err to the queue's error slice under the mutex.
func (q *Queue[T]) recordErr(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.errs = append(q.errs, err)
}
