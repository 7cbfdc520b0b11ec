package pool

import "context"

// Result represents an in-flight or completed async call. Once Done is
// closed, its value and error are fixed and never change.
type Result[T any] struct {
	done   chan struct{}
	value  T
	err    error
	cancel context.CancelFunc
	queue  *Queue[T]
}

// Done returns a channel that is closed when this specific call completes.
func (r *Result[T]) Done() <-chan struct{} { return r.done }

// Value blocks until this call completes and returns its outcome.
func (r *Result[T]) Value() (T, error) {
	<-r.done
	return r.value, r.err
}

// Err blocks until this call completes and returns its error.
func (r *Result[T]) Err() error {
	<-r.done
	return r.err
}

// Wait blocks until all calls in the queue complete.
// Returns all errors joined.
func (r *Result[T]) Wait() error {
	return r.queue.Wait()
}

// Cancel cancels this call's context. A call still waiting for a slot
// is abandoned; a call already running sees its context end.
func (r *Result[T]) Cancel() {
	r.cancel()
}
