// Package pool runs units of work through a concurrency-bounded queue,
// handing each caller a [Result] that resolves exactly once.
//
// A [Queue] is a batch of related calls sharing a concurrency limit,
// enforced with a weighted semaphore from [golang.org/x/sync/semaphore].
// Work started with [Queue.Start] waits for a slot before running, and
// honors context cancellation while it waits.
//
//	q := pool.NewQueue[string](4)
//	r1 := q.Start(ctx, fetchA)
//	r2 := q.Start(ctx, fetchB)
//
//	v, err := r1.Value() // this call only
//	err = q.Wait()       // whole batch, errors joined
//
// Most callers should use the higher-level
// [github.com/autofacts/describe/client] package, whose DescribeAsync
// and DescribeBatch methods manage queues internally.
package pool
