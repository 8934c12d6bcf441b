// Package exec drives deferred computations cooperatively on a single
// goroutine. An Executor holds a FIFO of spawned fire-and-forget
// computations; Run polls a primary computation to completion while giving
// every spawned one a chance to make progress between polls, and Drain
// flushes whatever is still queued.
//
// The driver never spins: when nothing progresses it parks with
// exponentially growing pauses, capped by WithMaxBackoff, and wakes early
// on new spawns or context cancellation.
//
// Key operations:
// - New: build an executor (WithLogger, WithMaxBackoff)
// - Spawn: queue a computation without waiting for its result
// - Run: drive a primary computation to its Result
// - Drain: service spawned computations until none remain
package exec
