package source

import (
	"sync"
	"time"

	"github.com/ib-77/arop/pkg/arop"
)

// Completer resolves a Pending deferred from outside the polling graph,
// typically from another goroutine. Only the first resolution wins; the
// reporting methods return false once the outcome is already set.
type Completer[T any] struct {
	once sync.Once
	res  arop.Result[T]
	done chan struct{}
}

// Pending returns an unresolved deferred together with the Completer that
// settles it.
func Pending[T any]() (*arop.Deferred[T], *Completer[T]) {
	c := &Completer[T]{done: make(chan struct{})}

	d := arop.FromPoll("completer", func() (arop.Result[T], bool) {
		select {
		case <-c.done:
			return c.res, true
		default:
			return arop.Result[T]{}, false
		}
	})
	return d, c
}

// Complete settles the deferred with a successful value.
func (c *Completer[T]) Complete(r T) bool {
	return c.settle(arop.Success(r))
}

// Fail settles the deferred with a failure.
func (c *Completer[T]) Fail(err error) bool {
	return c.settle(arop.Fail[T](err))
}

// Cancel settles the deferred with a cancellation.
func (c *Completer[T]) Cancel(err error) bool {
	return c.settle(arop.Cancel[T](err))
}

func (c *Completer[T]) settle(r arop.Result[T]) bool {
	won := false
	c.once.Do(func() {
		c.res = r
		close(c.done)
		won = true
	})
	return won
}

// After resolves successfully with r once d has elapsed. The clock starts
// when the source is built, not when it is first polled.
func After[T any](d time.Duration, r T) *arop.Deferred[T] {
	deadline := time.Now().Add(d)

	return arop.FromPoll("timer", func() (arop.Result[T], bool) {
		if time.Now().Before(deadline) {
			return arop.Result[T]{}, false
		}
		return arop.Success(r), true
	})
}

// FailAfter resolves with a failure once d has elapsed.
func FailAfter[T any](d time.Duration, err error) *arop.Deferred[T] {
	deadline := time.Now().Add(d)

	return arop.FromPoll("timer", func() (arop.Result[T], bool) {
		if time.Now().Before(deadline) {
			return arop.Result[T]{}, false
		}
		return arop.Fail[T](err), true
	})
}

// Chan resolves with the first value received from ch. A channel closed
// before a value arrives resolves to a failure with ErrChannelClosed.
func Chan[T any](ch <-chan T) *arop.Deferred[T] {
	return arop.FromPoll("chan", func() (arop.Result[T], bool) {
		select {
		case r, open := <-ch:
			if !open {
				return arop.Fail[T](ErrChannelClosed), true
			}
			return arop.Success(r), true
		default:
			return arop.Result[T]{}, false
		}
	})
}

// Never stays pending forever. Useful as the losing side of a select and in
// tests of cancellation paths.
func Never[T any]() *arop.Deferred[T] {
	return arop.FromPoll("never", func() (arop.Result[T], bool) {
		return arop.Result[T]{}, false
	})
}
