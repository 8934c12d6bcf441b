package arop

// Deferred is a lazily evaluated computation that eventually resolves to a
// Result[T]. Building a Deferred performs no work: combinators only describe
// what should happen, and nothing runs until the value is demanded through
// Poll, Step, Wait or a driver.
//
// A Deferred must be driven by a single goroutine at a time. Once resolved
// the outcome is memoized, the evaluation step is released, and every later
// poll returns the same Result.
type Deferred[T any] struct {
	kind string
	step func() (Result[T], bool)
	res  Result[T]
	done bool
}

func newDeferred[T any](kind string, step func() (Result[T], bool)) *Deferred[T] {
	return &Deferred[T]{kind: kind, step: step}
}

func resolved[T any](kind string, r Result[T]) *Deferred[T] {
	return &Deferred[T]{kind: kind, res: r, done: true}
}

// Succeed returns an already resolved successful computation.
func Succeed[T any](r T) *Deferred[T] {
	return resolved("succeed", Success(r))
}

// FailWith returns an already resolved failed computation.
func FailWith[T any](err error) *Deferred[T] {
	return resolved("fail", Fail[T](err))
}

// CancelWith returns an already resolved cancelled computation.
func CancelWith[T any](err error) *Deferred[T] {
	return resolved("cancel", Cancel[T](err))
}

// FromResult wraps an existing Result as a resolved computation.
func FromResult[T any](r Result[T]) *Deferred[T] {
	return resolved("result", r)
}

// From defers fn until the computation is first driven. fn runs on the
// driving goroutine, exactly once, and its (value, error) pair is converted
// with Of.
func From[T any](fn func() (T, error)) *Deferred[T] {
	return newDeferred("from", func() (Result[T], bool) {
		return Of(fn()), true
	})
}

// Go starts fn on its own goroutine immediately and resolves once fn
// returns. Unlike From it does not wait to be driven; polling only observes
// completion.
func Go[T any](fn func() (T, error)) *Deferred[T] {
	done := make(chan struct{})
	var res Result[T]

	go func() {
		defer close(done)
		res = Of(fn())
	}()

	return newDeferred("go", func() (Result[T], bool) {
		select {
		case <-done:
			return res, true
		default:
			return Result[T]{}, false
		}
	})
}

// FromPoll binds a Deferred to an external source through a non-blocking
// probe. step is asked for the outcome on every poll until it reports true;
// after that it is never called again. kind labels the source in driver
// diagnostics and may be empty.
func FromPoll[T any](kind string, step func() (Result[T], bool)) *Deferred[T] {
	if kind == "" {
		kind = "external"
	}
	return newDeferred(kind, step)
}

// Poll attempts to make progress without blocking. It returns the resolved
// outcome and true, or a zero Result and false while the computation is
// still pending.
func (d *Deferred[T]) Poll() (Result[T], bool) {
	if d.done {
		return d.res, true
	}

	res, ok := d.step()
	if !ok {
		return Result[T]{}, false
	}

	d.res = res
	d.done = true
	d.step = nil // release upstream nodes and closures
	return res, true
}

// Step drives the computation one poll forward and reports whether it has
// resolved. It exists to satisfy Pollable.
func (d *Deferred[T]) Step() bool {
	_, ok := d.Poll()
	return ok
}

// Kind names the root combinator of this computation.
func (d *Deferred[T]) Kind() string {
	return d.kind
}

// IsResolved reports whether a previous poll already observed the outcome.
// It never drives the computation.
func (d *Deferred[T]) IsResolved() bool {
	return d.done
}

// forward retypes a non-success result while crossing a combinator's type
// boundary, keeping the cancellation kind intact.
func forward[In, Out any](r Result[In]) Result[Out] {
	if r.IsCancel() {
		return CancelFrom[In, Out](r)
	}
	return FailFrom[In, Out](r)
}
