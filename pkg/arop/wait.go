package arop

import (
	"context"
	"time"
)

// Parking bounds for the blocking wait loops. Pauses start near a busy spin
// and double up to the cap, so short computations resolve in microseconds
// while long ones cost one wakeup per millisecond.
const (
	minParkTime = time.Nanosecond
	maxParkTime = time.Millisecond
)

// Wait drives the computation on the calling goroutine until it resolves.
// Between polls it parks with exponentially growing pauses.
func (d *Deferred[T]) Wait() Result[T] {
	park := minParkTime

	for {
		if r, ok := d.Poll(); ok {
			return r
		}

		time.Sleep(park)
		if park < maxParkTime {
			park *= 2
			if park > maxParkTime {
				park = maxParkTime
			}
		}
	}
}

// WaitCtx drives the computation like Wait but gives up when ctx ends,
// returning a cancellation carrying ctx.Err(). An already ended ctx returns
// immediately without driving the computation.
func (d *Deferred[T]) WaitCtx(ctx context.Context) Result[T] {
	if err := ctx.Err(); err != nil {
		return Cancel[T](err)
	}

	park := minParkTime
	timer := time.NewTimer(park)
	defer timer.Stop()

	for {
		if r, ok := d.Poll(); ok {
			return r
		}

		select {
		case <-ctx.Done():
			return Cancel[T](ctx.Err())
		case <-timer.C:
		}

		if park < maxParkTime {
			park *= 2
			if park > maxParkTime {
				park = maxParkTime
			}
		}
		timer.Reset(park)
	}
}

// Finally drives the computation to completion and collapses the outcome
// into a plain value via the matching handler.
func Finally[In, Out any](d *Deferred[In],
	onSuccess func(r In) Out,
	onError func(err error) Out,
	onCancel func(err error) Out) Out {

	r := d.Wait()

	if r.IsSuccess() {
		return onSuccess(r.Result())
	} else if r.IsCancel() {
		return onCancel(r.Err())
	} else {
		return onError(r.Err())
	}
}
