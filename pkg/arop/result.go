package arop

import (
	"time"

	"github.com/google/uuid"
)

type resultState uint8

const (
	stateEmpty resultState = iota
	stateSuccess
	stateFailure
	stateCancelled
)

// Result is the immutable outcome of a resolved computation: a success
// carrying a value, a failure carrying an error, or a cancellation carrying
// the error that interrupted the work. The zero value is empty, meaning
// "not resolved yet".
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	state     resultState
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		state:     stateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		state:     stateFailure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		state:     stateCancelled,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of converts a conventional (value, error) pair into a Result. A nil error
// yields a success; a context cancellation or deadline error yields a
// cancellation; any other error yields a failure.
func Of[T any](r T, err error) Result[T] {
	switch {
	case err == nil:
		return Success(r)
	case IsCancellationError(err):
		return Cancel[T](err)
	default:
		return Fail[T](err)
	}
}

// FailFrom retypes a non-success result as a failure of another value type,
// keeping the original error, id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		state:     stateFailure,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// CancelFrom retypes a non-success result as a cancellation of another value
// type, keeping the original error, id and creation time.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		state:     stateCancelled,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks the result into a conventional (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.state == stateSuccess
}

// IsFailure reports a plain failure. Cancellations are a separate kind and
// report false here.
func (r Result[T]) IsFailure() bool {
	return r.state == stateFailure
}

func (r Result[T]) IsCancel() bool {
	return r.state == stateCancelled
}

func (r Result[T]) HasResult() bool {
	return r.state == stateSuccess
}

func (r Result[T]) IsEmpty() bool {
	return r.state == stateEmpty
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
