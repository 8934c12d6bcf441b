package chain

import (
	"context"

	"github.com/ib-77/arop/pkg/arop"
)

// Chain wraps a Deferred with context to enable fluent chaining. The context
// is captured once and handed to every handler when the chain is eventually
// driven; building the chain runs nothing.
type Chain[T any] struct {
	ctx context.Context
	d   *arop.Deferred[T]
}

// Start creates a new chain from a deferred computation
func Start[T any](ctx context.Context, d *arop.Deferred[T]) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		d:   d,
	}
}

// FromValue creates a new chain from an already successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		d:   arop.Succeed(value),
	}
}

// Deferred returns the underlying deferred computation
func (c *Chain[T]) Deferred() *arop.Deferred[T] {
	return c.d
}

// Then chains a function that continues with another deferred computation
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) *arop.Deferred[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		d: arop.Switch(c.d, func(v T) *arop.Deferred[U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		d: arop.Try(c.d, func(v T) (U, error) {
			return tryOnSuccess(c.ctx, v)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		d: arop.Map(c.d, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Ensure performs a side effect on success without changing the outcome
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		d: c.d.Tee(func(v T) {
			onSuccess(c.ctx, v)
		}),
	}
}

// Wait drives the chain to completion under the chain's context
func (c *Chain[T]) Wait() arop.Result[T] {
	return c.d.WaitCtx(c.ctx)
}

// Finally drives the chain and collapses the outcome into a final value via
// the matching handler
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	r := c.d.WaitCtx(c.ctx)

	if r.IsSuccess() {
		return onSuccess(c.ctx, r.Result())
	} else if r.IsCancel() {
		return onCancel(c.ctx, r.Err())
	} else {
		return onFailure(c.ctx, r.Err())
	}
}
