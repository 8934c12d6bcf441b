// Package chain provides a fluent wrapper around Deferred[T] for building
// lazy asynchronous pipelines that share one context.
//
// It composes the core combinators Switch, Map, Try and Tee behind a
// convenient Chain[T] type. The context given to Start or FromValue is
// delivered to every handler when the chain is driven, and WaitCtx bounds
// the blocking calls, so a cancelled context turns the outcome into a
// cancellation.
//
// Key operations:
// - Start/FromValue: begin a chain from a Deferred[T] or value
// - Then: continue with a new deferred computation via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Wait: drive the chain to its Result under the chain's context
// - Finally: collapse the chain into a final value via handlers
package chain
