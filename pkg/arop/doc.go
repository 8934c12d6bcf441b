// Package arop contains lazy deferred-result primitives. A Deferred[T]
// describes a computation that eventually produces a Result[T] (success,
// failure or cancellation); building and combining deferreds performs no
// work until the value is demanded.
//
// Two driving modes are supported. Wait/WaitCtx/Finally block the calling
// goroutine until the computation resolves. Poll/Step never block and
// report pending instead, which lets an external driver (see the exec
// subpackage) interleave many computations on one goroutine.
//
// Highlights:
// - Success/Fail/Cancel/Of: construct Result[T]
// - Succeed/FailWith/From/Go/FromPoll: construct Deferred[T]
// - Map/MapErr/Try: transform the eventual value or error
// - Switch/SwitchErr: continue with another deferred computation
// - Join/Join3..Join5/JoinAll: resolve once all operands resolve
// - Select/Select2: resolve with whichever operand resolves first
// - Wait/WaitCtx/Finally: block until resolved
//
// A deferred must be driven by one goroutine at a time; outcomes are
// memoized, so once resolved it can be re-read freely.
package arop
