// Package source builds deferreds from things that resolve outside the
// polling graph: timers, channels and other goroutines. Every source is
// bound through arop.FromPoll, so it stays non-blocking and can be driven
// by Wait or by an executor alike.
//
// Key constructors:
// - Pending: an unresolved deferred plus the Completer that settles it
// - After/FailAfter: resolve with a value or error once a duration elapses
// - Chan: resolve with the first value received from a channel
// - Never: stays pending forever
package source
