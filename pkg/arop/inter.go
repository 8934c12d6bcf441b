package arop

// Pollable is the driver-facing contract of a deferred computation. Every
// Deferred satisfies it regardless of value type, which lets a driver queue
// heterogeneous computations side by side.
type Pollable interface {
	// Step attempts to make progress without blocking and reports whether
	// the computation has resolved. Once it returns true it keeps
	// returning true.
	Step() bool
	// Kind names the computation's root combinator, for diagnostics
	Kind() string
}
