package exec

import "errors"

var (
	// ErrNilComputation reports a nil computation handed to Spawn or Run.
	ErrNilComputation = errors.New("exec: nil computation")
)
