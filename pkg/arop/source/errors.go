package source

import "errors"

var (
	// ErrChannelClosed reports a channel source whose channel was closed
	// before a value arrived.
	ErrChannelClosed = errors.New("source: channel closed before a value arrived")
)
