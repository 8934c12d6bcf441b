package exec

import (
	"log/slog"
	"time"
)

type options struct {
	logger     *slog.Logger
	maxBackoff time.Duration
}

type Option func(*options)

func defaultOptions() options {
	return options{
		logger:     slog.Default(),
		maxBackoff: time.Millisecond,
	}
}

// WithLogger sets the logger for executor diagnostics. A nil logger keeps
// the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxBackoff caps how long the driver parks between idle polls.
// Non-positive values keep the default of one millisecond.
func WithMaxBackoff(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.maxBackoff = d
		}
	}
}
