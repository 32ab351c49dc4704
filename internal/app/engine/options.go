package engine

import "time"

// Options tunes the engine run loop.
type Options struct {
	// ReadBackoff is how long the processor sleeps after a failed read
	// before trying again.
	ReadBackoff time.Duration
}

// DefaultEngineOptions returns the defaults used in production.
func DefaultEngineOptions() *Options {
	return &Options{
		ReadBackoff: 100 * time.Millisecond,
	}
}
