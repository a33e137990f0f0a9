package game

import "time"

// Config holds tracker loop options.
type Config struct {
	// RefreshDelay is how long to wait after a state change before redrawing.
	// Redraws are posted back into the event loop and never order state changes.
	RefreshDelay time.Duration
}

// DefaultConfig returns the default loop options.
func DefaultConfig() Config {
	return Config{RefreshDelay: 50 * time.Millisecond}
}
