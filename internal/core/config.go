package core

import "time"

// RuntimeConfig contains configuration passed to the UI at start-up.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	Seed       int64         // RNG seed, 0 means seed from the clock
	MergeFlash time.Duration // How long merged tiles stay highlighted, 0 disables
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		MergeFlash: 150 * time.Millisecond,
	}
}
