package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic level generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ResolveSeed returns seed, or a time-based seed when seed is 0.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// GameState represents the current run status reported to the front-end.
type GameState struct {
	Screen     string // Name of the active screen state
	Level      int    // Current level (1-indexed)
	Lives      int    // Remaining lives
	Terminated bool   // Whether a quit signal has been received
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
