package core

import "time"

// RuntimeConfig contains settings chosen at launch that are not part of the
// game's tuning constants.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ResolveSeed replaces a zero seed with a time-based one.
func (c RuntimeConfig) ResolveSeed() RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState is a snapshot of the session status reported after each tick.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score of this process, never persisted
	GameOver  bool // Whether the player has been hit
	Tick      int  // Ticks simulated since reset
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Hits  int  // Enemies destroyed this tick
	Fired bool // Whether a bullet was emitted this tick
}
