package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the camera window and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Logical screen width in pixels
	ScreenH  int   // Logical screen height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase     string // Name of the current flow state
	Score     int    // Coins collected this run
	HighScore int    // Best score of the session
	GameOver  bool   // Whether the player fell out of the world
	Won       bool   // Whether every coin was collected
}

// Finished reports whether the run has ended and waits for a restart.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
