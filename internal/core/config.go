package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 30)
	Seed     int64 // RNG seed for the AI's random choices
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Games won by the human player this session
	GameOver bool // Whether the current game has ended
	Paused   bool // Whether input is currently ignored (AI thinking, window too small)
}

// StepResult is returned by Game.Step() after each input tick.
type StepResult struct {
	State GameState
	Moved bool // Whether a piece was dropped this step
}
