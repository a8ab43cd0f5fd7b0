package core

// RuntimeConfig is passed to a game on every reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameMs returns the virtual duration of one tick in milliseconds.
func (c RuntimeConfig) FrameMs() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState is what the platform needs to know about a game after a tick.
type GameState struct {
	Score    int    // Planets held by the player
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Result   string // Final result once GameOver is set
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Quit asks the platform to exit.
	Quit bool
}
