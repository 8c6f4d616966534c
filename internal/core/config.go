package core

// RuntimeConfig contains settings passed to a round at initialization.
// ScreenW/ScreenH describe the terminal, not the arena; the arena size
// comes from the game config.
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

// GameState is the per-tick summary of a round that the session and
// platform care about.
type GameState struct {
	Scores   [2]int   // Indexed by PlayerID.Index()
	Lives    [2]int   // Indexed by PlayerID.Index()
	Layout   int      // Current layout index, 1..5
	GameOver bool     // Whether the round has ended
	Paused   bool     // Whether the round is paused
	Winner   PlayerID // NoPlayer until game over, and on a draw
}

// BestScore returns the higher of the two player scores.
func (s GameState) BestScore() int {
	return max(s.Scores[0], s.Scores[1])
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
	// Cues raised during the tick, in the order they happened.
	Cues []Cue
	// Finished is true only on the tick that detected game over.
	Finished bool
}
