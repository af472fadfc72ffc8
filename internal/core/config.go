package core

// RuntimeConfig is what a front end tells a game on Reset.
type RuntimeConfig struct {
	ScreenW  int // cells
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // equal seeds and inputs replay the same run
}

// GameState is the run summary front ends poll every tick.
type GameState struct {
	Score    int
	Lives    int
	Level    int  // 1-based
	Won      bool // cleared the final level
	GameOver bool // lost the last life or won
	Paused   bool
}

// StepResult is returned by every tick.
type StepResult struct {
	State GameState
}
