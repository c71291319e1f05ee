package core

import "time"

// DefaultTickRate is the frame rate the simulation is tuned for.
const DefaultTickRate = 50

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Frames per second
	Seed     int64 // 0 lets the platform pick one
}

// FrameInterval is the wall time between two frames. A non-positive
// TickRate falls back to DefaultTickRate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the part of a game the platform cares about.
type GameState struct {
	Score    int
	GameOver bool // Terminal; Step is a no-op afterwards
	Paused   bool
}

// StepResult is what one Step produced.
type StepResult struct {
	State GameState
}
