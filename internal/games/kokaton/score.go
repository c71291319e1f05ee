package kokaton

import (
	"fmt"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Score counts destroyed bombs and knows where its HUD text goes.
type Score struct {
	value int
	x, y  int // World position of the text
	color core.Color
}

// NewScore creates a zero score drawn at world position (x, y).
func NewScore(x, y int, color core.Color) Score {
	return Score{x: x, y: y, color: color}
}

// Increment adds n points.
func (s *Score) Increment(n int) {
	s.value += n
}

// Value returns the current score.
func (s Score) Value() int {
	return s.value
}

// Text returns the HUD line.
func (s Score) Text() string {
	return fmt.Sprintf("Score: %d", s.value)
}

// Position returns the world position of the HUD text.
func (s Score) Position() (int, int) {
	return s.x, s.y
}
