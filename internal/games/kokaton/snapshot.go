package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Paused     bool
	Score      int
	Player     core.Rect
	Dir        Direction
	Beams      []core.Rect
	Hazards    []core.Rect
	Explosions []int // Remaining life of each explosion
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tickCount,
		Phase:  g.phase,
		Paused: g.paused,
		Score:  g.score.Value(),
		Player: g.player.Rect(),
		Dir:    g.player.Direction(),
	}
	for _, b := range g.beams {
		s.Beams = append(s.Beams, b.Rect())
	}
	for _, h := range g.hazards {
		s.Hazards = append(s.Hazards, h.Rect())
	}
	for _, e := range g.explosions {
		s.Explosions = append(s.Explosions, e.Life())
	}
	return s
}
