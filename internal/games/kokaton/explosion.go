package kokaton

import (
	"github.com/vovakirdan/kokaton/internal/asset"
	"github.com/vovakirdan/kokaton/internal/core"
)

// Explosion is a short two-frame animation left where a bomb was destroyed.
type Explosion struct {
	rect   core.Rect
	life   int
	frames [2]asset.Sprite
	state  EntityState
}

// NewExplosion centers an explosion at (cx, cy) that lives for life ticks.
// The second frame is the mirrored image.
func NewExplosion(cx, cy, life int, sprite asset.Sprite) *Explosion {
	return &Explosion{
		rect:   core.RectCentered(cx, cy, sprite.Width, sprite.Height),
		life:   life,
		frames: [2]asset.Sprite{sprite, sprite.Flip()},
	}
}

// Update counts down the remaining life and marks the explosion removed
// once it runs out.
func (e *Explosion) Update() {
	e.life--
	if e.life <= 0 {
		e.state = Removed
	}
}

// Visible reports whether the explosion should be drawn this frame.
func (e *Explosion) Visible() bool {
	return e.state == Alive && e.life > 0
}

// Frame returns the sprite for the current tick, alternating with life.
func (e *Explosion) Frame() asset.Sprite {
	return e.frames[e.life%2]
}

// Life returns the remaining ticks.
func (e *Explosion) Life() int {
	return e.life
}

// State returns whether the explosion is alive.
func (e *Explosion) State() EntityState {
	return e.state
}

// Rect returns the explosion's bounding box.
func (e *Explosion) Rect() core.Rect {
	return e.rect
}
