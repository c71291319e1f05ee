package kokaton

import (
	"math/rand"

	"github.com/vovakirdan/kokaton/internal/asset"
	"github.com/vovakirdan/kokaton/internal/core"
)

// Hazard is a bomb bouncing around the world.
type Hazard struct {
	rect   core.Rect
	vel    core.Vec
	sprite asset.Sprite
	state  EntityState
}

// NewHazard creates a bomb at center (cx, cy) moving down-right at speed.
func NewHazard(cx, cy, radius, speed int, color core.Color) *Hazard {
	sprite := asset.Circle("bomb", radius, color)
	return &Hazard{
		rect:   core.RectCentered(cx, cy, sprite.Width, sprite.Height),
		vel:    core.Vec{X: speed, Y: speed},
		sprite: sprite,
	}
}

// SpawnHazard places a bomb at a random position fully inside the world.
// Positions overlapping avoid are re-rolled up to attempts times; the last
// roll is kept if every attempt overlaps.
func SpawnHazard(rng *rand.Rand, world core.Bounds, avoid core.Rect, radius, speed, attempts int, color core.Color) *Hazard {
	size := 2 * radius
	var h *Hazard
	for i := 0; i <= max(attempts, 0); i++ {
		cx := radius + rng.Intn(max(world.W-size, 0)+1)
		cy := radius + rng.Intn(max(world.H-size, 0)+1)
		h = NewHazard(cx, cy, radius, speed, color)
		if !h.rect.Intersects(avoid) {
			break
		}
	}
	return h
}

// Update reflects the velocity on every axis where the bomb is out of
// bounds, then moves it.
func (h *Hazard) Update(world core.Bounds) {
	horizontal, vertical := core.CheckBound(h.rect, world)
	if !horizontal {
		h.vel.X = -h.vel.X
	}
	if !vertical {
		h.vel.Y = -h.vel.Y
	}
	h.rect = h.rect.Moved(h.vel)
}

// Remove marks the bomb for removal at the end of the frame.
func (h *Hazard) Remove() {
	h.state = Removed
}

// State returns whether the bomb is alive.
func (h *Hazard) State() EntityState {
	return h.state
}

// Rect returns the bomb's collision box.
func (h *Hazard) Rect() core.Rect {
	return h.rect
}

// Velocity returns the per-tick displacement.
func (h *Hazard) Velocity() core.Vec {
	return h.vel
}

// Sprite returns the bomb sprite.
func (h *Hazard) Sprite() asset.Sprite {
	return h.sprite
}
