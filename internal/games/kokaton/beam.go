package kokaton

import (
	"github.com/vovakirdan/kokaton/internal/asset"
	"github.com/vovakirdan/kokaton/internal/core"
)

// Beam is a projectile fired from the kokaton along its facing direction.
type Beam struct {
	rect   core.Rect
	vel    core.Vec
	sprite asset.Sprite
	state  EntityState
}

// NewBeam fires a beam from p. The beam is rotated to the facing angle and
// centered one kokaton size ahead of it on each moving axis.
func NewBeam(p *Player, speed int, base asset.Sprite) *Beam {
	dir := p.Direction()
	unit := dir.Unit()
	sprite := base.Rotate(dir.Angle())

	pr := p.Rect()
	cx, cy := pr.Center()
	cx += pr.W * unit.X
	cy += pr.H * unit.Y

	return &Beam{
		rect:   core.RectCentered(cx, cy, sprite.Width, sprite.Height),
		vel:    unit.Scale(speed),
		sprite: sprite,
	}
}

// Update advances the beam by its velocity. A beam outside the world does
// not move.
func (b *Beam) Update(world core.Bounds) {
	if core.Inside(b.rect, world) {
		b.rect = b.rect.Moved(b.vel)
	}
}

// Offscreen reports whether the beam has left the world on either axis.
// Such a beam can never move again.
func (b *Beam) Offscreen(world core.Bounds) bool {
	return !core.Inside(b.rect, world)
}

// Remove marks the beam for removal at the end of the frame.
func (b *Beam) Remove() {
	b.state = Removed
}

// State returns whether the beam is alive.
func (b *Beam) State() EntityState {
	return b.state
}

// Rect returns the beam's collision box.
func (b *Beam) Rect() core.Rect {
	return b.rect
}

// Velocity returns the per-tick displacement.
func (b *Beam) Velocity() core.Vec {
	return b.vel
}

// Sprite returns the rotated beam sprite.
func (b *Beam) Sprite() asset.Sprite {
	return b.sprite
}
