package kokaton

import (
	"fmt"

	"github.com/vovakirdan/kokaton/internal/asset"
	"github.com/vovakirdan/kokaton/internal/core"
)

// Kokaton poses, named after their sprite numbers.
const (
	PoseDefault  = 3
	PoseHit      = 6
	PoseDefeated = 8
)

// moveKeys maps held actions to their unit displacement.
var moveKeys = []struct {
	action core.Action
	unit   core.Vec
}{
	{core.ActionUp, core.Vec{X: 0, Y: -1}},
	{core.ActionDown, core.Vec{X: 0, Y: 1}},
	{core.ActionLeft, core.Vec{X: -1, Y: 0}},
	{core.ActionRight, core.Vec{X: 1, Y: 0}},
}

// poseSpriteName returns the catalog name of a numbered pose.
func poseSpriteName(pose int) string {
	return fmt.Sprintf("kokaton/%d", pose)
}

// Player is the kokaton controlled by the user.
// Its collision box keeps the size of the default sprite regardless of pose.
type Player struct {
	rect   core.Rect
	dir    Direction
	step   int
	world  core.Bounds
	sprite asset.Sprite

	facing map[Direction]asset.Sprite
	poses  map[int]asset.Sprite
}

// NewPlayer places the kokaton centered at (cx, cy) facing right.
func NewPlayer(cx, cy, step int, world core.Bounds, sprites *asset.Catalog) (*Player, error) {
	base, err := sprites.Sprite(poseSpriteName(PoseDefault))
	if err != nil {
		return nil, err
	}

	p := &Player{
		rect:   core.RectCentered(cx, cy, base.Width, base.Height),
		dir:    DirRight,
		step:   step,
		world:  world,
		facing: facingSprites(base),
		poses:  make(map[int]asset.Sprite),
	}
	for _, pose := range []int{PoseDefault, PoseHit, PoseDefeated} {
		s, err := sprites.Sprite(poseSpriteName(pose))
		if err != nil {
			return nil, err
		}
		p.poses[pose] = s
	}
	p.sprite = p.facing[DirRight]
	return p, nil
}

// facingSprites builds one sprite per direction from the left-facing base.
// Everything without a leftward component uses the mirrored image.
func facingSprites(base asset.Sprite) map[Direction]asset.Sprite {
	mirrored := base.Flip()
	out := make(map[Direction]asset.Sprite, len(Directions))
	for _, d := range Directions {
		s := mirrored
		if d.Unit().X < 0 {
			s = base
		}
		out[d] = s.WithBadge(d.Arrow())
	}
	return out
}

// Move applies the held direction keys. A move that would leave the world on
// either axis is reverted entirely. Any nonzero input turns the kokaton,
// even when the move itself was reverted.
func (p *Player) Move(in core.InputFrame) {
	var net core.Vec
	for _, k := range moveKeys {
		if in.Has(k.action) {
			net = net.Add(k.unit.Scale(p.step))
		}
	}

	moved := p.rect.Moved(net)
	if core.Inside(moved, p.world) {
		p.rect = moved
	}

	if d, ok := DirectionOf(net); ok {
		p.dir = d
		p.sprite = p.facing[d]
	}
}

// SetPose switches to a numbered alternate sprite until the next move.
// Returns false if the pose is unknown.
func (p *Player) SetPose(pose int) bool {
	s, ok := p.poses[pose]
	if !ok {
		return false
	}
	p.sprite = s
	return true
}

// Rect returns the collision box.
func (p *Player) Rect() core.Rect {
	return p.rect
}

// Direction returns the facing direction.
func (p *Player) Direction() Direction {
	return p.dir
}

// Sprite returns the sprite currently displayed.
func (p *Player) Sprite() asset.Sprite {
	return p.sprite
}
