package kokaton

import (
	"math"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Direction is one of the eight ways the kokaton can face.
// Values run counter-clockwise starting from Right, matching sprite angles.
type Direction int

const (
	DirRight Direction = iota
	DirUpRight
	DirUp
	DirUpLeft
	DirLeft
	DirDownLeft
	DirDown
	DirDownRight
)

// Directions lists all eight directions in counter-clockwise order.
var Directions = [...]Direction{
	DirRight, DirUpRight, DirUp, DirUpLeft,
	DirLeft, DirDownLeft, DirDown, DirDownRight,
}

var directionUnits = [...]core.Vec{
	DirRight:     {X: 1, Y: 0},
	DirUpRight:   {X: 1, Y: -1},
	DirUp:        {X: 0, Y: -1},
	DirUpLeft:    {X: -1, Y: -1},
	DirLeft:      {X: -1, Y: 0},
	DirDownLeft:  {X: -1, Y: 1},
	DirDown:      {X: 0, Y: 1},
	DirDownRight: {X: 1, Y: 1},
}

var directionArrows = [...]rune{
	DirRight:     '→',
	DirUpRight:   '↗',
	DirUp:        '↑',
	DirUpLeft:    '↖',
	DirLeft:      '←',
	DirDownLeft:  '↙',
	DirDown:      '↓',
	DirDownRight: '↘',
}

var directionNames = [...]string{
	DirRight:     "right",
	DirUpRight:   "up-right",
	DirUp:        "up",
	DirUpLeft:    "up-left",
	DirLeft:      "left",
	DirDownLeft:  "down-left",
	DirDown:      "down",
	DirDownRight: "down-right",
}

// DirectionOf maps a nonzero displacement to the direction of its signs.
// Returns false for the zero vector.
func DirectionOf(v core.Vec) (Direction, bool) {
	unit := core.Vec{X: core.Sign(v.X), Y: core.Sign(v.Y)}
	for _, d := range Directions {
		if directionUnits[d] == unit {
			return d, true
		}
	}
	return DirRight, false
}

// Unit returns the direction as a vector with components in {-1, 0, 1}.
// Y grows downwards.
func (d Direction) Unit() core.Vec {
	return directionUnits[d]
}

// Angle returns the screen angle in degrees, counter-clockwise from Right.
// The vertical component is inverted because screen Y grows downwards.
func (d Direction) Angle() float64 {
	u := d.Unit()
	return math.Atan2(float64(-u.Y), float64(u.X)) * 180 / math.Pi
}

// Arrow returns the arrow glyph pointing in this direction.
func (d Direction) Arrow() rune {
	return directionArrows[d]
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}
