// Package core holds the types shared by the simulation and the platform:
// world geometry, the cell buffer games draw into, colors and input
// actions. It imports nothing outside the standard library.
package core

// Vec is a displacement or velocity in world pixels.
type Vec struct {
	X, Y int
}

// Add returns the sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Scale returns v multiplied by n on both axes.
func (v Vec) Scale(n int) Vec {
	return Vec{v.X * n, v.Y * n}
}

// Rect is an axis-aligned box in world pixels, X/Y being the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the w×h box with its top-left corner at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectCentered returns the w×h box centred on (cx, cy). Odd sizes put the
// extra pixel right of and below the centre.
func RectCentered(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the first column past the right edge of r.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row below the bottom edge of r.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center is the inverse of RectCentered.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Moved returns r translated by v.
func (r Rect) Moved(v Vec) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

// Intersects reports whether r and o share at least one pixel. Boxes that
// only touch along an edge do not.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Sign returns -1, 0 or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
