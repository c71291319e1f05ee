package core

// Viewport projects world pixel coordinates onto a character cell grid.
// The whole world is always visible; each axis is scaled independently.
type Viewport struct {
	World Bounds
	Cols  int
	Rows  int
}

// NewViewport creates a viewport for the given world and screen size.
func NewViewport(world Bounds, cols, rows int) Viewport {
	return Viewport{World: world, Cols: cols, Rows: rows}
}

// Point converts a world position to a cell position.
func (v Viewport) Point(x, y int) (int, int) {
	if v.World.W <= 0 || v.World.H <= 0 {
		return 0, 0
	}
	return x * v.Cols / v.World.W, y * v.Rows / v.World.H
}

// Rect converts a world rectangle to the cell rectangle that covers it.
// Any non-empty world rectangle covers at least one cell.
func (v Viewport) Rect(r Rect) Rect {
	x0, y0 := v.Point(r.X, r.Y)
	x1 := ceilDiv(r.Right()*v.Cols, v.World.W)
	y1 := ceilDiv(r.Bottom()*v.Rows, v.World.H)

	w := max(x1-x0, 1)
	h := max(y1-y0, 1)
	return NewRect(x0, y0, w, h)
}

// ceilDiv divides rounding towards positive infinity.
func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
