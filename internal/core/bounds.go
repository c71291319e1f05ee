package core

// Bounds is the size of the world in pixels. The world spans [0,W]×[0,H].
type Bounds struct {
	W, H int
}

// CheckBound reports independently whether r lies fully inside b
// horizontally and vertically. An edge touching the border is still inside.
func CheckBound(r Rect, b Bounds) (horizontal, vertical bool) {
	horizontal = r.X >= 0 && r.Right() <= b.W
	vertical = r.Y >= 0 && r.Bottom() <= b.H
	return horizontal, vertical
}

// Inside reports whether r lies fully inside b on both axes.
func Inside(r Rect, b Bounds) bool {
	h, v := CheckBound(r, b)
	return h && v
}
