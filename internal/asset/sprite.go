package asset

import (
	"math"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Sprite is a terminal rendition of an image asset.
// Width and Height are the image size in world pixels and define the
// collision box of entities that use it. When Art is set it is scaled onto
// the covered cells; otherwise the area is filled with Glyph.
type Sprite struct {
	Name       string
	Width      int
	Height     int
	Glyph      rune
	Art        []string
	Color      core.Color
	Stipple    int  // Fill only every Nth cell (0 = solid)
	Orientable bool // Glyph follows rotation (line glyphs)
	Badge      rune // Optional marker drawn in the center cell
}

// Flip mirrors the sprite horizontally.
func (s Sprite) Flip() Sprite {
	out := s
	out.Glyph = mirrorRune(s.Glyph)
	out.Badge = mirrorRune(s.Badge)
	if len(s.Art) > 0 {
		out.Art = make([]string, len(s.Art))
		for i, row := range s.Art {
			runes := []rune(row)
			for l, r := 0, len(runes)-1; l <= r; l, r = l+1, r-1 {
				runes[l], runes[r] = mirrorRune(runes[r]), mirrorRune(runes[l])
			}
			out.Art[i] = string(runes)
		}
	}
	return out
}

// Rotate turns the sprite counter-clockwise by deg degrees. The pixel size
// becomes the bounding box of the rotated image, and orientable glyphs are
// replaced by the line glyph closest to the new angle.
func (s Sprite) Rotate(deg float64) Sprite {
	out := s
	rad := deg * math.Pi / 180
	cos := math.Abs(math.Cos(rad))
	sin := math.Abs(math.Sin(rad))
	w, h := float64(s.Width), float64(s.Height)

	out.Width = int(math.Round(w*cos + h*sin))
	out.Height = int(math.Round(w*sin + h*cos))
	if s.Orientable {
		out.Glyph = lineGlyph(deg)
	}
	return out
}

// WithBadge returns a copy of the sprite with a center marker.
func (s Sprite) WithBadge(r rune) Sprite {
	s.Badge = r
	return s
}

// Draw blits the sprite into the given cell rectangle of dst.
func (s Sprite) Draw(dst *core.Screen, cells core.Rect) {
	switch {
	case len(s.Art) > 0:
		s.drawArt(dst, cells)
	case s.Stipple > 0:
		for y := cells.Y; y < cells.Bottom(); y++ {
			for x := cells.X; x < cells.Right(); x++ {
				if (x+3*y)%s.Stipple == 0 {
					dst.SetWithColor(x, y, s.Glyph, s.Color)
				}
			}
		}
	default:
		dst.DrawRectWithColor(cells, s.Glyph, s.Color)
	}

	if s.Badge != 0 {
		cx, cy := cells.Center()
		dst.SetWithColor(cx, cy, s.Badge, s.Color)
	}
}

// drawArt samples the art rows nearest-neighbour onto the cell rectangle.
// Spaces in the art are transparent.
func (s Sprite) drawArt(dst *core.Screen, cells core.Rect) {
	if cells.W <= 0 || cells.H <= 0 {
		return
	}
	rows := len(s.Art)
	for cy := 0; cy < cells.H; cy++ {
		row := []rune(s.Art[cy*rows/cells.H])
		if len(row) == 0 {
			continue
		}
		for cx := 0; cx < cells.W; cx++ {
			r := row[cx*len(row)/cells.W]
			if r == ' ' {
				continue
			}
			dst.SetWithColor(cells.X+cx, cells.Y+cy, r, s.Color)
		}
	}
}

// lineGlyph picks the box-drawing line closest to the given angle.
// Angles are counter-clockwise with y pointing up.
func lineGlyph(deg float64) rune {
	a := math.Mod(deg, 180)
	if a < 0 {
		a += 180
	}
	switch int(math.Round(a/45)) % 4 {
	case 1:
		return '╱'
	case 2:
		return '│'
	case 3:
		return '╲'
	default:
		return '─'
	}
}

var mirrorPairs = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'`': '\'', '\'': '`',
	'╱': '╲', '╲': '╱',
	'←': '→', '→': '←',
	'↖': '↗', '↗': '↖',
	'↙': '↘', '↘': '↙',
	'◀': '▶', '▶': '◀',
	'▌': '▐', '▐': '▌',
}

// mirrorRune returns the horizontally mirrored counterpart of r, if any.
func mirrorRune(r rune) rune {
	if m, ok := mirrorPairs[r]; ok {
		return m
	}
	return r
}
