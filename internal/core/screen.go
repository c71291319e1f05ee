package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one terminal character and its foreground.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is the cell buffer a game renders into. The platform turns it into
// terminal output; games never see the terminal.
type Screen struct {
	width, height int
	cells         []Cell // Row-major
}

// NewScreen returns a blank width×height buffer.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Resize changes the size and blanks the buffer. Frames are redrawn in
// full, so nothing is preserved.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// SetWithColor writes one cell. Writes outside the buffer are dropped.
func (s *Screen) SetWithColor(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the buffer.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the buffer.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text left to right from (x, y), clipped to the buffer.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextWithColor(x, y, text, ColorDefault)
}

func (s *Screen) DrawTextWithColor(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetWithColor(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centred on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// DrawRect fills r with fill.
func (s *Screen) DrawRect(r Rect, fill rune) {
	s.DrawRectWithColor(r, fill, ColorDefault)
}

func (s *Screen) DrawRectWithColor(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetWithColor(x, y, fill, c)
		}
	}
}

// DrawBox outlines r with light box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	left, top := r.X, r.Y
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := left + 1; x < right; x++ {
		s.SetWithColor(x, top, '─', c)
		s.SetWithColor(x, bottom, '─', c)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetWithColor(left, y, '│', c)
		s.SetWithColor(right, y, '│', c)
	}
	s.SetWithColor(left, top, '┌', c)
	s.SetWithColor(right, top, '┐', c)
	s.SetWithColor(left, bottom, '└', c)
	s.SetWithColor(right, bottom, '┘', c)
}

// Row returns row y as plain text; rows outside the buffer are spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the buffer as plain text, rows separated by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
