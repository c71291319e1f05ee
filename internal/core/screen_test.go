package core

import (
	"strings"
	"testing"
)

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got, want := s.String(), "      \n      \n      "; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetWithColor(p[0], p[1], 'X', ColorRed)
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Errorf("out of bounds writes leaked into the buffer:\n%s", s.String())
	}
	if c := s.GetCell(9, 9); c != blank {
		t.Errorf("GetCell outside = %+v, expected blank", c)
	}

	s.DrawText(2, 0, "Hello")
	if got := s.Row(0); got != "  He" {
		t.Errorf("clipped text row = %q, expected %q", got, "  He")
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{
			name: "text",
			draw: func(s *Screen) { s.DrawText(1, 1, "abc") },
			want: "      \n abc  \n      ",
		},
		{
			name: "centred text",
			draw: func(s *Screen) { s.DrawTextCentered(0, "ok") },
			want: "  ok  \n      \n      ",
		},
		{
			name: "filled rect",
			draw: func(s *Screen) { s.DrawRect(NewRect(4, 1, 3, 3), '#') },
			want: "      \n    ##\n    ##",
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 4, 3), ColorDefault) },
			want: "┌──┐  \n│  │  \n└──┘  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 3)
			tt.draw(s)
			if got := s.String(); got != tt.want {
				t.Errorf("got\n%s\nexpected\n%s", got, tt.want)
			}
		})
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextWithColor(1, 1, "Hi", ColorBlue)
	s.DrawRectWithColor(NewRect(5, 0, 2, 2), '#', ColorRed)

	if c := s.GetCell(1, 1); c.Rune != 'H' || c.Color != ColorBlue {
		t.Errorf("GetCell(1, 1) = %+v, expected blue 'H'", c)
	}
	if c := s.GetCell(6, 1); c.Rune != '#' || c.Color != ColorRed {
		t.Errorf("GetCell(6, 1) = %+v, expected red '#'", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("after Clear GetCell(1, 1) = %+v, expected blank", c)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("resized screen should be blank, got %q", s.String())
	}
	if got := s.Row(-1); got != "        " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}

	s.Resize(-3, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to 0, got %dx%d %q", s.Width(), s.Height(), s.String())
	}
}
