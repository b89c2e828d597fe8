package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	s.SetCell(0, 0, '#', ColorGreen)
	cell := s.GetCell(0, 0)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(0,0) = %+v, want '#' in green", cell)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(4, 4)

	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(4, 0, 'X')
	s.Set(0, 4, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds writes leaked into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetCell(1, 1, '@', ColorRed)

	s.Clear()
	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, want default space", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 1, 'A')
	s.Set(5, 3, 'B')

	s.Resize(4, 4)
	if got := s.Get(2, 1); got != 'A' {
		t.Errorf("Get(2,1) after shrink = %q, want 'A'", got)
	}
	if got := s.Get(5, 3); got != ' ' {
		t.Errorf("clipped cell = %q, want space", got)
	}
	if s.Width() != 4 || s.Height() != 4 {
		t.Errorf("dimensions %dx%d, want 4x4", s.Width(), s.Height())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(2, 0, "abc")

	if got := s.Get(2, 0); got != 'a' {
		t.Errorf("Get(2,0) = %q, want 'a'", got)
	}
	if got := s.Get(4, 0); got != 'c' {
		t.Errorf("Get(4,0) = %q, want 'c'", got)
	}

	// Text running off the edge is clipped, not wrapped.
	s.DrawText(8, 1, "xyz")
	if got := s.Get(0, 1); got != ' ' {
		t.Errorf("clipped text wrapped onto next row: %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawBox(1, 1, 5, 4, ColorGray)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("Get(%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
	if got := s.Get(3, 1); got != '─' {
		t.Errorf("top edge = %q, want '─'", got)
	}
	if got := s.Get(1, 2); got != '│' {
		t.Errorf("left edge = %q, want '│'", got)
	}
	if got := s.Get(3, 3); got != ' ' {
		t.Errorf("interior = %q, want space", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
