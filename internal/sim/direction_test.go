package sim

import "testing"

func TestDirectionOpposite(t *testing.T) {
	pairs := []struct{ d, opp Direction }{
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirUp, DirDown},
		{DirDown, DirUp},
	}
	for _, p := range pairs {
		if got := p.d.Opposite(); got != p.opp {
			t.Errorf("%v.Opposite() = %v, want %v", p.d, got, p.opp)
		}
	}
}

func TestDirectionShift(t *testing.T) {
	origin := Position{X: 5, Y: 5}
	cases := []struct {
		dir  Direction
		want Position
	}{
		{DirLeft, Position{X: 4, Y: 5}},
		{DirRight, Position{X: 6, Y: 5}},
		{DirUp, Position{X: 5, Y: 6}},
		{DirDown, Position{X: 5, Y: 4}},
	}
	for _, c := range cases {
		if got := c.dir.Shift(origin); got != c.want {
			t.Errorf("%v.Shift(%v) = %v, want %v", c.dir, origin, got, c.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for name, want := range map[string]Direction{
		"left":  DirLeft,
		"up":    DirUp,
		"right": DirRight,
		"down":  DirDown,
	} {
		got, err := ParseDirection(name)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("expected error for unknown direction name")
	}
}
