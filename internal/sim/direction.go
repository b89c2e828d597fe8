package sim

import "fmt"

// Position is a grid cell coordinate. Equality is by value. The arena bounds
// it at runtime but are not encoded in the type; y grows upward, the render
// adapter is responsible for flipping into screen space.
type Position struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction uint8

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// Opposite returns the reverse of a direction, used to forbid instant
// reversal into the snake's own body.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Shift returns p displaced by one cell in this direction.
func (d Direction) Shift(p Position) Position {
	switch d {
	case DirLeft:
		p.X--
	case DirRight:
		p.X++
	case DirUp:
		p.Y++
	case DirDown:
		p.Y--
	}
	return p
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return DirLeft, nil
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	default:
		return DirUp, fmt.Errorf("sim: unknown direction %q", s)
	}
}
