package wumpus

import (
	"fmt"
	"strings"
)

// Coord is a board coordinate. X grows to the right and Y grows upward,
// so (0, 0) is the bottom-left tile.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Direction is a player heading.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all headings in a fixed order.
func Directions() []Direction {
	return []Direction{DirUp, DirDown, DirLeft, DirRight}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Arrow returns the glyph used to draw a player facing this direction.
func (d Direction) Arrow() rune {
	switch d {
	case DirUp:
		return '▲'
	case DirDown:
		return '▼'
	case DirLeft:
		return '◀'
	case DirRight:
		return '▶'
	default:
		return '@'
	}
}

// ParseDirection parses a direction name (case-insensitive).
func ParseDirection(s string) (Direction, bool) {
	name := strings.TrimSpace(s)
	for _, d := range Directions() {
		if strings.EqualFold(name, d.String()) {
			return d, true
		}
	}
	return DirUp, false
}
