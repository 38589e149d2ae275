package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is a single wall bit of a cell mask.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

// SearchOrder is the fixed neighbour order used by the solver, both when
// expanding nodes and when walking back from the target.
var SearchOrder = [4]Direction{North, South, East, West}

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	panic(fmt.Sprintf("maze: invalid direction %d", uint8(d)))
}

// Delta returns the coordinate offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	panic(fmt.Sprintf("maze: invalid direction %d", uint8(d)))
}

// Letter returns the cardinal letter N, E, S or W.
func (d Direction) Letter() byte {
	switch d {
	case North:
		return 'N'
	case East:
		return 'E'
	case South:
		return 'S'
	case West:
		return 'W'
	}
	return '?'
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionFromLetter is the inverse of Letter.
func DirectionFromLetter(b byte) (Direction, bool) {
	switch b {
	case 'N':
		return North, true
	case 'E':
		return East, true
	case 'S':
		return South, true
	case 'W':
		return West, true
	}
	return 0, false
}

// Coord is a cell position, X to the east and Y to the south.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// Step returns the coordinate one cell away in direction d. The result may
// lie outside any particular grid.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// DirectionTo reports which single step leads from c to other. The checks
// run north, east, south, west; ok is false unless other is a 4-neighbour.
func (c Coord) DirectionTo(other Coord) (d Direction, ok bool) {
	dx, dy := other.X-c.X, other.Y-c.Y
	switch {
	case dx == 0 && dy == -1:
		return North, true
	case dx == 1 && dy == 0:
		return East, true
	case dx == 0 && dy == 1:
		return South, true
	case dx == -1 && dy == 0:
		return West, true
	}
	return 0, false
}

// ParseCoord parses the "x,y" form produced by String.
func ParseCoord(s string) (Coord, error) {
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return Coord{}, fmt.Errorf("maze: coordinate %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("maze: coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("maze: coordinate %q: %w", s, err)
	}
	return Coord{X: x, Y: y}, nil
}
