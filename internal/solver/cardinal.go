package solver

import (
	"fmt"
	"strings"

	"github.com/san-kum/amazeing/internal/maze"
)

// CardinalString encodes a path as one letter per step. The delta between
// consecutive cells is tested north, east, south, west and the first match
// wins. Paths shorter than two cells encode to "".
func CardinalString(path []maze.Coord) string {
	if len(path) < 2 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(path) - 1)
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		switch {
		case dy < 0:
			sb.WriteByte('N')
		case dx > 0:
			sb.WriteByte('E')
		case dy > 0:
			sb.WriteByte('S')
		case dx < 0:
			sb.WriteByte('W')
		}
	}
	return sb.String()
}

// FollowCardinal replays a direction string from start and returns every
// visited cell, start included.
func FollowCardinal(start maze.Coord, dirs string) ([]maze.Coord, error) {
	path := make([]maze.Coord, 0, len(dirs)+1)
	path = append(path, start)
	cur := start
	for i := 0; i < len(dirs); i++ {
		d, ok := maze.DirectionFromLetter(dirs[i])
		if !ok {
			return nil, fmt.Errorf("solver: invalid direction %q at offset %d", dirs[i], i)
		}
		cur = cur.Step(d)
		path = append(path, cur)
	}
	return path, nil
}

// Verify checks that path starts at start, ends at end and only crosses open
// walls inside g.
func Verify(g *maze.Grid, path []maze.Coord, start, end maze.Coord) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if path[0] != start || path[len(path)-1] != end {
		return fmt.Errorf("%w: path runs %v -> %v, want %v -> %v",
			ErrBrokenPath, path[0], path[len(path)-1], start, end)
	}
	for i, c := range path {
		if !g.Contains(c) {
			return fmt.Errorf("%w: step %d leaves the grid at %v", ErrBrokenPath, i, c)
		}
	}
	for i := 1; i < len(path); i++ {
		d, ok := path[i-1].DirectionTo(path[i])
		if !ok || !g.CanMove(path[i-1], d) {
			return fmt.Errorf("%w: step %d from %v to %v crosses a wall", ErrBrokenPath, i, path[i-1], path[i])
		}
	}
	return nil
}
