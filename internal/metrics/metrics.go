// Package metrics measures the shape of a generated maze.
package metrics

import (
	"github.com/san-kum/amazeing/internal/maze"
)

// Stats summarises one maze.
type Stats struct {
	Cells      int
	Decorative int
	Navigable  int
	DeadEnds   int
	Junctions  int
	Components int

	// Edges counts open walls between two cells.
	Edges int
	// Loops is the number of independent cycles, zero for a perfect maze.
	Loops int

	SolutionLength int
}

// Perfect reports whether every navigable region is a tree.
func (s Stats) Perfect() bool { return s.Loops == 0 }

// Map returns the stats keyed by name, for storage and tables.
func (s Stats) Map() map[string]float64 {
	return map[string]float64{
		"cells":           float64(s.Cells),
		"decorative":      float64(s.Decorative),
		"navigable":       float64(s.Navigable),
		"edges":           float64(s.Edges),
		"dead_ends":       float64(s.DeadEnds),
		"junctions":       float64(s.Junctions),
		"components":      float64(s.Components),
		"loops":           float64(s.Loops),
		"solution_length": float64(s.SolutionLength),
	}
}

// Analyze computes stats for g. Cells in pattern are decorative; with a nil
// pattern, fully walled cells are. path is the solution, possibly empty.
func Analyze(g *maze.Grid, pattern maze.Pattern, path []maze.Coord) Stats {
	w, h := g.Width(), g.Height()
	s := Stats{Cells: w * h, SolutionLength: len(path)}

	decorative := func(c maze.Coord) bool {
		if pattern != nil {
			return pattern.Contains(c)
		}
		return g.At(c) == maze.Closed && w*h > 1
	}

	sets := make([]*disjointSet, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := maze.Coord{X: x, Y: y}
			if decorative(c) {
				s.Decorative++
				continue
			}
			s.Navigable++
			sets[y*w+x] = newDisjointSet()

			open := 0
			for _, d := range maze.SearchOrder {
				if g.CanMove(c, d) {
					open++
				}
			}
			switch {
			case open == 1:
				s.DeadEnds++
			case open >= 3:
				s.Junctions++
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := maze.Coord{X: x, Y: y}
			for _, d := range []maze.Direction{maze.East, maze.South} {
				if !g.CanMove(c, d) {
					continue
				}
				s.Edges++
				n := c.Step(d)
				a, b := sets[y*w+x], sets[n.Y*w+n.X]
				if a != nil && b != nil {
					a.union(b)
				}
			}
		}
	}

	roots := make(map[*disjointSet]struct{})
	for _, set := range sets {
		if set != nil {
			roots[set.findSet()] = struct{}{}
		}
	}
	s.Components = len(roots)
	s.Loops = s.Edges - s.Navigable + s.Components
	return s
}
