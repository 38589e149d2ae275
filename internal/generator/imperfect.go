package generator

import (
	"github.com/san-kum/amazeing/internal/maze"
	"go.uber.org/zap"
)

// imperfectDivisor sets the number of extra openings to cells/20.
const imperfectDivisor = 20

// breakWalls opens extra interior walls so the maze gains loops. Only walls
// between two non-boundary, non-pattern cells are considered. It returns the
// number of walls opened.
func (g *Generator) breakWalls() int {
	target := g.width * g.height / imperfectDivisor
	if g.width <= 2 || g.height <= 2 || target == 0 {
		return 0
	}

	budget := 10 * target
	opened := 0
	for attempt := 0; attempt < budget && opened < target; attempt++ {
		c := maze.Coord{
			X: 1 + g.rng.Intn(g.width-2),
			Y: 1 + g.rng.Intn(g.height-2),
		}
		d := maze.East
		if g.rng.Intn(2) == 1 {
			d = maze.South
		}
		n := c.Step(d)

		if g.grid.OnBoundary(n) || g.pattern.Contains(c) || g.pattern.Contains(n) {
			continue
		}
		if !g.grid.HasWall(c, d) {
			continue
		}
		g.grid.Carve(c, n)
		opened++
	}

	if opened < target {
		g.log.Debug("imperfection budget exhausted",
			zap.Int("target", target),
			zap.Int("opened", opened))
	}
	return opened
}
