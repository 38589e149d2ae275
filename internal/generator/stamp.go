package generator

import (
	"github.com/san-kum/amazeing/internal/maze"
	"go.uber.org/zap"
)

// stamp marks the "42" glyph as walled, pre-visited cells. The glyph is
// skipped when the grid is too small or when it would cover entry or exit.
func (g *Generator) stamp(entry, exit maze.Coord) {
	if g.noPattern {
		return
	}
	if g.width < g.patternMin || g.height < g.patternMin {
		g.log.Info("maze too small for the 42 pattern",
			zap.Int("width", g.width),
			zap.Int("height", g.height),
			zap.Int("min", g.patternMin))
		return
	}

	cells := maze.LogoCells(g.width, g.height)
	for _, c := range cells {
		if !g.grid.Contains(c) {
			g.log.Info("42 pattern does not fit the grid", zap.Stringer("cell", c))
			return
		}
		if c == entry || c == exit {
			g.log.Warn("42 pattern overlaps entry or exit, skipping pattern",
				zap.Stringer("cell", c))
			return
		}
	}

	for _, c := range cells {
		g.grid.Set(c, maze.Closed)
		g.markVisited(c)
	}
	g.pattern = maze.NewPattern(cells...)
}
