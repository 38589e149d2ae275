package generator

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/amazeing/internal/maze"
	"github.com/san-kum/amazeing/internal/solver"
	"go.uber.org/zap"
)

// Generator builds mazes with a randomized depth-first search (recursive
// backtracker). One Generator owns its grid and can be regenerated any
// number of times.
type Generator struct {
	width, height int
	grid          *maze.Grid
	visited       []bool
	stack         []maze.Coord
	pattern       maze.Pattern

	rng        *rand.Rand
	seed       int64
	patternMin int
	noPattern  bool
	log        *zap.Logger

	// run is bumped by every start so older cursors can detect that they
	// no longer own the grid.
	run uint64
}

// New creates a generator for a width x height maze.
func New(width, height int, options *Options) (*Generator, error) {
	if options == nil {
		options = DefaultOptions()
	}
	grid, err := maze.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	// below the default the glyph can touch the border and wall off cells
	patternMin := max(options.PatternMinSize, maze.DefaultPatternMinSize)
	log := options.Logger
	if log == nil {
		log = zap.NewNop()
	}

	seed := options.seed()
	return &Generator{
		width:      width,
		height:     height,
		grid:       grid,
		visited:    make([]bool, width*height),
		rng:        rand.New(rand.NewSource(seed)),
		seed:       seed,
		patternMin: patternMin,
		noPattern:  options.NoPattern,
		log:        log,
	}, nil
}

func (g *Generator) Width() int  { return g.width }
func (g *Generator) Height() int { return g.height }

// Seed returns the seed the random source was last set to.
func (g *Generator) Seed() int64 { return g.seed }

// Reseed resets the random source. It takes effect on the next Generate.
func (g *Generator) Reseed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Grid returns the generator's grid. It is mutated in place by later runs;
// Clone it to keep a snapshot.
func (g *Generator) Grid() *maze.Grid { return g.grid }

// Pattern returns the decorative cells stamped by the last run, or an empty
// set if decoration was skipped.
func (g *Generator) Pattern() maze.Pattern { return g.pattern }

// Generate runs a full generation and returns the finished grid. Entry and
// exit must lie inside the grid.
func (g *Generator) Generate(entry, exit maze.Coord, perfect bool) *maze.Grid {
	c := g.Start(entry, exit, perfect)
	for c.Step() != Done {
	}
	return g.grid
}

// Solve returns the shortest path between two cells of the current grid.
func (g *Generator) Solve(start, end maze.Coord) []maze.Coord {
	return solver.Solve(g.grid, start, end)
}

// reset reinitialises all per-run state and stamps the decoration.
func (g *Generator) reset(entry, exit maze.Coord) {
	for _, c := range []maze.Coord{entry, exit} {
		if !g.grid.Contains(c) {
			panic(&maze.GeometryError{Op: "generate", A: c, Wrapped: maze.ErrOutOfBounds})
		}
	}

	g.run++
	g.grid.Fill()
	for i := range g.visited {
		g.visited[i] = false
	}
	g.stack = g.stack[:0]
	g.pattern = nil

	g.stamp(entry, exit)

	g.markVisited(entry)
	g.stack = append(g.stack, entry)

	g.log.Debug("generation started",
		zap.Int("width", g.width),
		zap.Int("height", g.height),
		zap.Stringer("entry", entry),
		zap.Stringer("exit", exit),
		zap.Int64("seed", g.seed))
}

func (g *Generator) isVisited(c maze.Coord) bool {
	return g.visited[c.Y*g.width+c.X]
}

func (g *Generator) markVisited(c maze.Coord) {
	g.visited[c.Y*g.width+c.X] = true
}

// unvisitedNeighbors lists in-bounds unvisited 4-neighbours in north,
// south, east, west order.
func (g *Generator) unvisitedNeighbors(c maze.Coord) []maze.Coord {
	out := make([]maze.Coord, 0, 4)
	for _, d := range maze.SearchOrder {
		n := c.Step(d)
		if g.grid.Contains(n) && !g.isVisited(n) {
			out = append(out, n)
		}
	}
	return out
}

// advance performs one transition of the backtracker.
func (g *Generator) advance() Status {
	if len(g.stack) == 0 {
		return Done
	}
	cur := g.stack[len(g.stack)-1]
	candidates := g.unvisitedNeighbors(cur)
	if len(candidates) == 0 {
		g.stack = g.stack[:len(g.stack)-1]
		if len(g.stack) == 0 {
			return Done
		}
		return Backtracked
	}

	next := candidates[g.rng.Intn(len(candidates))]
	g.grid.Carve(cur, next)
	g.markVisited(next)
	g.stack = append(g.stack, next)
	return Carved
}

func (g *Generator) String() string {
	return fmt.Sprintf("generator(%dx%d, seed=%d)", g.width, g.height, g.seed)
}
