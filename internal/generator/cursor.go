package generator

import (
	"iter"

	"github.com/san-kum/amazeing/internal/maze"
)

// Status reports what a single cursor step did.
type Status int

const (
	// Carved means a wall was opened and a new cell pushed.
	Carved Status = iota
	// Backtracked means a dead end was popped off the stack.
	Backtracked
	// Done means the stack is empty and the maze is complete.
	Done
)

func (s Status) String() string {
	switch s {
	case Carved:
		return "carved"
	case Backtracked:
		return "backtracked"
	case Done:
		return "done"
	}
	return "unknown"
}

// Cursor is a resumable generation run. All of its state lives in the
// generator (grid, visited cells and stack); the cursor only remembers which
// run it belongs to and whether loops still have to be added.
type Cursor struct {
	g        *Generator
	run      uint64
	perfect  bool
	finished bool
	opened   int
}

// Start resets the generator and returns a cursor positioned before the
// first carve.
func (g *Generator) Start(entry, exit maze.Coord, perfect bool) *Cursor {
	g.reset(entry, exit)
	return &Cursor{g: g, run: g.run, perfect: perfect}
}

// Step advances the run by one carve or one backtrack. Once the maze is
// complete (and, for imperfect mazes, loops have been added) every further
// call returns Done. It panics if the generator has since been restarted.
func (c *Cursor) Step() Status {
	if c.run != c.g.run {
		panic(ErrCursorStale)
	}
	if c.finished {
		return Done
	}
	st := c.g.advance()
	if st == Done {
		c.finished = true
		if !c.perfect {
			c.opened = c.g.breakWalls()
		}
	}
	return st
}

// Finished reports whether the run has reached Done.
func (c *Cursor) Finished() bool { return c.finished }

// Depth is the current size of the backtracking stack.
func (c *Cursor) Depth() int { return len(c.g.stack) }

// Head returns the cell on top of the stack, if any.
func (c *Cursor) Head() (maze.Coord, bool) {
	if len(c.g.stack) == 0 {
		return maze.Coord{}, false
	}
	return c.g.stack[len(c.g.stack)-1], true
}

// Opened returns how many extra walls the imperfection pass removed.
func (c *Cursor) Opened() int { return c.opened }

// Steps returns a single-use sequence of checkpoints: the grid after every
// carve, plus one final checkpoint after loops are added when perfect is
// false. The run starts when iteration starts. The yielded grid is the live
// grid; clone it to keep a frame. Ranging over the sequence a second time
// panics.
func (g *Generator) Steps(entry, exit maze.Coord, perfect bool) iter.Seq[*maze.Grid] {
	used := false
	return func(yield func(*maze.Grid) bool) {
		if used {
			panic(ErrCursorConsumed)
		}
		used = true

		c := g.Start(entry, exit, perfect)
		for {
			switch c.Step() {
			case Carved:
				if !yield(g.grid) {
					return
				}
			case Done:
				if !perfect {
					yield(g.grid)
				}
				return
			}
		}
	}
}
