package generator

import (
	"errors"
	"testing"

	"github.com/san-kum/amazeing/internal/maze"
)

func TestSteps_YieldsEveryCarve(t *testing.T) {
	gen := newGen(t, 7, 6, &Options{Seed: 12, NoPattern: true})
	entry, exit := maze.Coord{X: 0, Y: 0}, maze.Coord{X: 6, Y: 5}

	frames := 0
	lastEdges := 0
	for g := range gen.Steps(entry, exit, true) {
		frames++
		if g.Edges() != lastEdges+1 {
			t.Fatalf("frame %d: expected %d edges, got %d", frames, lastEdges+1, g.Edges())
		}
		lastEdges = g.Edges()
	}
	if frames != 7*6-1 {
		t.Errorf("expected %d frames, got %d", 7*6-1, frames)
	}

	ref := newGen(t, 7, 6, &Options{Seed: 12, NoPattern: true}).Generate(entry, exit, true)
	if !ref.Equal(gen.Grid()) {
		t.Error("stepwise and run-to-completion grids differ")
	}
}

func TestSteps_ImperfectAddsFinalFrame(t *testing.T) {
	gen := newGen(t, 10, 10, &Options{Seed: 4})
	entry, exit := maze.Coord{X: 0, Y: 0}, maze.Coord{X: 9, Y: 9}

	frames := 0
	for range gen.Steps(entry, exit, false) {
		frames++
	}
	navigable := 100 - gen.Pattern().Len()
	if frames != navigable {
		t.Errorf("expected %d frames, got %d", navigable, frames)
	}

	ref := newGen(t, 10, 10, &Options{Seed: 4}).Generate(entry, exit, false)
	if !ref.Equal(gen.Grid()) {
		t.Error("stepwise and run-to-completion grids differ")
	}
}

func TestSteps_SingleUse(t *testing.T) {
	gen := newGen(t, 3, 3, &Options{Seed: 1})
	seq := gen.Steps(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 2, Y: 2}, true)
	for range seq {
		break
	}

	defer func() {
		if r := recover(); r != ErrCursorConsumed {
			t.Errorf("expected ErrCursorConsumed, got %v", r)
		}
	}()
	for range seq {
	}
}

func TestSteps_AbandonedThenRegenerated(t *testing.T) {
	gen := newGen(t, 6, 6, &Options{Seed: 9})
	entry, exit := maze.Coord{X: 0, Y: 0}, maze.Coord{X: 5, Y: 5}
	n := 0
	for range gen.Steps(entry, exit, true) {
		n++
		if n == 3 {
			break
		}
	}
	if gen.Grid().Edges() != 3 {
		t.Errorf("expected partial grid with 3 edges, got %d", gen.Grid().Edges())
	}

	g := gen.Generate(entry, exit, true)
	if g.Edges() != 35 {
		t.Errorf("expected full maze with 35 edges, got %d", g.Edges())
	}
}

func TestCursor_StaleAfterRestart(t *testing.T) {
	gen := newGen(t, 4, 4, &Options{Seed: 3})
	old := gen.Start(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 3, Y: 3}, true)
	old.Step()
	gen.Generate(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 3, Y: 3}, true)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrCursorStale) {
			t.Errorf("expected ErrCursorStale, got %v", r)
		}
	}()
	old.Step()
}

func TestCursor_DoneIsSticky(t *testing.T) {
	gen := newGen(t, 2, 2, &Options{Seed: 3})
	c := gen.Start(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 1, Y: 1}, true)

	var seen []Status
	for {
		st := c.Step()
		seen = append(seen, st)
		if st == Done {
			break
		}
	}
	if !c.Finished() || c.Depth() != 0 {
		t.Errorf("expected finished cursor with empty stack, depth %d", c.Depth())
	}
	if _, ok := c.Head(); ok {
		t.Error("expected no head after completion")
	}
	if c.Step() != Done {
		t.Error("expected Done after completion")
	}

	carved := 0
	for _, st := range seen {
		if st == Carved {
			carved++
		}
	}
	if carved != 3 {
		t.Errorf("expected 3 carves, got %d (%v)", carved, seen)
	}
}
