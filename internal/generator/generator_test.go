package generator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/amazeing/internal/maze"
	"github.com/san-kum/amazeing/internal/solver"
)

func rows(g *maze.Grid) [][]maze.Cell {
	out := make([][]maze.Cell, g.Height())
	for y := range out {
		out[y] = g.Row(y)
	}
	return out
}

func newGen(t *testing.T, w, h int, opts *Options) *Generator {
	t.Helper()
	g, err := New(w, h, opts)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return g
}

func TestNew_InvalidSize(t *testing.T) {
	if _, err := New(0, 5, nil); !errors.Is(err, maze.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestGenerate_PerfectIsSpanningTree(t *testing.T) {
	tests := []struct {
		w, h int
		seed int64
	}{
		{1, 1, 1},
		{1, 7, 2},
		{5, 5, 3},
		{8, 3, 4},
		{20, 15, 5},
	}

	for _, tt := range tests {
		gen := newGen(t, tt.w, tt.h, &Options{Seed: tt.seed, NoPattern: true})
		g := gen.Generate(maze.Coord{X: 0, Y: 0}, maze.Coord{X: tt.w - 1, Y: tt.h - 1}, true)

		if got, want := g.Edges(), tt.w*tt.h-1; got != want {
			t.Errorf("%dx%d: expected %d edges, got %d", tt.w, tt.h, want, got)
		}
		if !g.Consistent() {
			t.Errorf("%dx%d: inconsistent walls", tt.w, tt.h)
		}
		if got := solver.Distances(g, maze.Coord{}).Reached(); got != tt.w*tt.h {
			t.Errorf("%dx%d: expected all %d cells reachable, got %d", tt.w, tt.h, tt.w*tt.h, got)
		}
	}
}

func TestGenerate_FiveByFiveScenario(t *testing.T) {
	gen := newGen(t, 5, 5, &Options{Seed: 42})
	entry, exit := maze.Coord{X: 0, Y: 0}, maze.Coord{X: 4, Y: 4}
	g := gen.Generate(entry, exit, true)

	if g.Edges() != 24 {
		t.Errorf("expected 24 edges, got %d", g.Edges())
	}
	path := gen.Solve(entry, exit)
	if len(path) < 9 || len(path) > 25 {
		t.Fatalf("path length %d outside [9, 25]", len(path))
	}
	if path[0] != entry || path[len(path)-1] != exit {
		t.Errorf("path runs %v -> %v", path[0], path[len(path)-1])
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, perfect := range []bool{true, false} {
		a := newGen(t, 17, 13, &Options{Seed: 99})
		b := newGen(t, 17, 13, &Options{Seed: 99})
		entry, exit := maze.Coord{X: 0, Y: 0}, maze.Coord{X: 16, Y: 12}

		ga := a.Generate(entry, exit, perfect)
		gb := b.Generate(entry, exit, perfect)
		if diff := cmp.Diff(rows(ga), rows(gb)); diff != "" {
			t.Errorf("perfect=%v: grids differ (-a +b):\n%s", perfect, diff)
		}
		if diff := cmp.Diff(a.Solve(entry, exit), b.Solve(entry, exit)); diff != "" {
			t.Errorf("perfect=%v: paths differ (-a +b):\n%s", perfect, diff)
		}
	}
}

func TestGenerate_ReseedReproduces(t *testing.T) {
	gen := newGen(t, 10, 10, &Options{Seed: 5})
	entry, exit := maze.Coord{X: 0, Y: 0}, maze.Coord{X: 9, Y: 9}

	first := gen.Generate(entry, exit, false).Clone()
	gen.Generate(entry, exit, false)
	gen.Reseed(5)
	again := gen.Generate(entry, exit, false)

	if !first.Equal(again) {
		t.Error("reseeding did not reproduce the first maze")
	}
	if gen.Seed() != 5 {
		t.Errorf("expected seed 5, got %d", gen.Seed())
	}
}

func TestGenerate_PanicsOutOfBounds(t *testing.T) {
	gen := newGen(t, 4, 4, &Options{Seed: 1})
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, maze.ErrOutOfBounds) {
			t.Errorf("expected ErrOutOfBounds panic, got %v", r)
		}
	}()
	gen.Generate(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 4, Y: 0}, true)
}
