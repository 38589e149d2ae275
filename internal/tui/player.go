package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/amazeing/internal/generator"
	"github.com/san-kum/amazeing/internal/maze"
	"github.com/san-kum/amazeing/internal/solver"
	"github.com/san-kum/amazeing/internal/viz"
)

const (
	clearScreen = "\033[H\033[J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Player prints animation frames to a plain writer, for non-interactive
// runs.
type Player struct {
	out      io.Writer
	renderer *viz.Renderer
	delay    time.Duration
	seed     string
	frames   int
}

func NewPlayer(out io.Writer, renderer *viz.Renderer, delay time.Duration, seed string) *Player {
	return &Player{out: out, renderer: renderer, delay: delay, seed: seed}
}

// Frames returns how many frames have been drawn.
func (p *Player) Frames() int { return p.frames }

// Generate runs gen stepwise, drawing a frame per checkpoint, and returns
// the finished grid.
func (p *Player) Generate(ctx context.Context, gen *generator.Generator, entry, exit maze.Coord, perfect bool) (*maze.Grid, error) {
	fmt.Fprint(p.out, hideCursor)
	defer fmt.Fprint(p.out, showCursor)

	for grid := range gen.Steps(entry, exit, perfect) {
		p.frame(viz.Scene{Grid: grid, Entry: entry, Exit: exit})
		if err := p.wait(ctx); err != nil {
			return nil, err
		}
	}
	return gen.Grid(), nil
}

// Reveal draws the solution growing from entry to exit and returns it.
func (p *Player) Reveal(ctx context.Context, g *maze.Grid, entry, exit maze.Coord) ([]maze.Coord, error) {
	var path []maze.Coord
	for prefix := range solver.Steps(g, entry, exit) {
		path = prefix
		p.frame(viz.Scene{Grid: g, Entry: entry, Exit: exit, Path: prefix})
		if err := p.wait(ctx); err != nil {
			return nil, err
		}
	}
	return path, nil
}

func (p *Player) frame(s viz.Scene) {
	p.frames++
	fmt.Fprint(p.out, clearScreen)
	fmt.Fprint(p.out, p.renderer.RenderWithHeader(s, p.seed))
}

func (p *Player) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
