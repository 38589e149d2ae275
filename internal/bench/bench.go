// Package bench generates many mazes of one shape across consecutive seeds
// and summarises their statistics.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/amazeing/internal/generator"
	"github.com/san-kum/amazeing/internal/maze"
	"github.com/san-kum/amazeing/internal/metrics"
)

var (
	ErrNoRuns  = errors.New("bench: run count must be positive")
	ErrBadSeed = errors.New("bench: first seed must be positive")
)

// Config describes an ensemble.
type Config struct {
	Width, Height int
	Entry, Exit   maze.Coord
	Perfect       bool
	Runs          int
	// SeedStart must be positive; the generator reads seed 0 as a clock seed.
	SeedStart int64
	// Workers bounds concurrency; zero uses GOMAXPROCS.
	Workers int
}

// Result is one generated maze.
type Result struct {
	Seed     int64
	Stats    metrics.Stats
	Duration time.Duration
}

// Ensemble runs one generator per seed.
type Ensemble struct {
	cfg Config
	log *zap.Logger
}

func NewEnsemble(cfg Config, log *zap.Logger) *Ensemble {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ensemble{cfg: cfg, log: log}
}

// Run generates cfg.Runs mazes with seeds SeedStart, SeedStart+1, ... and
// returns their results in seed order.
func (e *Ensemble) Run(ctx context.Context) ([]Result, error) {
	if e.cfg.Runs <= 0 {
		return nil, ErrNoRuns
	}
	if e.cfg.SeedStart <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSeed, e.cfg.SeedStart)
	}
	workers := e.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, e.cfg.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < e.cfg.Runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := e.one(e.cfg.SeedStart + int64(i))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.log.Debug("ensemble finished", zap.Int("runs", e.cfg.Runs), zap.Int("workers", workers))
	return results, nil
}

func (e *Ensemble) one(seed int64) (Result, error) {
	start := time.Now()
	gen, err := generator.New(e.cfg.Width, e.cfg.Height, &generator.Options{
		Seed:   seed,
		Logger: e.log,
	})
	if err != nil {
		return Result{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	grid := gen.Generate(e.cfg.Entry, e.cfg.Exit, e.cfg.Perfect)
	path := gen.Solve(e.cfg.Entry, e.cfg.Exit)
	return Result{
		Seed:     seed,
		Stats:    metrics.Analyze(grid, gen.Pattern(), path),
		Duration: time.Since(start),
	}, nil
}

// Summary aggregates one statistic over an ensemble.
type Summary struct {
	Name      string
	Mean, Std float64
	Min, Max  float64
}

// Summarize aggregates every statistic in results, keyed by name.
func Summarize(results []Result) map[string]Summary {
	values := make(map[string][]float64)
	for _, r := range results {
		for k, v := range r.Stats.Map() {
			values[k] = append(values[k], v)
		}
		values["duration_ms"] = append(values["duration_ms"], float64(r.Duration.Microseconds())/1000)
	}

	out := make(map[string]Summary, len(values))
	for k, vs := range values {
		out[k] = summarize(k, vs)
	}
	return out
}

func summarize(name string, vs []float64) Summary {
	s := Summary{Name: name, Min: math.Inf(1), Max: math.Inf(-1)}
	if len(vs) == 0 {
		return Summary{Name: name}
	}
	var sum float64
	for _, v := range vs {
		sum += v
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	s.Mean = sum / float64(len(vs))
	var sq float64
	for _, v := range vs {
		sq += (v - s.Mean) * (v - s.Mean)
	}
	s.Std = math.Sqrt(sq / float64(len(vs)))
	return s
}

// Series extracts one statistic in seed order, for plotting.
func Series(results []Result, name string) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Stats.Map()[name]
	}
	return out
}
