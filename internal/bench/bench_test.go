package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/san-kum/amazeing/internal/generator"
	"github.com/san-kum/amazeing/internal/maze"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(runs int) Config {
	return Config{
		Width:     10,
		Height:    10,
		Entry:     maze.Coord{X: 0, Y: 0},
		Exit:      maze.Coord{X: 9, Y: 9},
		Perfect:   true,
		Runs:      runs,
		SeedStart: 100,
		Workers:   3,
	}
}

func TestEnsemble_Run(t *testing.T) {
	results, err := NewEnsemble(testConfig(8), nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 8)

	for i, r := range results {
		assert.Equal(t, int64(100+i), r.Seed)
		assert.True(t, r.Stats.Perfect(), "seed %d", r.Seed)
		assert.Equal(t, 1, r.Stats.Components, "seed %d", r.Seed)
		assert.Positive(t, r.Stats.SolutionLength)
	}
}

func TestEnsemble_MatchesSequentialGeneration(t *testing.T) {
	cfg := testConfig(4)
	results, err := NewEnsemble(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	for _, r := range results {
		gen, err := generator.New(cfg.Width, cfg.Height, &generator.Options{Seed: r.Seed})
		require.NoError(t, err)
		gen.Generate(cfg.Entry, cfg.Exit, cfg.Perfect)
		path := gen.Solve(cfg.Entry, cfg.Exit)
		assert.Equal(t, len(path), r.Stats.SolutionLength, "seed %d", r.Seed)
	}
}

func TestEnsemble_NoRuns(t *testing.T) {
	_, err := NewEnsemble(testConfig(0), nil).Run(context.Background())
	assert.ErrorIs(t, err, ErrNoRuns)
}

func TestEnsemble_NonPositiveSeedStart(t *testing.T) {
	for _, seed := range []int64{0, -3} {
		cfg := testConfig(2)
		cfg.SeedStart = seed
		_, err := NewEnsemble(cfg, nil).Run(context.Background())
		assert.ErrorIs(t, err, ErrBadSeed, "seed start %d", seed)
	}
}

func TestEnsemble_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEnsemble(testConfig(5), nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnsemble_InvalidSize(t *testing.T) {
	cfg := testConfig(2)
	cfg.Width = 0
	_, err := NewEnsemble(cfg, nil).Run(context.Background())
	assert.ErrorIs(t, err, maze.ErrInvalidSize)
}

func TestSummarize(t *testing.T) {
	results := []Result{{}, {}}
	results[0].Stats.DeadEnds = 2
	results[1].Stats.DeadEnds = 4

	s := Summarize(results)["dead_ends"]
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 1.0, s.Std)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 4.0, s.Max)

	assert.Equal(t, []float64{2, 4}, Series(results, "dead_ends"))
}
