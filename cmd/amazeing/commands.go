package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/amazeing/internal/bench"
	"github.com/san-kum/amazeing/internal/config"
	"github.com/san-kum/amazeing/internal/export"
	"github.com/san-kum/amazeing/internal/generator"
	"github.com/san-kum/amazeing/internal/maze"
	"github.com/san-kum/amazeing/internal/metrics"
	"github.com/san-kum/amazeing/internal/solver"
	"github.com/san-kum/amazeing/internal/storage"
	"github.com/san-kum/amazeing/internal/tui"
	"github.com/san-kum/amazeing/internal/viz"
	"github.com/san-kum/amazeing/internal/watch"
)

var (
	writeBack bool

	benchRuns    int
	benchSeed    int64
	benchWidth   int
	benchHeight  int
	benchPerfect bool
	benchWorkers int

	svgBlock   int
	svgPath    bool
	svgMiniMap bool
)

// loadConfig resolves the config for a generate-like command: preset, then
// file argument, then defaults, with flags applied last.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	case len(args) > 0:
		c, err := config.Load(args[0])
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if cmd.Flags().Changed("animate") {
		cfg.Animate = animate
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if interactive {
		return runInteractive(cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = generateOnce(ctx, cfg)
	return err
}

type outcome struct {
	snap  *storage.Snapshot
	seed  int64
	stats metrics.Stats
}

// generateOnce generates, solves, saves and prints one maze.
func generateOnce(ctx context.Context, cfg *config.Config) (*outcome, error) {
	seed, _ := cfg.SeedValue()
	label := cfg.Seed
	if label == "" {
		label = strconv.FormatInt(seed, 10)
	}
	gen, err := generator.New(cfg.Width, cfg.Height, &generator.Options{
		Seed:           seed,
		PatternMinSize: cfg.PatternMinSize,
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}

	entry, exit := cfg.EntryCoord(), cfg.ExitCoord()
	renderer := viz.NewRenderer(viz.GetTheme(cfg.Theme))

	var path []maze.Coord
	if cfg.Animate {
		player := tui.NewPlayer(os.Stdout, renderer, cfg.FrameDelay, label)
		grid, err := player.Generate(ctx, gen, entry, exit, cfg.Perfect)
		if err != nil {
			return nil, err
		}
		if path, err = player.Reveal(ctx, grid, entry, exit); err != nil {
			return nil, err
		}
	} else {
		gen.Generate(entry, exit, cfg.Perfect)
		path = gen.Solve(entry, exit)
	}

	snap := &storage.Snapshot{
		Grid:  gen.Grid(),
		Entry: entry,
		Exit:  exit,
		Path:  solver.CardinalString(path),
	}
	fmt.Printf("Saving to %s...\n", cfg.OutputFile)
	if err := storage.SaveFile(cfg.OutputFile, snap); err != nil {
		return nil, err
	}
	fmt.Print(renderer.RenderWithHeader(viz.Scene{Grid: snap.Grid, Entry: entry, Exit: exit, Path: path}, label))

	out := &outcome{snap: snap, seed: seed, stats: metrics.Analyze(snap.Grid, gen.Pattern(), path)}
	logger.Info("maze generated",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int64("seed", seed),
		zap.Int("path_length", len(path)),
		zap.Int("loops", out.stats.Loops))

	if record {
		runID, err := recordRun(out, cfg.Perfect)
		if err != nil {
			return nil, err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return out, nil
}

func recordRun(o *outcome, perfect bool) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	defer st.Close()
	return st.Save(o.seed, perfect, o.snap, o.stats.Map())
}

func runInteractive(cfg *config.Config) error {
	log := zap.NewNop()
	if verbose {
		log = logger
	}
	m, err := tui.New(cfg, tui.Options{Logger: log})
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func runSolve(cmd *cobra.Command, args []string) error {
	snap, err := storage.LoadFile(args[0])
	if err != nil {
		return err
	}
	path := solver.Solve(snap.Grid, snap.Entry, snap.Exit)
	if path == nil {
		return fmt.Errorf("no path from %s to %s", snap.Entry, snap.Exit)
	}
	computed := solver.CardinalString(path)

	renderer := viz.NewRenderer(viz.GetTheme(config.DefaultTheme))
	fmt.Print(renderer.Render(viz.Scene{Grid: snap.Grid, Entry: snap.Entry, Exit: snap.Exit, Path: path}))
	fmt.Printf("shortest path: %d moves\n%s\n", len(path)-1, computed)

	if snap.Path != "" {
		stored, err := solver.FollowCardinal(snap.Entry, snap.Path)
		if err == nil {
			err = solver.Verify(snap.Grid, stored, snap.Entry, snap.Exit)
		}
		switch {
		case err != nil:
			fmt.Println(viz.StatusError.Render("stored path invalid: " + err.Error()))
		case len(stored) != len(path):
			fmt.Println(viz.StatusError.Render(fmt.Sprintf("stored path is %d moves, shortest is %d", len(stored)-1, len(path)-1)))
		default:
			fmt.Println(viz.StatusRunning.Render("stored path ok"))
		}
	}

	if writeBack {
		snap.Path = computed
		return storage.SaveFile(args[0], snap)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	snap, err := storage.LoadFile(args[0])
	if err != nil {
		return err
	}
	path := solver.Solve(snap.Grid, snap.Entry, snap.Exit)
	stats := metrics.Analyze(snap.Grid, nil, path)

	fmt.Println(viz.MetricsPanel(args[0], stats.Map()))
	if stats.Perfect() {
		fmt.Println(viz.StatusRunning.Render("perfect"))
	} else {
		fmt.Println(viz.Subtle.Render(fmt.Sprintf("%d loops", stats.Loops)))
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg := bench.Config{
		Width:     benchWidth,
		Height:    benchHeight,
		Entry:     maze.Coord{X: 0, Y: 0},
		Exit:      maze.Coord{X: benchWidth - 1, Y: benchHeight - 1},
		Perfect:   benchPerfect,
		Runs:      benchRuns,
		SeedStart: benchSeed,
		Workers:   benchWorkers,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("generating %d mazes of %dx%d...\n", benchRuns, benchWidth, benchHeight)
	results, err := bench.NewEnsemble(cfg, logger).Run(ctx)
	if err != nil {
		return err
	}

	summary := bench.Summarize(results)
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMEAN\tSTD\tMIN\tMAX")
	for _, name := range names {
		s := summary[name]
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.0f\t%.0f\n", name, s.Mean, s.Std, s.Min, s.Max)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	series := bench.Series(results, "solution_length")
	if len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("solution length, seeds %d..%d", benchSeed, benchSeed+int64(benchRuns)-1)),
		))
	}
	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	snap, err := storage.LoadFile(args[0])
	if err != nil {
		return err
	}
	scene := viz.Scene{Grid: snap.Grid, Entry: snap.Entry, Exit: snap.Exit}
	if svgPath {
		scene.Path = solver.Solve(snap.Grid, snap.Entry, snap.Exit)
	}

	var svg string
	if svgMiniMap {
		svg = export.CanvasToSVG(viz.MiniMap(scene), float64(svgBlock))
	} else {
		svg = export.MazeToSVG(scene, export.DefaultPalette, svgBlock)
	}
	if err := export.WriteFile(args[1], svg); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", args[1])
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tSEED\tPERFECT\tPATH\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%v\t%d\t%s\n",
			r.ID[:8], r.Width, r.Height, r.Seed, r.Perfect, len(r.Path),
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	snap, err := st.LoadMaze(args[0])
	if err != nil {
		return err
	}
	path, err := solver.FollowCardinal(snap.Entry, snap.Path)
	if err != nil {
		return err
	}

	name := theme
	if name == "" {
		name = config.DefaultTheme
	}
	renderer := viz.NewRenderer(viz.GetTheme(name))
	fmt.Print(renderer.RenderWithHeader(viz.Scene{Grid: snap.Grid, Entry: snap.Entry, Exit: snap.Exit, Path: path},
		strconv.FormatInt(meta.Seed, 10)))

	if len(meta.Metrics) > 0 {
		fmt.Println(viz.MetricsPanel("run "+meta.ID, meta.Metrics))
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	fmt.Println(viz.Title.Render("presets"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tENTRY\tEXIT\tPERFECT\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\t%v\t%s\n", name, p.Width, p.Height, p.Entry, p.Exit, p.Perfect, p.Theme)
	}
	return w.Flush()
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	regenerate := func() {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			fmt.Println(viz.StatusError.Render(err.Error()))
			return
		}
		if _, err := generateOnce(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Println(viz.StatusError.Render(err.Error()))
		}
	}
	regenerate()

	w, err := watch.New(args[0], watch.DefaultDebounce, logger)
	if err != nil {
		return err
	}
	fmt.Println(viz.Subtle.Render("watching "+w.Path()) + " " + viz.KeyHint.Render("ctrl+c to stop"))
	return w.Run(ctx, func(string) { regenerate() })
}
