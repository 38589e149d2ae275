package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	dataDir     string
	verbose     bool
	preset      string
	seedFlag    string
	animate     bool
	theme       string
	interactive bool
	record      bool

	logger = zap.NewNop()
)

// main registers the commands and runs the root command. With no
// subcommand a maze is generated from the config file argument.
func main() {
	rootCmd := &cobra.Command{
		Use:   "amazeing [config]",
		Short: "maze generator and solver",
		Long: `Generate a maze from a config file, solve it, draw it and save it.

The config file is either KEY=VALUE lines (WIDTH, HEIGHT, ENTRY, EXIT,
OUTPUT_FILE, PERFECT, SEED, ANIMATION, THEME, PATTERN_MIN) or YAML when
its name ends in .yaml or .yml.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE:         runGenerate,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".amazeing", "run store directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addGenerateFlags(rootCmd)

	generateCmd := &cobra.Command{
		Use:     "generate [config]",
		Aliases: []string{"run"},
		Short:   "generate, solve, draw and save a maze",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runGenerate,
	}
	addGenerateFlags(generateCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui [config]",
		Short: "interactive session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive = true
			return runGenerate(cmd, args)
		},
	}
	addGenerateFlags(tuiCmd)

	solveCmd := &cobra.Command{
		Use:   "solve [maze-file]",
		Short: "solve a saved maze and check its stored path",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().BoolVar(&writeBack, "write", false, "rewrite the file with the computed path")

	statsCmd := &cobra.Command{
		Use:   "stats [maze-file]",
		Short: "maze statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "generate many mazes in parallel and summarise them",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchRuns, "runs", 50, "number of mazes")
	benchCmd.Flags().Int64Var(&benchSeed, "seed-start", 1, "first seed, must be positive")
	benchCmd.Flags().IntVar(&benchWidth, "width", 20, "maze width")
	benchCmd.Flags().IntVar(&benchHeight, "height", 15, "maze height")
	benchCmd.Flags().BoolVar(&benchPerfect, "perfect", true, "perfect mazes")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")

	exportCmd := &cobra.Command{
		Use:   "export-svg [maze-file] [output.svg]",
		Short: "export a saved maze to SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  runExportSVG,
	}
	exportCmd.Flags().IntVar(&svgBlock, "block", 12, "block size in pixels")
	exportCmd.Flags().BoolVar(&svgPath, "path", true, "draw the solution")
	exportCmd.Flags().BoolVar(&svgMiniMap, "minimap", false, "dot style instead of blocks")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "draw a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built in configurations",
		Args:  cobra.NoArgs,
		RunE:  runPresets,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [config]",
		Short: "regenerate whenever the config file changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	addGenerateFlags(watchCmd)

	rootCmd.AddCommand(generateCmd, tuiCmd, solveCmd, statsCmd, benchCmd, exportCmd, listCmd, showCmd, presetsCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "start from a preset instead of a config file")
	cmd.Flags().StringVar(&seedFlag, "seed", "", "seed (overrides the config)")
	cmd.Flags().BoolVar(&animate, "animate", false, "animate generation and solution")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme: classic, rotated, mono")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the interactive session afterwards")
	cmd.Flags().BoolVar(&record, "record", false, "also record the run in the store")
}
