// Package tui draws mazes in the terminal: a bubbletea session with a menu,
// and a plain frame player for scripted animation.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/amazeing/internal/config"
	"github.com/san-kum/amazeing/internal/generator"
	"github.com/san-kum/amazeing/internal/maze"
	"github.com/san-kum/amazeing/internal/solver"
	"github.com/san-kum/amazeing/internal/storage"
	"github.com/san-kum/amazeing/internal/viz"
)

// SaveFunc persists a finished maze.
type SaveFunc func(snap *storage.Snapshot) error

// Options configures a session beyond its config.
type Options struct {
	Logger *zap.Logger
	// Save is called after every generation and on the save key. nil
	// writes cfg.OutputFile.
	Save SaveFunc
	// NextSeed draws the seed for a regeneration when none is configured.
	NextSeed func() int64
}

type phase int

const (
	phaseIdle phase = iota
	phaseGenerating
	phaseRevealing
)

type tickMsg struct{ id int }

// Model is the interactive maze session.
type Model struct {
	cfg      *config.Config
	gen      *generator.Generator
	renderer *viz.Renderer
	log      *zap.Logger
	save     SaveFunc
	nextSeed func() int64

	keys keyMap
	help help.Model

	entry, exit maze.Coord
	seedLabel   string
	fixedSeed   bool

	phase    phase
	cursor   *generator.Cursor
	tickID   int
	frame    int
	path     []maze.Coord
	shown    int
	showPath bool
	status   string
	err      error
}

// New builds a session from a validated config.
func New(cfg *config.Config, opts Options) (Model, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	seed, fixed := cfg.SeedValue()
	gen, err := generator.New(cfg.Width, cfg.Height, &generator.Options{
		Seed:           seed,
		PatternMinSize: cfg.PatternMinSize,
		Logger:         log,
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:       cfg,
		gen:       gen,
		renderer:  viz.NewRenderer(viz.GetTheme(cfg.Theme)),
		log:       log,
		save:      opts.Save,
		nextSeed:  opts.NextSeed,
		keys:      defaultKeys(),
		help:      help.New(),
		entry:     cfg.EntryCoord(),
		exit:      cfg.ExitCoord(),
		fixedSeed: fixed,
		showPath:  true,
	}
	if m.save == nil {
		m.save = func(snap *storage.Snapshot) error {
			return storage.SaveFile(cfg.OutputFile, snap)
		}
	}
	if m.nextSeed == nil {
		m.nextSeed = func() int64 { return time.Now().UnixNano() }
	}
	m.seedLabel = seedLabel(cfg.Seed, gen.Seed())
	return m.start(), nil
}

func seedLabel(configured string, seed int64) string {
	if configured != "" {
		return configured
	}
	return strconv.FormatInt(seed, 10)
}

// start begins a generation. With animation off the maze is finished
// immediately.
func (m Model) start() Model {
	m.path = nil
	m.shown = 0
	m.err = nil
	if m.cfg.Animate {
		m.cursor = m.gen.Start(m.entry, m.exit, m.cfg.Perfect)
		m.phase = phaseGenerating
		m.status = "generating"
		return m
	}
	m.gen.Generate(m.entry, m.exit, m.cfg.Perfect)
	return m.finish()
}

func (m Model) finish() Model {
	m.cursor = nil
	m.path = m.gen.Solve(m.entry, m.exit)
	m = m.persist()
	if m.cfg.Animate && m.showPath {
		m.phase = phaseRevealing
		m.shown = 0
	} else {
		m.phase = phaseIdle
		m.shown = len(m.path)
	}
	return m
}

func (m Model) persist() Model {
	snap := &storage.Snapshot{
		Grid:  m.gen.Grid(),
		Entry: m.entry,
		Exit:  m.exit,
		Path:  solver.CardinalString(m.path),
	}
	if err := m.save(snap); err != nil {
		m.err = err
		m.status = "save failed"
		m.log.Error("save maze", zap.Error(err))
		return m
	}
	m.status = "saved to " + m.cfg.OutputFile
	m.log.Info("maze saved",
		zap.String("file", m.cfg.OutputFile),
		zap.String("seed", m.seedLabel),
		zap.Int("path_length", len(m.path)))
	return m
}

func (m Model) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.cfg.FrameDelay, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

// Init starts the animation clock when a run is in progress.
func (m Model) Init() tea.Cmd {
	if m.phase == phaseIdle {
		return nil
	}
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		return m.advance()
	}
	return m, nil
}

// advance moves the animation one frame: one carve while generating, one
// more path cell while revealing.
func (m Model) advance() (Model, tea.Cmd) {
	m.frame++
	switch m.phase {
	case phaseGenerating:
		st := m.cursor.Step()
		for st == generator.Backtracked {
			st = m.cursor.Step()
		}
		if st == generator.Done {
			m = m.finish()
		}
	case phaseRevealing:
		m.shown++
		if m.shown >= len(m.path) {
			m.shown = len(m.path)
			m.phase = phaseIdle
		}
	}
	if m.phase == phaseIdle {
		return m, nil
	}
	return m, m.tick()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Regenerate):
		return m.regenerate()
	case key.Matches(msg, m.keys.TogglePath):
		m.showPath = !m.showPath
		if m.phase == phaseRevealing {
			m.phase = phaseIdle
			m.shown = len(m.path)
		}
	case key.Matches(msg, m.keys.Theme):
		m.renderer = viz.NewRenderer(viz.NextTheme(m.renderer.Theme().Name))
		m.status = "theme " + m.renderer.Theme().Name
	case key.Matches(msg, m.keys.Save):
		if m.phase != phaseGenerating {
			m = m.persist()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) regenerate() (Model, tea.Cmd) {
	if !m.fixedSeed {
		m.gen.Reseed(m.nextSeed())
		m.seedLabel = seedLabel("", m.gen.Seed())
	} else {
		m.gen.Reseed(m.gen.Seed())
	}
	m.tickID++
	m = m.start()
	if m.phase == phaseIdle {
		return m, nil
	}
	return m, m.tick()
}

// Grid returns the maze as currently shown.
func (m Model) Grid() *maze.Grid { return m.gen.Grid() }

// Path returns the solution of the last finished maze.
func (m Model) Path() []maze.Coord { return m.path }

// Seed returns the seed label shown in the header.
func (m Model) Seed() string { return m.seedLabel }

func (m Model) scene() viz.Scene {
	s := viz.Scene{Grid: m.gen.Grid(), Entry: m.entry, Exit: m.exit}
	if m.showPath && m.phase != phaseGenerating && m.shown > 0 {
		s.Path = m.path[:m.shown]
	}
	return s
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(viz.GradientText("A-Maze-ing", viz.ColorPrimary, viz.ColorSecondary))
	b.WriteString("\n\n")
	b.WriteString(m.renderer.RenderWithHeader(m.scene(), m.seedLabel))
	// two terminal columns per layout block
	b.WriteString(viz.Separator(2 * (2*m.gen.Width() + 1)))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(viz.StatusError.Render(fmt.Sprintf("%s: %v", m.status, m.err)))
	case m.phase == phaseGenerating:
		b.WriteString(viz.StatusRunning.Render(fmt.Sprintf("%s %s depth %d",
			viz.Spinner(m.frame), m.status, m.cursor.Depth())))
	case m.phase == phaseRevealing:
		total := max(len(m.path), 1)
		b.WriteString(viz.ProgressBar(float64(m.shown)/float64(total), 30))
	default:
		b.WriteString(viz.Subtle.Render(fmt.Sprintf("%s | path %d cells | theme ", m.status, len(m.path))))
		b.WriteString(viz.Selected.Render(m.renderer.Theme().Name))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
