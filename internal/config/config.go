package config

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/amazeing/internal/maze"
	"github.com/san-kum/amazeing/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 20
	DefaultHeight     = 15
	DefaultOutput     = "maze.txt"
	DefaultTheme      = "classic"
	DefaultFrameDelay = 10 * time.Millisecond
)

var (
	ErrMissingKey = errors.New("config: missing key")
	ErrBadLine    = errors.New("config: bad format")
	ErrInvalid    = errors.New("config: invalid value")
)

type Config struct {
	Width          int           `yaml:"width"`
	Height         int           `yaml:"height"`
	Entry          Point         `yaml:"entry"`
	Exit           Point         `yaml:"exit"`
	Perfect        bool          `yaml:"perfect"`
	OutputFile     string        `yaml:"output_file"`
	Seed           string        `yaml:"seed,omitempty"`
	Animate        bool          `yaml:"animate"`
	Theme          string        `yaml:"theme"`
	PatternMinSize int           `yaml:"pattern_min_size"`
	FrameDelay     time.Duration `yaml:"frame_delay"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Entry:          Point{X: 0, Y: 0},
		Exit:           Point{X: DefaultWidth - 1, Y: DefaultHeight - 1},
		Perfect:        true,
		OutputFile:     DefaultOutput,
		Theme:          DefaultTheme,
		PatternMinSize: maze.DefaultPatternMinSize,
		FrameDelay:     DefaultFrameDelay,
	}
}

// Load reads a config file. Files ending in .yaml or .yml are YAML; any
// other file is read as KEY=VALUE lines.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg := DefaultConfig()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, nil
	default:
		return ParseKeyValue(string(data))
	}
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var mandatoryKeys = []string{"WIDTH", "HEIGHT", "ENTRY", "EXIT", "PERFECT", "OUTPUT_FILE"}

// ParseKeyValue reads the plain config format: one KEY=VALUE per line, with
// blank lines and lines starting with # ignored.
func ParseKeyValue(text string) (*Config, error) {
	data := make(map[string]string)
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadLine, n+1, line)
		}
		data[strings.ToUpper(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	for _, key := range mandatoryKeys {
		if _, ok := data[key]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingKey, key)
		}
	}

	cfg := DefaultConfig()
	var err error
	if cfg.Width, err = atoi("WIDTH", data["WIDTH"]); err != nil {
		return nil, err
	}
	if cfg.Height, err = atoi("HEIGHT", data["HEIGHT"]); err != nil {
		return nil, err
	}
	if cfg.Entry, err = ParsePoint(data["ENTRY"]); err != nil {
		return nil, fmt.Errorf("%w: ENTRY: %v", ErrInvalid, err)
	}
	if cfg.Exit, err = ParsePoint(data["EXIT"]); err != nil {
		return nil, fmt.Errorf("%w: EXIT: %v", ErrInvalid, err)
	}
	cfg.Perfect = strings.EqualFold(data["PERFECT"], "true")
	cfg.OutputFile = data["OUTPUT_FILE"]
	cfg.Seed = data["SEED"]

	anim, ok := data["ANIMATION"]
	if !ok {
		anim = data["ANIMATION_WG"]
	}
	cfg.Animate = strings.EqualFold(anim, "true")

	if theme, ok := data["THEME"]; ok {
		cfg.Theme = strings.ToLower(theme)
	}
	if v, ok := data["PATTERN_MIN"]; ok {
		if cfg.PatternMinSize, err = atoi("PATTERN_MIN", v); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func atoi(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, v)
	}
	return n, nil
}

// Validate reports every problem with the config at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: dimensions %dx%d must be greater than 0", ErrInvalid, c.Width, c.Height))
	} else {
		if !c.inBounds(c.Entry) {
			errs = append(errs, fmt.Errorf("%w: entry %v is outside the maze", ErrInvalid, c.Entry))
		}
		if !c.inBounds(c.Exit) {
			errs = append(errs, fmt.Errorf("%w: exit %v is outside the maze", ErrInvalid, c.Exit))
		}
	}
	if c.Entry == c.Exit {
		errs = append(errs, fmt.Errorf("%w: entry and exit are both %v", ErrInvalid, c.Entry))
	}
	if c.OutputFile == "" {
		errs = append(errs, fmt.Errorf("%w: output file is empty", ErrInvalid))
	}
	if !knownTheme(c.Theme) {
		errs = append(errs, fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, viz.ThemeNames()))
	}
	if c.PatternMinSize != 0 && c.PatternMinSize < maze.DefaultPatternMinSize {
		errs = append(errs, fmt.Errorf("%w: pattern minimum %d is below %d", ErrInvalid, c.PatternMinSize, maze.DefaultPatternMinSize))
	}
	if c.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: frame delay %v is negative", ErrInvalid, c.FrameDelay))
	}
	return errors.Join(errs...)
}

func (c *Config) inBounds(p Point) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}

func knownTheme(name string) bool {
	for _, t := range viz.ThemeNames() {
		if t == name {
			return true
		}
	}
	return false
}

// SeedValue turns the configured seed into a random source seed. Integer
// seeds are used as is, other strings are hashed. With no seed configured a
// fresh one is drawn from the clock; ok is false in that case.
func (c *Config) SeedValue() (seed int64, ok bool) {
	return ParseSeed(c.Seed)
}

func ParseSeed(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().UnixNano(), false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n != 0 {
		return n, true
	}
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64() >> 1), true
}

func (c *Config) EntryCoord() maze.Coord { return maze.Coord(c.Entry) }
func (c *Config) ExitCoord() maze.Coord  { return maze.Coord(c.Exit) }
