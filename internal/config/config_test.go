package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/amazeing/internal/viz"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.True(t, cfg.Perfect)
	assert.NoError(t, cfg.Validate())
}

const sample = `# maze settings
WIDTH=20
HEIGHT = 15
ENTRY=0,0
EXIT=19,14

OUTPUT_FILE=maze.txt
PERFECT=True
SEED=hello
ANIMATION_WG=true
`

func TestParseKeyValue(t *testing.T) {
	cfg, err := ParseKeyValue(sample)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 15, cfg.Height)
	assert.Equal(t, Point{X: 0, Y: 0}, cfg.Entry)
	assert.Equal(t, Point{X: 19, Y: 14}, cfg.Exit)
	assert.True(t, cfg.Perfect)
	assert.True(t, cfg.Animate)
	assert.Equal(t, "maze.txt", cfg.OutputFile)
	assert.Equal(t, "hello", cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestParseKeyValue_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"missing key", "WIDTH=3\nHEIGHT=3\nENTRY=0,0\nEXIT=2,2\nPERFECT=true\n", ErrMissingKey},
		{"no equals", "WIDTH=3\nHEIGHT 3\n", ErrBadLine},
		{"bad integer", "WIDTH=x\nHEIGHT=3\nENTRY=0,0\nEXIT=2,2\nPERFECT=true\nOUTPUT_FILE=a\n", ErrInvalid},
		{"bad coordinate", "WIDTH=3\nHEIGHT=3\nENTRY=0\nEXIT=2,2\nPERFECT=true\nOUTPUT_FILE=a\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeyValue(tt.text)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"entry outside", func(c *Config) { c.Entry = Point{X: -1, Y: 0} }, false},
		{"exit outside", func(c *Config) { c.Exit = Point{X: c.Width, Y: 0} }, false},
		{"same entry and exit", func(c *Config) { c.Exit = c.Entry }, false},
		{"no output", func(c *Config) { c.OutputFile = "" }, false},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, false},
		{"negative delay", func(c *Config) { c.FrameDelay = -time.Second }, false},
		{"pattern minimum too small", func(c *Config) { c.PatternMinSize = 5 }, false},
		{"pattern minimum unset", func(c *Config) { c.PatternMinSize = 0 }, true},
		{"pattern minimum raised", func(c *Config) { c.PatternMinSize = 16 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalid), "expected ErrInvalid, got %v", err)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Entry = Point{X: 100, Y: 0}
	cfg.OutputFile = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry")
	assert.Contains(t, err.Error(), "output file")
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	content := `width: 12
height: 8
entry: "1,1"
exit: [10, 6]
perfect: false
output_file: out.txt
seed: "1234"
theme: rotated
frame_delay: 25ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 1, Y: 1}, cfg.Entry)
	assert.Equal(t, Point{X: 10, Y: 6}, cfg.Exit)
	assert.False(t, cfg.Perfect)
	assert.Equal(t, "rotated", cfg.Theme)
	assert.Equal(t, 25*time.Millisecond, cfg.FrameDelay)
	assert.NoError(t, cfg.Validate())

	seed, ok := cfg.SeedValue()
	assert.True(t, ok)
	assert.Equal(t, int64(1234), seed)
}

func TestLoad_KeyValueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Width)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yml")
	cfg := GetPreset("braided")
	require.NotNil(t, cfg)
	cfg.Seed = "abc"

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestParseSeed(t *testing.T) {
	a, ok := ParseSeed("maze")
	assert.True(t, ok)
	b, _ := ParseSeed("maze")
	assert.Equal(t, a, b, "string seeds must hash deterministically")

	c, _ := ParseSeed("other")
	assert.NotEqual(t, a, c)

	n, ok := ParseSeed(" 77 ")
	assert.True(t, ok)
	assert.Equal(t, int64(77), n)

	_, ok = ParseSeed("")
	assert.False(t, ok)
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	require.NotEmpty(t, names)
	for _, name := range names {
		cfg := GetPreset(name)
		require.NotNil(t, cfg, name)
		assert.NoError(t, cfg.Validate(), name)
	}

	assert.Nil(t, GetPreset("nonexistent"))

	cfg := GetPreset("tiny")
	cfg.Width = 99
	assert.Equal(t, 5, Presets["tiny"].Width, "GetPreset must return a copy")
}

func TestParseKeyValue_SmallPatternMinimumRejected(t *testing.T) {
	cfg, err := ParseKeyValue("WIDTH=7\nHEIGHT=5\nENTRY=0,4\nEXIT=3,0\nOUTPUT_FILE=m.txt\nPERFECT=true\nPATTERN_MIN=5\n")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.PatternMinSize)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestValidate_AcceptsEveryRendererTheme(t *testing.T) {
	for _, name := range viz.ThemeNames() {
		cfg := DefaultConfig()
		cfg.Theme = name
		assert.NoError(t, cfg.Validate(), "theme %s", name)
	}
}
