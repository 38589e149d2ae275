package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"tiny": {
		Width: 5, Height: 5, Entry: Point{0, 0}, Exit: Point{4, 4},
		Perfect: true, OutputFile: DefaultOutput, Theme: "classic",
		PatternMinSize: 9, FrameDelay: 40 * time.Millisecond,
	},
	"classic": {
		Width: 20, Height: 15, Entry: Point{0, 0}, Exit: Point{19, 14},
		Perfect: true, OutputFile: DefaultOutput, Theme: "classic",
		PatternMinSize: 9, FrameDelay: DefaultFrameDelay,
	},
	"large": {
		Width: 60, Height: 30, Entry: Point{0, 0}, Exit: Point{59, 29},
		Perfect: true, OutputFile: DefaultOutput, Theme: "rotated",
		PatternMinSize: 9, FrameDelay: 2 * time.Millisecond,
	},
	"braided": {
		Width: 25, Height: 25, Entry: Point{0, 12}, Exit: Point{24, 12},
		Perfect: false, OutputFile: DefaultOutput, Theme: "classic",
		PatternMinSize: 16, FrameDelay: DefaultFrameDelay,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
