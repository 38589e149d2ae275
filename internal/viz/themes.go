package viz

import "github.com/charmbracelet/lipgloss"

// Theme maps each block kind to a background color. A theme without colors
// draws glyphs instead.
type Theme struct {
	Name  string
	Wall  lipgloss.Color
	Floor lipgloss.Color
	Path  lipgloss.Color
	Entry lipgloss.Color
	Exit  lipgloss.Color
	Logo  lipgloss.Color
	Mono  bool
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:  "classic",
		Wall:  lipgloss.Color("5"),  // Magenta
		Floor: lipgloss.Color("15"), // White
		Path:  lipgloss.Color("2"),  // Green
		Entry: lipgloss.Color("12"), // Blue
		Exit:  lipgloss.Color("1"),  // Red
		Logo:  lipgloss.Color("93"), // Purple
	}

	ThemeRotated = Theme{
		Name:  "rotated",
		Wall:  lipgloss.Color("0"),
		Floor: lipgloss.Color("8"),
		Path:  lipgloss.Color("2"),
		Entry: lipgloss.Color("12"),
		Exit:  lipgloss.Color("3"),
		Logo:  lipgloss.Color("1"),
	}

	ThemeMono = Theme{
		Name: "mono",
		Mono: true,
	}

	// All available themes, in cycling order
	Themes = []Theme{
		ThemeClassic,
		ThemeRotated,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after name in cycling order.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// ThemeNames returns the theme names in cycling order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) color(b Block) lipgloss.Color {
	switch b {
	case BlockWall:
		return t.Wall
	case BlockPath:
		return t.Path
	case BlockEntry:
		return t.Entry
	case BlockExit:
		return t.Exit
	case BlockLogo:
		return t.Logo
	}
	return t.Floor
}
