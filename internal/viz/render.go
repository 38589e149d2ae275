package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphs used by mono themes, two columns per block
var glyphs = map[Block]string{
	BlockFloor: "  ",
	BlockWall:  "##",
	BlockPath:  "..",
	BlockEntry: "()",
	BlockExit:  "[]",
	BlockLogo:  "@@",
}

// Renderer paints block layouts with a theme.
type Renderer struct {
	theme  Theme
	blocks map[Block]string
}

func NewRenderer(theme Theme) *Renderer {
	r := &Renderer{theme: theme, blocks: make(map[Block]string, len(glyphs))}
	for b, glyph := range glyphs {
		if theme.Mono {
			r.blocks[b] = glyph
			continue
		}
		r.blocks[b] = lipgloss.NewStyle().Background(theme.color(b)).Render("  ")
	}
	return r
}

func (r *Renderer) Theme() Theme { return r.theme }

// Render draws the maze only.
func (r *Renderer) Render(s Scene) string {
	var sb strings.Builder
	for _, row := range Layout(s) {
		for _, b := range row {
			sb.WriteString(r.blocks[b])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderWithHeader prefixes the maze with its dimensions and seed.
func (r *Renderer) RenderWithHeader(s Scene, seed string) string {
	header := fmt.Sprintf("Dimensions: %dx%d, seed: %s", s.Grid.Width(), s.Grid.Height(), seed)
	return MetricLabel.Render(header) + "\n" + r.Render(s)
}
