// Package export writes mazes to vector formats.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/amazeing/internal/viz"
)

// Palette holds SVG fill colors per block kind.
type Palette struct {
	Background string
	Wall       string
	Path       string
	Entry      string
	Exit       string
	Logo       string
}

// DefaultPalette mirrors the classic terminal theme.
var DefaultPalette = Palette{
	Background: "#ffffff",
	Wall:       "#aa00aa",
	Path:       "#00aa00",
	Entry:      "#0000ff",
	Exit:       "#aa0000",
	Logo:       "#8700ff",
}

func (p Palette) fill(b viz.Block) string {
	switch b {
	case viz.BlockWall:
		return p.Wall
	case viz.BlockPath:
		return p.Path
	case viz.BlockEntry:
		return p.Entry
	case viz.BlockExit:
		return p.Exit
	case viz.BlockLogo:
		return p.Logo
	}
	return ""
}

// MazeToSVG draws the scene's block layout, each block a square of the
// given size. Floor blocks are left to the background.
func MazeToSVG(s viz.Scene, p Palette, blockSize int) string {
	if s.Grid == nil {
		return ""
	}
	if blockSize < 1 {
		blockSize = 1
	}
	blocks := viz.Layout(s)
	width := len(blocks[0]) * blockSize
	height := len(blocks) * blockSize

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, p.Background)

	for y, row := range blocks {
		// runs of equal blocks share one rect
		for x := 0; x < len(row); {
			b := row[x]
			end := x + 1
			for end < len(row) && row[end] == b {
				end++
			}
			if fill := p.fill(b); fill != "" {
				fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x*blockSize, y*blockSize, (end-x)*blockSize, blockSize, fill)
			}
			x = end
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG, one circle per dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#aa00aa">
`, width, height, width, height)

	radius := scale * 0.4
	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, radius)
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteFile writes svg to path.
func WriteFile(path, svg string) error {
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
