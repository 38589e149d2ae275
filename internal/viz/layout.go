package viz

import "github.com/san-kum/amazeing/internal/maze"

// Block is what one layout position shows.
type Block uint8

const (
	BlockFloor Block = iota
	BlockWall
	BlockPath
	BlockEntry
	BlockExit
	BlockLogo
)

// Scene is the input of every renderer.
type Scene struct {
	Grid  *maze.Grid
	Entry maze.Coord
	Exit  maze.Coord
	// Path is the solution to highlight; nil hides it.
	Path []maze.Coord
}

// Layout expands a scene into its block matrix, indexed [row][col]. Cells
// with every wall present are drawn as logo blocks.
func Layout(s Scene) [][]Block {
	g := s.Grid
	w, h := g.Width(), g.Height()

	onPath := make(map[maze.Coord]bool, len(s.Path)+2)
	if len(s.Path) > 0 {
		for _, c := range s.Path {
			onPath[c] = true
		}
		onPath[s.Entry] = true
		onPath[s.Exit] = true
	}

	out := make([][]Block, 2*h+1)
	for r := range out {
		out[r] = make([]Block, 2*w+1)
	}
	for col := range out[0] {
		out[0][col] = BlockWall
	}

	for y := 0; y < h; y++ {
		body, bottom := out[1+2*y], out[2+2*y]
		body[0], bottom[0] = BlockWall, BlockWall

		for x := 0; x < w; x++ {
			c := maze.Coord{X: x, Y: y}
			cell := g.At(c)
			solid := cell == maze.Closed

			switch {
			case c == s.Entry:
				body[1+2*x] = BlockEntry
			case c == s.Exit:
				body[1+2*x] = BlockExit
			case onPath[c]:
				body[1+2*x] = BlockPath
			case solid:
				body[1+2*x] = BlockLogo
			default:
				body[1+2*x] = BlockFloor
			}

			body[2+2*x] = wallBlock(cell.Has(maze.East), solid, onPath[c] && onPath[c.Step(maze.East)])
			bottom[1+2*x] = wallBlock(cell.Has(maze.South), solid, onPath[c] && onPath[c.Step(maze.South)])
			if solid {
				bottom[2+2*x] = BlockLogo
			} else {
				bottom[2+2*x] = BlockWall
			}
		}
	}
	return out
}

func wallBlock(present, solid, pathEdge bool) Block {
	switch {
	case present && solid:
		return BlockLogo
	case present:
		return BlockWall
	case pathEdge:
		return BlockPath
	}
	return BlockFloor
}
