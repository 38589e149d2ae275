package maze

// Cell is the wall mask of one cell.
type Cell uint8

// Closed is the mask of a cell with all four walls present. Renderers treat
// it as a solid block.
const Closed Cell = Cell(North | East | South | West)

// Has reports whether the wall for d is present.
func (c Cell) Has(d Direction) bool {
	return c&Cell(d) != 0
}

// Openings counts the absent walls.
func (c Cell) Openings() int {
	n := 0
	for _, d := range SearchOrder {
		if !c.Has(d) {
			n++
		}
	}
	return n
}

// Grid is a height x width array of wall masks stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a fully walled grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.Fill()
	return g, nil
}

// FromCells builds a grid from rows of masks, as read back from a file. All
// rows must have the same, positive length.
func FromCells(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidSize
	}
	g := &Grid{width: len(rows[0]), height: len(rows)}
	g.cells = make([]Cell, 0, g.width*g.height)
	for _, row := range rows {
		if len(row) != g.width {
			return nil, ErrInvalidSize
		}
		for _, c := range row {
			g.cells = append(g.cells, c&Closed)
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// OnBoundary reports whether c is on the outer ring of cells.
func (g *Grid) OnBoundary(c Coord) bool {
	return c.X == 0 || c.Y == 0 || c.X == g.width-1 || c.Y == g.height-1
}

func (g *Grid) index(op string, c Coord) int {
	if !g.Contains(c) {
		panic(&GeometryError{Op: op, A: c, Wrapped: ErrOutOfBounds})
	}
	return c.Y*g.width + c.X
}

// At returns the mask of c. It panics if c is out of bounds.
func (g *Grid) At(c Coord) Cell {
	return g.cells[g.index("at", c)]
}

// Set overwrites the mask of c. Callers that set walls directly are
// responsible for keeping neighbours consistent; only the decorative
// pattern uses it, and only to restore Closed.
func (g *Grid) Set(c Coord, v Cell) {
	g.cells[g.index("set", c)] = v & Closed
}

// Fill resets every cell to Closed.
func (g *Grid) Fill() {
	for i := range g.cells {
		g.cells[i] = Closed
	}
}

// HasWall reports whether c has its wall in direction d.
func (g *Grid) HasWall(c Coord, d Direction) bool {
	return g.At(c).Has(d)
}

// CanMove reports whether a step from c in direction d stays inside the grid
// and crosses no wall.
func (g *Grid) CanMove(c Coord, d Direction) bool {
	next := c.Step(d)
	return g.Contains(next) && !g.HasWall(c, d)
}

// Carve removes the wall shared by a and b on both sides. It panics if
// either cell is out of bounds or the two are not 4-neighbours.
func (g *Grid) Carve(a, b Coord) {
	d, ok := a.DirectionTo(b)
	if !ok {
		panic(&GeometryError{Op: "carve", A: a, B: b, Wrapped: ErrNotAdjacent})
	}
	ia, ib := g.index("carve", a), g.index("carve", b)
	g.cells[ia] &^= Cell(d)
	g.cells[ib] &^= Cell(d.Opposite())
}

// Edges counts open walls between pairs of cells inside the grid.
func (g *Grid) Edges() int {
	n := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{X: x, Y: y}
			if x+1 < g.width && !g.HasWall(c, East) {
				n++
			}
			if y+1 < g.height && !g.HasWall(c, South) {
				n++
			}
		}
	}
	return n
}

// Consistent reports whether every shared wall is present on both sides or
// absent on both sides.
func (g *Grid) Consistent() bool {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{X: x, Y: y}
			for _, d := range []Direction{East, South} {
				n := c.Step(d)
				if !g.Contains(n) {
					continue
				}
				if g.HasWall(c, d) != g.HasWall(n, d.Opposite()) {
					return false
				}
			}
		}
	}
	return true
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []Cell {
	start := g.index("row", Coord{X: 0, Y: y})
	row := make([]Cell, g.width)
	copy(row, g.cells[start:start+g.width])
	return row
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and masks.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
