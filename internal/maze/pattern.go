package maze

// DefaultPatternMinSize is the smallest width and height that can hold the
// decorative "42" glyph.
const DefaultPatternMinSize = 9

// logoOffsets draws "42" around the grid centre.
var logoOffsets = []Coord{
	// 4
	{-3, -2}, {-3, -1}, {-3, 0},
	{-2, 0},
	{-1, 0}, {-1, 1}, {-1, 2},

	// 2
	{1, -2}, {2, -2}, {3, -2},
	{3, -1},
	{3, 0}, {2, 0}, {1, 0},
	{1, 1},
	{1, 2}, {2, 2}, {3, 2},
}

// LogoCells returns the absolute cells of the glyph centred at
// (width/2, height/2). The result may fall outside grids smaller than
// DefaultPatternMinSize.
func LogoCells(width, height int) []Coord {
	cx, cy := width/2, height/2
	cells := make([]Coord, len(logoOffsets))
	for i, off := range logoOffsets {
		cells[i] = Coord{X: cx + off.X, Y: cy + off.Y}
	}
	return cells
}

// Pattern is a set of cells that stay walled and outside the maze graph.
type Pattern map[Coord]struct{}

// NewPattern builds a set from cells.
func NewPattern(cells ...Coord) Pattern {
	p := make(Pattern, len(cells))
	for _, c := range cells {
		p[c] = struct{}{}
	}
	return p
}

// Contains reports whether c belongs to the pattern. A nil pattern is empty.
func (p Pattern) Contains(c Coord) bool {
	_, ok := p[c]
	return ok
}

// Len returns the number of cells in the pattern.
func (p Pattern) Len() int { return len(p) }
