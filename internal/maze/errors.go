package maze

import "errors"

// Domain errors for grid operations.
var (
	// ErrInvalidSize indicates a grid dimension that is not positive.
	ErrInvalidSize = errors.New("maze: width and height must be positive")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")

	// ErrNotAdjacent indicates two cells that are not 4-neighbours.
	ErrNotAdjacent = errors.New("maze: cells are not adjacent")
)

// GeometryError describes a contract violation on grid geometry. It is the
// value passed to panic by operations that must fail fast.
type GeometryError struct {
	Op      string
	A, B    Coord
	Wrapped error
}

func (e *GeometryError) Error() string {
	if e.Op == "carve" {
		return e.Op + " " + e.A.String() + " -> " + e.B.String() + ": " + e.Wrapped.Error()
	}
	return e.Op + " " + e.A.String() + ": " + e.Wrapped.Error()
}

func (e *GeometryError) Unwrap() error {
	return e.Wrapped
}
