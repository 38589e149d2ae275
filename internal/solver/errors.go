package solver

import "errors"

var (
	// ErrEmptyPath indicates no path was given where one was expected.
	ErrEmptyPath = errors.New("solver: empty path")

	// ErrBrokenPath indicates a path that leaves the grid, crosses a wall or
	// does not join the expected endpoints.
	ErrBrokenPath = errors.New("solver: path is not connected")
)
