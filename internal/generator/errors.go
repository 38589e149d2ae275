package generator

import "errors"

var (
	// ErrCursorStale indicates a cursor used after its generator started a
	// newer run.
	ErrCursorStale = errors.New("generator: cursor belongs to an earlier run")

	// ErrCursorConsumed indicates a second iteration over a single-use step
	// sequence.
	ErrCursorConsumed = errors.New("generator: step sequence already consumed")
)
