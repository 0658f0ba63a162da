package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDigitRange indicates a cell value outside 0..9.
	ErrDigitRange = errors.New("grid: cell value must be a single digit 0..9")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
