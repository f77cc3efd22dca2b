package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a start or end coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNonRectangular indicates map rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMissingEndpoint indicates a map without an 'S' or an 'E' cell.
	ErrMissingEndpoint = errors.New("grid: map must contain one start and one end")
	// ErrDuplicateEndpoint indicates a map with more than one 'S' or 'E' cell.
	ErrDuplicateEndpoint = errors.New("grid: map contains more than one start or end")
	// ErrBadCell indicates an unknown map character.
	ErrBadCell = errors.New("grid: unknown cell character")
)
