// Package grid: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w")); tests and callers match them via errors.Is.
package grid

import "errors"

var (
	// ErrIndexOutOfBounds indicates a resolved coordinate, in any
	// representation, falls outside the grid under the active options.
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")

	// ErrRowSizeMismatch indicates nested-slice input rows of differing lengths.
	ErrRowSizeMismatch = errors.New("grid: row size must match other rows")

	// ErrInvalidSize indicates zero rows or columns, a flat slice whose length
	// does not equal rows*cols, or even dimensions with a Center origin.
	ErrInvalidSize = errors.New("grid: invalid grid size")

	// ErrExcessiveSize indicates the requested cell count is at or above the
	// safety ceiling, or overflows during multiplication.
	ErrExcessiveSize = errors.New("grid: resulting grid is too large")

	// ErrInvalidDivisionSize indicates an nrant divisor less than 1 or larger
	// than max(rows, cols).
	ErrInvalidDivisionSize = errors.New("grid: divisor is less than 1 or larger than the grid")
)
