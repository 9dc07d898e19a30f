// Package grid provides a dense, generic 2-D container addressed through
// interchangeable coordinate conventions, backed by a single flat row-major
// slice.
//
// What:
//
//   - Grid[T] stores rows×cols cells contiguously; every access resolves to
//     one canonical flat offset.
//   - Five logical origins (UpperLeft, UpperRight, Center, LowerLeft,
//     LowerRight), an invertible y-axis, and independent toroidal wrap on
//     each axis.
//   - Three interchangeable index forms: Offset (flat), Pair ((x,y) array),
//     Coord (named x/y record) — all bijective with the canonical offset.
//   - Directional neighbor lookups (4- and 8-connectivity) honoring wrap and
//     the neighbor direction basis.
//   - Partitioning into divisor×divisor sub-regions ("nrants") with
//     ceiling-sized, possibly ragged edge regions, as used by Sudoku-style
//     puzzles.
//   - Lazy, restartable row, column, region and whole-grid iteration
//     (iter.Seq), in value and pointer form.
//
// Why:
//
//   - Game boards and cellular automata: toroidal neighborhoods, math-style
//     centered coordinates.
//   - Puzzle engines: row/column/region scans with positional correspondence
//     even on ragged regions.
//   - Any caller that wants (x,y) ergonomics on top of cache-friendly flat
//     storage.
//
// Complexity:
//
//   - Index resolution, neighbor lookup, nrant id: O(1).
//   - Construction: O(rows×cols).
//   - Iteration: O(cells yielded).
//
// Errors:
//
//   - ErrIndexOutOfBounds: a coordinate falls outside the grid under the
//     active configuration.
//   - ErrRowSizeMismatch: nested-slice construction with unequal row lengths.
//   - ErrInvalidSize: zero rows/columns, flat-data/shape mismatch, or even
//     dimensions with a Center origin.
//   - ErrExcessiveSize: requested cell count at or above the safety ceiling.
//   - ErrInvalidDivisionSize: nrant divisor outside [1, max(rows, cols)].
//
// Convenience accessors (Get, neighbor getters, iterators) report absence
// with comma-ok results, nil pointers, or empty sequences rather than
// errors: out-of-bounds is an expected condition in geometric queries.
// Grid[T] is not safe for concurrent mutation; synchronize externally.
package grid
