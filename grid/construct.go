// Package grid: construction entry points. Each validates its input shape
// in one pass and copies values into fresh flat storage; the Grid never
// aliases caller-owned slices.
package grid

// MaxCells is the safety ceiling on the total cell count. Requests at or
// above it (or overflowing rows*cols) fail with ErrExcessiveSize before
// any allocation.
const MaxCells = 1<<31 - 1

// New builds a grid from a rectangular nested slice of rows.
// Returns ErrInvalidSize for an empty outer or inner slice,
// ErrRowSizeMismatch when any row length differs from the first,
// ErrExcessiveSize above the ceiling.
// Complexity: O(rows×cols) time and memory.
func New[T any](values [][]T, opts Options) (*Grid[T], error) {
	rows := len(values)
	if rows == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidSize
	}
	cols := len(values[0])
	total, err := checkedSize(cols, rows)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, total)
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrRowSizeMismatch
		}
		items = append(items, row...)
	}

	return newGrid(items, cols, rows, opts)
}

// FromFlat builds a grid from an existing row-major slice and an explicit
// shape. The slice is copied. Returns ErrInvalidSize when len(items) does
// not equal cols*rows.
// Complexity: O(rows×cols).
func FromFlat[T any](items []T, cols, rows int, opts Options) (*Grid[T], error) {
	if cols < 1 || rows < 1 {
		return nil, ErrInvalidSize
	}
	total, err := checkedSize(cols, rows)
	if err != nil {
		return nil, err
	}
	if len(items) != total {
		return nil, ErrInvalidSize
	}

	owned := make([]T, total)
	copy(owned, items)

	return newGrid(owned, cols, rows, opts)
}

// Repeat builds a grid by replicating one row pattern across rows rows.
// Returns ErrInvalidSize for an empty pattern or a non-positive row count.
// Complexity: O(rows×len(pattern)).
func Repeat[T any](pattern []T, rows int, opts Options) (*Grid[T], error) {
	cols := len(pattern)
	if cols == 0 || rows < 1 {
		return nil, ErrInvalidSize
	}
	total, err := checkedSize(cols, rows)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, total)
	for r := 0; r < rows; r++ {
		items = append(items, pattern...)
	}

	return newGrid(items, cols, rows, opts)
}

// Filled builds a cols×rows grid with every cell set to fill.
// Complexity: O(rows×cols).
func Filled[T any](cols, rows int, fill T, opts Options) (*Grid[T], error) {
	if cols < 1 || rows < 1 {
		return nil, ErrInvalidSize
	}
	total, err := checkedSize(cols, rows)
	if err != nil {
		return nil, err
	}

	items := make([]T, total)
	for i := range items {
		items[i] = fill
	}

	return newGrid(items, cols, rows, opts)
}

// newGrid finalizes construction: options-dependent shape rules run here
// so every entry point enforces them identically.
func newGrid[T any](items []T, cols, rows int, opts Options) (*Grid[T], error) {
	if opts.Origin == Center && (rows%2 == 0 || cols%2 == 0) {
		// The center cell must map to the exact middle offset.
		return nil, ErrInvalidSize
	}

	return &Grid[T]{items: items, rows: rows, cols: cols, opts: opts}, nil
}

// checkedSize multiplies the dimensions with overflow and ceiling checks.
func checkedSize(cols, rows int) (int, error) {
	if cols >= MaxCells || rows >= MaxCells {
		return 0, ErrExcessiveSize
	}
	total := cols * rows
	if total/cols != rows || total >= MaxCells {
		return 0, ErrExcessiveSize
	}

	return total, nil
}
