// Package grid: the Grid container and its direct cell access surface.
package grid

// Grid is a dense 2-D container of T addressed through any Index
// representation. Data lives in one flat row-major slice owned exclusively
// by the Grid; items, rows and cols never change after construction
// (len(items) == rows*cols always).
type Grid[T any] struct {
	items []T
	rows  int
	cols  int
	opts  Options
}

// Rows returns the number of rows.
// Complexity: O(1).
func (g *Grid[T]) Rows() int { return g.rows }

// Columns returns the number of columns.
// Complexity: O(1).
func (g *Grid[T]) Columns() int { return g.cols }

// Size returns the total number of cells.
// Complexity: O(1).
func (g *Grid[T]) Size() int { return len(g.items) }

// Options returns a copy of the grid's coordinate configuration.
func (g *Grid[T]) Options() Options { return g.opts }

// Shape returns the grid's addressing context for standalone coordinate
// resolution and materialization.
func (g *Grid[T]) Shape() Shape {
	return Shape{rows: g.rows, cols: g.cols, opts: g.opts}
}

// Index resolves any coordinate representation to its canonical flat
// offset, returning ErrIndexOutOfBounds for coordinates outside the grid.
// This is the explicit, error-reporting resolution path; Get and friends
// are its absence-reporting conveniences.
// Complexity: O(1).
func (g *Grid[T]) Index(i Index) (int, error) {
	return i.Resolve(g.Shape())
}

// Get returns the value at the given coordinate; ok is false when the
// coordinate falls outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Get(i Index) (v T, ok bool) {
	idx, err := g.Index(i)
	if err != nil {
		return v, false
	}

	return g.items[idx], true
}

// Ptr returns a pointer to the cell at the given coordinate for in-place
// mutation, or nil when the coordinate falls outside the grid. The pointer
// must not be held across operations that need exclusive grid access.
// Complexity: O(1).
func (g *Grid[T]) Ptr(i Index) *T {
	idx, err := g.Index(i)
	if err != nil {
		return nil
	}

	return &g.items[idx]
}

// Set stores v at the given coordinate.
// Complexity: O(1).
func (g *Grid[T]) Set(i Index, v T) error {
	idx, err := g.Index(i)
	if err != nil {
		return err
	}
	g.items[idx] = v

	return nil
}

// Swap exchanges the values of two cells. Either coordinate out of bounds
// fails the whole operation; the grid is unchanged on error.
// Complexity: O(1).
func (g *Grid[T]) Swap(a, b Index) error {
	ai, err := g.Index(a)
	if err != nil {
		return err
	}
	bi, err := g.Index(b)
	if err != nil {
		return err
	}
	g.items[ai], g.items[bi] = g.items[bi], g.items[ai]

	return nil
}

// MinX returns the smallest legal logical x for this grid's origin.
func (g *Grid[T]) MinX() int {
	lo, _ := xRange(g.Shape())

	return lo
}

// MaxX returns the largest legal logical x for this grid's origin.
func (g *Grid[T]) MaxX() int {
	_, hi := xRange(g.Shape())

	return hi
}

// MinY returns the smallest legal logical y for this grid's origin and
// axis inversion.
func (g *Grid[T]) MinY() int {
	lo, _ := yRange(g.Shape())

	return lo
}

// MaxY returns the largest legal logical y for this grid's origin and
// axis inversion.
func (g *Grid[T]) MaxY() int {
	_, hi := yRange(g.Shape())

	return hi
}

// row/column bookkeeping shared by iterators and the partitioner.

func rowNumber(cols, index int) int { return index / cols }

func colNumber(cols, index int) int { return index % cols }

func rowStart(cols, index int) int { return rowNumber(cols, index) * cols }
