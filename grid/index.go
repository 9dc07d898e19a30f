// Package grid: index resolution. Every supported coordinate
// representation converts itself into a validated canonical flat offset
// (Resolve) and reconstructs itself from one (Materialize).
package grid

// Shape is the addressing context of a grid: its dimensions plus
// coordinate options, detached from the stored values. It is a small
// immutable value, cheap to copy.
type Shape struct {
	rows, cols int
	opts       Options
}

// NewShape builds a standalone addressing context. Useful for resolving
// or materializing coordinates without a backing grid.
func NewShape(cols, rows int, opts Options) Shape {
	return Shape{rows: rows, cols: cols, opts: opts}
}

// Rows returns the number of rows.
func (s Shape) Rows() int { return s.rows }

// Columns returns the number of columns.
func (s Shape) Columns() int { return s.cols }

// Size returns the total cell count, rows*cols.
func (s Shape) Size() int { return s.rows * s.cols }

// Options returns the coordinate configuration.
func (s Shape) Options() Options { return s.opts }

// Index is the capability shared by all coordinate representations.
//
// Resolve produces the canonical flat offset for the receiver, or
// ErrIndexOutOfBounds; an offset returned by Resolve is valid for direct
// storage access with no further checks. Materialize performs the reverse
// mapping, rebuilding the receiver's representation from an offset; the
// receiver's own value is ignored. For any in-bounds coordinate the two
// operations round-trip exactly.
type Index interface {
	Resolve(s Shape) (int, error)
	Materialize(s Shape, offset int) Index
}

// Offset is the canonical flat index itself: resolution is a pure range
// check, no coordinate transform involved.
type Offset int

// Resolve validates the offset against the shape's size.
// Complexity: O(1).
func (o Offset) Resolve(s Shape) (int, error) {
	if o < 0 || int(o) >= s.Size() {
		return 0, ErrIndexOutOfBounds
	}

	return int(o), nil
}

// Materialize returns the offset unchanged.
func (o Offset) Materialize(_ Shape, offset int) Index {
	return Offset(offset)
}

// Pair is a signed (x, y) logical coordinate: Pair{x, y}.
type Pair [2]int

// Resolve maps the pair through the shape's origin, inversion and bounds
// rules into a canonical offset.
// Complexity: O(1).
func (p Pair) Resolve(s Shape) (int, error) {
	return resolveXY(s, p[0], p[1])
}

// Materialize recovers the logical pair addressing the given offset.
func (p Pair) Materialize(s Shape, offset int) Index {
	x, y := locateXY(s, offset)

	return Pair{x, y}
}

// Coord is a named (X, Y) logical coordinate, semantically identical to
// Pair for callers preferring explicit field names.
type Coord struct {
	X, Y int
}

// Resolve maps the coordinate into a canonical offset.
// Complexity: O(1).
func (c Coord) Resolve(s Shape) (int, error) {
	return resolveXY(s, c.X, c.Y)
}

// Materialize recovers the logical coordinate addressing the given offset.
func (c Coord) Materialize(s Shape, offset int) Index {
	x, y := locateXY(s, offset)

	return Coord{X: x, Y: y}
}

// resolveXY is the single forward path shared by Pair and Coord:
// normalize y, bounds-check, translate to canonical space, flatten.
func resolveXY(s Shape, x, y int) (int, error) {
	yn := normalizeY(s, y)
	if err := checkBounds(s, x, yn); err != nil {
		return 0, err
	}
	cx, cy := toCanonical(s, x, yn)

	return cy*s.cols + cx, nil
}

// locateXY is the exact inverse of resolveXY for in-range offsets.
func locateXY(s Shape, offset int) (x, y int) {
	cx, cy := offset%s.cols, offset/s.cols
	x, yn := fromCanonical(s, cx, cy)

	return x, normalizeY(s, yn)
}
