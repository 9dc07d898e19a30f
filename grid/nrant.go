// Package grid: the partitioner. A divisor d splits the grid into a d×d
// arrangement of sub-regions ("nrants") with ceiling-sized extents, so the
// bottom and right regions may be smaller when the dimensions are not
// evenly divisible. Region iteration always yields regionWidth×regionHeight
// slots in row-major order within the region, with explicit empty slots on
// ragged edges, preserving positional correspondence for consumers like
// Sudoku region scans.
package grid

import "iter"

// Nrant returns the region id (0 <= id < divisor*divisor, row-major region
// numbering) of the cell at i. Returns ErrInvalidDivisionSize when divisor
// is outside [1, max(rows, cols)]; ErrIndexOutOfBounds when i does not
// resolve. Region geometry operates on the canonical layout and is
// unaffected by origin or inversion options.
// Complexity: O(1).
func (g *Grid[T]) Nrant(i Index, divisor int) (int, error) {
	if err := g.checkDivisor(divisor); err != nil {
		return 0, err
	}
	idx, err := g.Index(i)
	if err != nil {
		return 0, err
	}

	rowBlock := rowNumber(g.cols, idx) / ceilDiv(g.rows, divisor)
	colBlock := colNumber(g.cols, idx) / ceilDiv(g.cols, divisor)

	return rowBlock*divisor + colBlock, nil
}

// Quadrant returns which of the four quadrants the cell at i is in.
// Shorthand for Nrant(i, 2).
func (g *Grid[T]) Quadrant(i Index) (int, error) {
	return g.Nrant(i, 2)
}

// NrantStart returns the canonical offset of the first cell of the given
// region id. Returns ErrInvalidDivisionSize for a bad divisor and
// ErrIndexOutOfBounds for a region id outside [0, divisor*divisor).
// Complexity: O(1).
func (g *Grid[T]) NrantStart(region, divisor int) (int, error) {
	if err := g.checkDivisor(divisor); err != nil {
		return 0, err
	}
	if region < 0 || region >= divisor*divisor {
		return 0, ErrIndexOutOfBounds
	}

	return g.regionOrigin(region, divisor), nil
}

// regionOrigin computes the start offset of a validated region id, the
// exact inverse of the block arithmetic in Nrant.
func (g *Grid[T]) regionOrigin(region, divisor int) int {
	colBlock := region % divisor
	rowBlock := region / divisor
	xOff := colBlock * ceilDiv(g.cols, divisor)
	yOff := rowBlock * ceilDiv(g.rows, divisor)

	return yOff*g.cols + xOff
}

// NrantIter iterates the region containing i in row-major order within the
// region. Every region yields exactly regionWidth×regionHeight slots; slots
// past the grid's true bounds (ragged right or bottom edges) are yielded
// with ok=false. An unresolvable coordinate or an invalid divisor produces
// an empty sequence.
// Complexity: O(regionWidth×regionHeight) per full pass.
func (g *Grid[T]) NrantIter(divisor int, i Index) iter.Seq2[T, bool] {
	start, rw, rh, valid := g.regionWindow(divisor, i)

	return func(yield func(T, bool) bool) {
		if !valid {
			return
		}
		for cur := 0; cur < rw*rh; cur++ {
			idx, present := g.regionSlot(start, rw, cur)
			var v T
			if present {
				v = g.items[idx]
			}
			if !yield(v, present) {
				return
			}
		}
	}
}

// NrantIterMut is NrantIter yielding storage pointers for in-place
// mutation; empty slots are yielded as nil.
func (g *Grid[T]) NrantIterMut(divisor int, i Index) iter.Seq[*T] {
	start, rw, rh, valid := g.regionWindow(divisor, i)

	return func(yield func(*T) bool) {
		if !valid {
			return
		}
		for cur := 0; cur < rw*rh; cur++ {
			var p *T
			if idx, present := g.regionSlot(start, rw, cur); present {
				p = &g.items[idx]
			}
			if !yield(p) {
				return
			}
		}
	}
}

// QuadrantIter iterates the quadrant containing i. Shorthand for
// NrantIter(2, i).
func (g *Grid[T]) QuadrantIter(i Index) iter.Seq2[T, bool] {
	return g.NrantIter(2, i)
}

// QuadrantIterMut is the mutable form of QuadrantIter.
func (g *Grid[T]) QuadrantIterMut(i Index) iter.Seq[*T] {
	return g.NrantIterMut(2, i)
}

// regionWindow resolves divisor and coordinate into the iteration window:
// region start offset and extents. valid is false when either input cannot
// be resolved, which iterators surface as an empty sequence.
func (g *Grid[T]) regionWindow(divisor int, i Index) (start, rw, rh int, valid bool) {
	region, err := g.Nrant(i, divisor)
	if err != nil {
		return 0, 0, 0, false
	}

	rw = ceilDiv(g.cols, divisor)
	rh = ceilDiv(g.rows, divisor)

	return g.regionOrigin(region, divisor), rw, rh, true
}

// regionSlot maps the cur-th slot of a region window onto a canonical
// offset; present is false for ragged-edge slots with no backing cell.
func (g *Grid[T]) regionSlot(start, rw, cur int) (idx int, present bool) {
	rowOff := cur / rw
	colOff := cur % rw
	if colOff+colNumber(g.cols, start) >= g.cols {
		return 0, false
	}
	idx = start + rowOff*g.cols + colOff
	if idx >= g.Size() {
		return 0, false
	}

	return idx, true
}

// checkDivisor validates an nrant divisor against the grid shape.
func (g *Grid[T]) checkDivisor(divisor int) error {
	if divisor < 1 || divisor > max(g.rows, g.cols) {
		return ErrInvalidDivisionSize
	}

	return nil
}

// ceilDiv is ceiling integer division for positive operands.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
