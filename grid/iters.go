// Package grid: row, column and whole-grid iteration. All sequences are
// lazy, finite and restartable; a sequence built from an out-of-bounds
// coordinate is simply empty, letting call sites iterate instead of
// branching on validity. Mutable sequences hand out storage pointers and
// must not overlap with other live access to the same grid.
package grid

import "iter"

// Row iterates the values of the row containing the cell at i, from the
// first column to the last.
// Complexity: O(cols) per full pass.
func (g *Grid[T]) Row(i Index) iter.Seq[T] {
	idx, err := g.Index(i)

	return func(yield func(T) bool) {
		if err != nil {
			return
		}
		start := rowStart(g.cols, idx)
		for j := start; j < start+g.cols; j++ {
			if !yield(g.items[j]) {
				return
			}
		}
	}
}

// RowMut is Row yielding storage pointers for in-place mutation.
func (g *Grid[T]) RowMut(i Index) iter.Seq[*T] {
	idx, err := g.Index(i)

	return func(yield func(*T) bool) {
		if err != nil {
			return
		}
		start := rowStart(g.cols, idx)
		for j := start; j < start+g.cols; j++ {
			if !yield(&g.items[j]) {
				return
			}
		}
	}
}

// Col iterates the values of the column containing the cell at i, from the
// first row to the last, striding by the column count.
// Complexity: O(rows) per full pass.
func (g *Grid[T]) Col(i Index) iter.Seq[T] {
	idx, err := g.Index(i)

	return func(yield func(T) bool) {
		if err != nil {
			return
		}
		for j := colNumber(g.cols, idx); j < g.Size(); j += g.cols {
			if !yield(g.items[j]) {
				return
			}
		}
	}
}

// ColMut is Col yielding storage pointers for in-place mutation.
func (g *Grid[T]) ColMut(i Index) iter.Seq[*T] {
	idx, err := g.Index(i)

	return func(yield func(*T) bool) {
		if err != nil {
			return
		}
		for j := colNumber(g.cols, idx); j < g.Size(); j += g.cols {
			if !yield(&g.items[j]) {
				return
			}
		}
	}
}

// All iterates every cell in canonical row-major order as (offset, value)
// pairs, mirroring slices.All over the backing storage.
// Complexity: O(rows×cols) per full pass.
func (g *Grid[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for j, v := range g.items {
			if !yield(j, v) {
				return
			}
		}
	}
}

// Values iterates every cell value in canonical row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.items {
			if !yield(v) {
				return
			}
		}
	}
}
