// Package grid: neighbor resolution. Single-step moves over canonical
// offsets, wrap handling at the edges, the logical up/down remap, and the
// fixed-shape 4- and 8-neighbor records.
package grid

import "iter"

// rawUp moves one row toward smaller offsets: i-cols, wrapping to the
// bottom of the same column when WrapY is set.
func rawUp(s Shape, i int) (int, error) {
	if i >= s.cols {
		return i - s.cols, nil
	}
	if s.opts.WrapY {
		return i + s.Size() - s.cols, nil
	}

	return 0, ErrIndexOutOfBounds
}

// rawDown mirrors rawUp toward larger offsets.
func rawDown(s Shape, i int) (int, error) {
	j := i + s.cols
	if j < s.Size() {
		return j, nil
	}
	if s.opts.WrapY {
		return j - s.Size(), nil
	}

	return 0, ErrIndexOutOfBounds
}

// leftOf moves one column left, wrapping to the end of the same row when
// WrapX is set.
func leftOf(s Shape, i int) (int, error) {
	if i%s.cols == 0 {
		if s.opts.WrapX {
			return i + s.cols - 1, nil
		}

		return 0, ErrIndexOutOfBounds
	}

	return i - 1, nil
}

// rightOf mirrors leftOf at the right edge.
func rightOf(s Shape, i int) (int, error) {
	j := i + 1
	if j == s.Size() || j%s.cols == 0 {
		if s.opts.WrapX {
			return j - s.cols, nil
		}

		return 0, ErrIndexOutOfBounds
	}

	return j, nil
}

// upOf resolves the public "up" direction. When the logical y-axis grows
// with the row index and neighbor naming is y-based, "up" (toward greater
// logical y) is the raw downward storage step; otherwise it is the raw
// upward step.
func upOf(s Shape, i int) (int, error) {
	if !s.opts.InvertedY && s.opts.NeighborYBased {
		return rawDown(s, i)
	}

	return rawUp(s, i)
}

// downOf resolves the public "down" direction, the mirror of upOf.
func downOf(s Shape, i int) (int, error) {
	if !s.opts.InvertedY && s.opts.NeighborYBased {
		return rawUp(s, i)
	}

	return rawDown(s, i)
}

// Diagonals compose one vertical then one horizontal step; the diagonal is
// absent whenever either component step is absent.

func upLeftOf(s Shape, i int) (int, error) {
	j, err := upOf(s, i)
	if err != nil {
		return 0, err
	}

	return leftOf(s, j)
}

func upRightOf(s Shape, i int) (int, error) {
	j, err := upOf(s, i)
	if err != nil {
		return 0, err
	}

	return rightOf(s, j)
}

func downLeftOf(s Shape, i int) (int, error) {
	j, err := downOf(s, i)
	if err != nil {
		return 0, err
	}

	return leftOf(s, j)
}

func downRightOf(s Shape, i int) (int, error) {
	j, err := downOf(s, i)
	if err != nil {
		return 0, err
	}

	return rightOf(s, j)
}

// step resolves the starting index, applies one move, and reads the cell.
func (g *Grid[T]) step(i Index, move func(Shape, int) (int, error)) (v T, ok bool) {
	idx, err := g.Index(i)
	if err != nil {
		return v, false
	}
	j, err := move(g.Shape(), idx)
	if err != nil {
		return v, false
	}

	return g.items[j], true
}

// stepPtr is step for the record builders, yielding a storage pointer.
func (g *Grid[T]) stepPtr(idx int, move func(Shape, int) (int, error)) *T {
	j, err := move(g.Shape(), idx)
	if err != nil {
		return nil
	}

	return &g.items[j]
}

// Up returns the value one step up from the given coordinate; ok is false
// when there is no such neighbor (edge without wrap, or i out of bounds).
// Complexity: O(1).
func (g *Grid[T]) Up(i Index) (T, bool) { return g.step(i, upOf) }

// Down returns the value one step down from the given coordinate.
func (g *Grid[T]) Down(i Index) (T, bool) { return g.step(i, downOf) }

// Left returns the value one step left of the given coordinate.
func (g *Grid[T]) Left(i Index) (T, bool) { return g.step(i, leftOf) }

// Right returns the value one step right of the given coordinate.
func (g *Grid[T]) Right(i Index) (T, bool) { return g.step(i, rightOf) }

// UpLeft returns the value one step up and one left.
func (g *Grid[T]) UpLeft(i Index) (T, bool) { return g.step(i, upLeftOf) }

// UpRight returns the value one step up and one right.
func (g *Grid[T]) UpRight(i Index) (T, bool) { return g.step(i, upRightOf) }

// DownLeft returns the value one step down and one left.
func (g *Grid[T]) DownLeft(i Index) (T, bool) { return g.step(i, downLeftOf) }

// DownRight returns the value one step down and one right.
func (g *Grid[T]) DownRight(i Index) (T, bool) { return g.step(i, downRightOf) }

// Neighbors bundles the four cardinal neighbors of a cell. Each field is a
// pointer into grid storage, nil when that neighbor is absent.
type Neighbors[T any] struct {
	Up    *T
	Left  *T
	Right *T
	Down  *T
}

// All iterates the four slots in fixed order: up, left, right, down.
// Absent neighbors are yielded as nil so positions stay meaningful.
func (n Neighbors[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, p := range [4]*T{n.Up, n.Left, n.Right, n.Down} {
			if !yield(p) {
				return
			}
		}
	}
}

// AllNeighbors bundles all eight surrounding neighbors of a cell, nil for
// absent ones.
type AllNeighbors[T any] struct {
	UpLeft    *T
	Up        *T
	UpRight   *T
	Left      *T
	Right     *T
	DownLeft  *T
	Down      *T
	DownRight *T
}

// All iterates the eight slots in fixed order: upleft, up, upright, left,
// right, downleft, down, downright. Absent neighbors are yielded as nil.
func (n AllNeighbors[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		slots := [8]*T{n.UpLeft, n.Up, n.UpRight, n.Left, n.Right, n.DownLeft, n.Down, n.DownRight}
		for _, p := range slots {
			if !yield(p) {
				return
			}
		}
	}
}

// Neighbors returns the four cardinal neighbors of the cell at i.
// The coordinate itself must be in bounds; individual neighbors may be
// absent independently.
// Complexity: O(1).
func (g *Grid[T]) Neighbors(i Index) (Neighbors[T], error) {
	idx, err := g.Index(i)
	if err != nil {
		return Neighbors[T]{}, err
	}

	return Neighbors[T]{
		Up:    g.stepPtr(idx, upOf),
		Left:  g.stepPtr(idx, leftOf),
		Right: g.stepPtr(idx, rightOf),
		Down:  g.stepPtr(idx, downOf),
	}, nil
}

// AllNeighbors returns all eight surrounding neighbors of the cell at i.
// Complexity: O(1).
func (g *Grid[T]) AllNeighbors(i Index) (AllNeighbors[T], error) {
	idx, err := g.Index(i)
	if err != nil {
		return AllNeighbors[T]{}, err
	}

	return AllNeighbors[T]{
		UpLeft:    g.stepPtr(idx, upLeftOf),
		Up:        g.stepPtr(idx, upOf),
		UpRight:   g.stepPtr(idx, upRightOf),
		Left:      g.stepPtr(idx, leftOf),
		Right:     g.stepPtr(idx, rightOf),
		DownLeft:  g.stepPtr(idx, downLeftOf),
		Down:      g.stepPtr(idx, downOf),
		DownRight: g.stepPtr(idx, downRightOf),
	}, nil
}
