// Package grid: pure transforms between logical coordinates and the
// canonical frame (origin at the upper-left cell, x growing rightward,
// y growing downward).
//
// All functions here operate on the "up-positive" intermediate frame: the
// logical y normalized so that greater values always point toward smaller
// row indices. normalizeY/denormalizeY perform that (involutive) step, the
// per-origin converters do the rest. Keeping each direction a closed switch
// over Origin keeps the round-trip property easy to verify.
package grid

// normalizeY maps a logical y into the up-positive frame. The mapping is
// its own inverse, so it also serves as denormalization.
func normalizeY(s Shape, y int) int {
	if s.opts.InvertedY {
		return y
	}

	return -y
}

// checkBounds reports whether the up-positive (x, y) names a cell of the
// grid. Each origin has its own half-open sign regime on top of the shared
// magnitude limit.
func checkBounds(s Shape, x, y int) error {
	if abs(x) >= s.cols || abs(y) >= s.rows {
		return ErrIndexOutOfBounds
	}

	ok := false
	switch s.opts.Origin {
	case UpperLeft:
		ok = x >= 0 && y <= 0
	case UpperRight:
		ok = x <= 0 && y <= 0
	case LowerLeft:
		ok = x >= 0 && y >= 0
	case LowerRight:
		ok = x <= 0 && y >= 0
	case Center:
		// Odd dimensions are enforced at construction, so the legal range
		// is symmetric: |x| <= cols/2 and |y| <= rows/2.
		ok = abs(x) <= s.cols/2 && abs(y) <= s.rows/2
	}
	if !ok {
		return ErrIndexOutOfBounds
	}

	return nil
}

// toCanonical translates a bounds-checked up-positive (x, y) into canonical
// (column, row). No validation: callers run checkBounds first.
func toCanonical(s Shape, x, y int) (cx, cy int) {
	switch s.opts.Origin {
	case UpperRight:
		return x + s.cols - 1, -y
	case Center:
		return x + s.cols/2, -y + s.rows/2
	case LowerLeft:
		return x, s.rows - 1 - y
	case LowerRight:
		return s.cols - 1 + x, s.rows - 1 - y
	default: // UpperLeft
		return x, -y
	}
}

// fromCanonical inverts toCanonical, recovering the up-positive (x, y)
// for a canonical (column, row).
func fromCanonical(s Shape, cx, cy int) (x, y int) {
	switch s.opts.Origin {
	case UpperRight:
		return cx - (s.cols - 1), -cy
	case Center:
		return cx - s.cols/2, s.rows/2 - cy
	case LowerLeft:
		return cx, s.rows - 1 - cy
	case LowerRight:
		return cx - (s.cols - 1), s.rows - 1 - cy
	default: // UpperLeft
		return cx, -cy
	}
}

// xRange returns the inclusive legal logical x interval for the shape.
// x is unaffected by axis inversion.
func xRange(s Shape) (lo, hi int) {
	switch s.opts.Origin {
	case UpperRight, LowerRight:
		return -(s.cols - 1), 0
	case Center:
		return -(s.cols / 2), s.cols / 2
	default: // UpperLeft, LowerLeft
		return 0, s.cols - 1
	}
}

// yRange returns the inclusive legal logical y interval for the shape,
// accounting for axis inversion.
func yRange(s Shape) (lo, hi int) {
	switch s.opts.Origin {
	case LowerLeft, LowerRight:
		lo, hi = 0, s.rows-1
	case Center:
		lo, hi = -(s.rows / 2), s.rows/2
	default: // UpperLeft, UpperRight
		lo, hi = -(s.rows - 1), 0
	}
	if !s.opts.InvertedY {
		lo, hi = -hi, -lo
	}

	return lo, hi
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
