// Package grid: coordinate configuration types and documented defaults.
package grid

// Origin selects which corner (or the center) of the grid a caller's
// coordinate system treats as (0,0). The set is closed: all transforms
// dispatch over these five variants.
type Origin int

const (
	// UpperLeft places (0,0) at the top-left cell. The default.
	UpperLeft Origin = iota
	// UpperRight places (0,0) at the top-right cell; x grows leftward.
	UpperRight
	// Center places (0,0) at the middle cell. Requires odd rows and columns.
	Center
	// LowerLeft places (0,0) at the bottom-left cell.
	LowerLeft
	// LowerRight places (0,0) at the bottom-right cell; x grows leftward.
	LowerRight
)

// String implements fmt.Stringer for diagnostics.
func (o Origin) String() string {
	switch o {
	case UpperLeft:
		return "UpperLeft"
	case UpperRight:
		return "UpperRight"
	case Center:
		return "Center"
	case LowerLeft:
		return "LowerLeft"
	case LowerRight:
		return "LowerRight"
	default:
		return "Origin(unknown)"
	}
}

// Defaults - single source of truth for zero-configuration behavior.
const (
	// DefaultInvertedY makes logical y grow upward (the math convention):
	// for an UpperLeft origin, in-range y values are 0, -1, -2, ...
	DefaultInvertedY = true

	// DefaultNeighborYBased keeps "up"/"down" neighbor naming aligned with
	// the logical y-axis sense rather than raw storage row order.
	DefaultNeighborYBased = true

	// DefaultWrap disables toroidal wrap on both axes.
	DefaultWrap = false
)

// Options is the immutable value record of a grid's coordinate
// configuration. It is copied into the Grid at construction and never
// mutated afterwards.
type Options struct {
	// Origin selects the location of (0,0). Default UpperLeft.
	Origin Origin

	// InvertedY: when true (default), increasing logical y moves toward a
	// smaller row index, so y grows upward. When false, y grows with the
	// row index (downward).
	InvertedY bool

	// NeighborYBased decides whether "up"/"down" neighbor resolution follows
	// the logical y-axis sense (up means toward greater logical y) or always
	// the raw storage sense (up means row-1). It only changes behavior when
	// the logical y-axis grows with the row index (InvertedY false).
	NeighborYBased bool

	// WrapX enables toroidal wrap on the horizontal axis.
	WrapX bool

	// WrapY enables toroidal wrap on the vertical axis.
	WrapY bool
}

// DefaultOptions returns the configuration most grids want: UpperLeft
// origin, y growing upward, y-based neighbor naming, no wrap.
func DefaultOptions() Options {
	return Options{
		Origin:         UpperLeft,
		InvertedY:      DefaultInvertedY,
		NeighborYBased: DefaultNeighborYBased,
		WrapX:          DefaultWrap,
		WrapY:          DefaultWrap,
	}
}
