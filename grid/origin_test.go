package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// 3 columns × 4 rows shape used across transform tests; cells 0..11.
func basicShape(o Origin) Shape {
	opts := DefaultOptions()
	opts.Origin = o

	return NewShape(3, 4, opts)
}

// 3 columns × 5 rows, Center origin (both dimensions odd).
func centerShape() Shape {
	opts := DefaultOptions()
	opts.Origin = Center

	return NewShape(3, 5, opts)
}

func TestToCanonical_UpperLeft(t *testing.T) {
	s := basicShape(UpperLeft)

	cx, cy := toCanonical(s, 0, 0)
	require.Equal(t, 0, cx)
	require.Equal(t, 0, cy)

	cx, cy = toCanonical(s, 1, -2)
	require.Equal(t, 1, cx)
	require.Equal(t, 2, cy)
}

func TestToCanonical_UpperRight(t *testing.T) {
	s := basicShape(UpperRight)

	cx, cy := toCanonical(s, 0, 0)
	require.Equal(t, 2, cx)
	require.Equal(t, 0, cy)

	cx, cy = toCanonical(s, -1, -2)
	require.Equal(t, 1, cx)
	require.Equal(t, 2, cy)
}

func TestToCanonical_LowerLeft(t *testing.T) {
	s := basicShape(LowerLeft)

	cx, cy := toCanonical(s, 0, 0)
	require.Equal(t, 0, cx)
	require.Equal(t, 3, cy)

	cx, cy = toCanonical(s, 1, 2)
	require.Equal(t, 1, cx)
	require.Equal(t, 1, cy)
}

func TestToCanonical_LowerRight(t *testing.T) {
	s := basicShape(LowerRight)

	cx, cy := toCanonical(s, 0, 0)
	require.Equal(t, 2, cx)
	require.Equal(t, 3, cy)

	cx, cy = toCanonical(s, -1, 2)
	require.Equal(t, 1, cx)
	require.Equal(t, 1, cy)
}

func TestToCanonical_Center(t *testing.T) {
	s := centerShape()

	cx, cy := toCanonical(s, 0, 0)
	require.Equal(t, 1, cx)
	require.Equal(t, 2, cy)

	cx, cy = toCanonical(s, -1, 2)
	require.Equal(t, 0, cx)
	require.Equal(t, 0, cy)

	cx, cy = toCanonical(s, 1, -2)
	require.Equal(t, 2, cx)
	require.Equal(t, 4, cy)
}

// fromCanonical must invert toCanonical for every canonical cell of every
// origin.
func TestFromCanonical_InvertsToCanonical(t *testing.T) {
	shapes := []Shape{
		basicShape(UpperLeft),
		basicShape(UpperRight),
		basicShape(LowerLeft),
		basicShape(LowerRight),
		centerShape(),
	}
	for _, s := range shapes {
		t.Run(s.opts.Origin.String(), func(t *testing.T) {
			for cy := 0; cy < s.rows; cy++ {
				for cx := 0; cx < s.cols; cx++ {
					x, y := fromCanonical(s, cx, cy)
					gx, gy := toCanonical(s, x, y)
					require.Equal(t, cx, gx, "x at (%d,%d)", cx, cy)
					require.Equal(t, cy, gy, "y at (%d,%d)", cx, cy)
				}
			}
		})
	}
}

func TestCheckBounds(t *testing.T) {
	cases := []struct {
		name string
		s    Shape
		x, y int
		ok   bool
	}{
		{"UpperLeftOrigin", basicShape(UpperLeft), 0, 0, true},
		{"UpperLeftInterior", basicShape(UpperLeft), 2, -3, true},
		{"UpperLeftWrongXSign", basicShape(UpperLeft), -1, 0, false},
		{"UpperLeftWrongYSign", basicShape(UpperLeft), 0, 1, false},
		{"UpperLeftTooWide", basicShape(UpperLeft), 3, 0, false},
		{"UpperRightInterior", basicShape(UpperRight), -2, -3, true},
		{"UpperRightWrongXSign", basicShape(UpperRight), 1, 0, false},
		{"LowerLeftInterior", basicShape(LowerLeft), 2, 3, true},
		{"LowerLeftWrongYSign", basicShape(LowerLeft), 0, -1, false},
		{"LowerRightInterior", basicShape(LowerRight), -2, 3, true},
		{"CenterOrigin", centerShape(), 0, 0, true},
		{"CenterCorner", centerShape(), -1, 2, true},
		{"CenterTooWide", centerShape(), 2, 0, false},
		{"CenterTooTall", centerShape(), 0, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkBounds(tc.s, tc.x, tc.y)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrIndexOutOfBounds)
			}
		})
	}
}

func TestYRange_HonorsInversion(t *testing.T) {
	up := basicShape(UpperLeft)
	lo, hi := yRange(up)
	require.Equal(t, -3, lo)
	require.Equal(t, 0, hi)

	down := up
	down.opts.InvertedY = false
	lo, hi = yRange(down)
	require.Equal(t, 0, lo)
	require.Equal(t, 3, hi)

	c := centerShape()
	lo, hi = yRange(c)
	require.Equal(t, -2, lo)
	require.Equal(t, 2, hi)
}

func TestXRange_PerOrigin(t *testing.T) {
	lo, hi := xRange(basicShape(UpperLeft))
	require.Equal(t, 0, lo)
	require.Equal(t, 2, hi)

	lo, hi = xRange(basicShape(LowerRight))
	require.Equal(t, -2, lo)
	require.Equal(t, 0, hi)

	lo, hi = xRange(centerShape())
	require.Equal(t, -1, lo)
	require.Equal(t, 1, hi)
}
