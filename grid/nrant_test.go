package grid_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neighborgrid/grid"
)

// collectRegion drains a region sequence into values plus a presence mask.
func collectRegion(seq iter.Seq2[int, bool]) (vals []int, mask []bool) {
	for v, ok := range seq {
		vals = append(vals, v)
		mask = append(mask, ok)
	}

	return vals, mask
}

func TestQuadrant_EvenSplit(t *testing.T) {
	g := seqGrid(t, 2, 2, grid.DefaultOptions())

	for idx, want := range []int{0, 1, 2, 3} {
		q, err := g.Quadrant(grid.Offset(idx))
		require.NoError(t, err)
		require.Equal(t, want, q)
	}
}

func TestQuadrant_RaggedSplit(t *testing.T) {
	g := seqGrid(t, 3, 2, grid.DefaultOptions())

	// region_width = ceil(3/2) = 2, region_height = ceil(2/2) = 1.
	for idx, want := range []int{0, 0, 1, 2, 2, 3} {
		q, err := g.Quadrant(grid.Offset(idx))
		require.NoError(t, err)
		require.Equal(t, want, q, "offset %d", idx)
	}
}

func TestQuadrant_IgnoresOrigin(t *testing.T) {
	opts := grid.DefaultOptions()
	opts.Origin = grid.Center
	g := seqGrid(t, 5, 5, opts)

	// The center cell (offset 12, row 2, col 2) falls inside the ceiling
	// sized 3×3 top-left region regardless of the origin convention.
	q, err := g.Quadrant(grid.Pair{0, 0})
	require.NoError(t, err)
	require.Equal(t, 0, q)

	q, err = g.Quadrant(grid.Pair{1, -1})
	require.NoError(t, err)
	require.Equal(t, 3, q)
}

func TestNrant_SudokuBoxes(t *testing.T) {
	items := make([]int, 81)
	for i := range items {
		items[i] = i + 1
	}
	g, err := grid.FromFlat(items, 9, 9, grid.DefaultOptions())
	require.NoError(t, err)

	region, err := g.Nrant(grid.Pair{1, -1}, 3)
	require.NoError(t, err)
	require.Equal(t, 0, region)

	vals, mask := collectRegion(g.NrantIter(3, grid.Pair{1, -1}))
	require.Equal(t, []int{1, 2, 3, 10, 11, 12, 19, 20, 21}, vals)
	for _, ok := range mask {
		require.True(t, ok)
	}

	vals, _ = collectRegion(g.NrantIter(3, grid.Offset(80)))
	require.Equal(t, []int{61, 62, 63, 70, 71, 72, 79, 80, 81}, vals)
}

func TestNrant_Errors(t *testing.T) {
	g := seqGrid(t, 3, 3, grid.DefaultOptions())

	_, err := g.Nrant(grid.Offset(0), 0)
	require.ErrorIs(t, err, grid.ErrInvalidDivisionSize)

	_, err = g.Nrant(grid.Offset(0), 4)
	require.ErrorIs(t, err, grid.ErrInvalidDivisionSize)

	_, err = g.Nrant(grid.Offset(9), 2)
	require.ErrorIs(t, err, grid.ErrIndexOutOfBounds)
}

func TestNrantStart(t *testing.T) {
	g := seqGrid(t, 9, 9, grid.DefaultOptions())

	cases := []struct{ region, want int }{
		{0, 0}, {1, 3}, {2, 6}, {3, 27}, {4, 30}, {8, 60},
	}
	for _, tc := range cases {
		start, err := g.NrantStart(tc.region, 3)
		require.NoError(t, err)
		require.Equal(t, tc.want, start, "region %d", tc.region)
	}

	_, err := g.NrantStart(-1, 3)
	require.ErrorIs(t, err, grid.ErrIndexOutOfBounds)
	_, err = g.NrantStart(9, 3)
	require.ErrorIs(t, err, grid.ErrIndexOutOfBounds)
	_, err = g.NrantStart(0, 0)
	require.ErrorIs(t, err, grid.ErrInvalidDivisionSize)
}

// TestNrantStart_InvertsNrant checks that NrantStart lands on an offset
// whose Nrant is the requested region, for ragged shapes too.
func TestNrantStart_InvertsNrant(t *testing.T) {
	g := seqGrid(t, 7, 5, grid.DefaultOptions())

	for region := 0; region < 9; region++ {
		start, err := g.NrantStart(region, 3)
		require.NoError(t, err)

		got, err := g.Nrant(grid.Offset(start), 3)
		require.NoError(t, err)
		require.Equal(t, region, got, "start %d", start)
	}
}

func TestNrantIter_RaggedEdges(t *testing.T) {
	g := seqGrid(t, 3, 3, grid.DefaultOptions())

	// region_width = region_height = 2; the right column of region 1 falls
	// off the grid, so every other slot is an explicit absence.
	vals, mask := collectRegion(g.QuadrantIter(grid.Offset(2)))
	require.Equal(t, []bool{true, false, true, false}, mask)
	require.Equal(t, 2, vals[0])
	require.Equal(t, 5, vals[2])

	// Bottom-right region: one real cell, three absences.
	_, mask = collectRegion(g.QuadrantIter(grid.Offset(8)))
	require.Equal(t, []bool{true, false, false, false}, mask)
}

func TestNrantIter_InvalidInputsAreEmpty(t *testing.T) {
	g := seqGrid(t, 3, 3, grid.DefaultOptions())

	vals, _ := collectRegion(g.NrantIter(0, grid.Offset(0)))
	require.Empty(t, vals)

	vals, _ = collectRegion(g.NrantIter(2, grid.Offset(9)))
	require.Empty(t, vals)
}

// TestNrantIter_CoversGridOnce: the present slots of all d*d regions
// partition the grid exactly.
func TestNrantIter_CoversGridOnce(t *testing.T) {
	g := seqGrid(t, 7, 5, grid.DefaultOptions())

	seen := make(map[int]int, g.Size())
	for region := 0; region < 9; region++ {
		start, err := g.NrantStart(region, 3)
		require.NoError(t, err)
		for v, ok := range g.NrantIter(3, grid.Offset(start)) {
			if ok {
				seen[v]++
			}
		}
	}

	require.Len(t, seen, g.Size())
	for v, n := range seen {
		require.Equal(t, 1, n, "value %d", v)
	}
}

func TestNrantIterMut(t *testing.T) {
	g := seqGrid(t, 3, 3, grid.DefaultOptions())

	for p := range g.QuadrantIterMut(grid.Offset(0)) {
		if p != nil {
			*p += 100
		}
	}

	want := []int{100, 101, 2, 103, 104, 5, 6, 7, 8}
	got := make([]int, 0, g.Size())
	for v := range g.Values() {
		got = append(got, v)
	}
	require.Equal(t, want, got)
}
