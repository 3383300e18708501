package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billy-4md/geodesic-distance/grid"
)

func TestUnitOffsets(t *testing.T) {
	offs := grid.UnitOffsets(3)
	require.Len(t, offs, 3)
	require.Equal(t, []int{1, 0, 0}, offs[0])
	require.Equal(t, []int{0, 1, 0}, offs[1])
	require.Equal(t, []int{0, 0, 1}, offs[2])
}

func TestSweepDirections2D(t *testing.T) {
	dirs := grid.SweepDirections(2)
	require.Equal(t, [][]int{
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}, dirs)
}

func TestSweepDirections3D(t *testing.T) {
	dirs := grid.SweepDirections(3)
	require.Len(t, dirs, 8)
	// First and last are the all-negative and all-positive corners.
	require.Equal(t, []int{-1, -1, -1}, dirs[0])
	require.Equal(t, []int{1, 1, 1}, dirs[7])
}

func TestDiagonalOffsets2D(t *testing.T) {
	combos := grid.DiagonalOffsets([]int{1, 1})
	require.Len(t, combos, 1)
	require.Equal(t, []int{-1, -1}, combos[0].Offset)
	require.InDelta(t, 1.4142135623730951, combos[0].Length, 1e-12)
}

func TestDiagonalOffsets3D(t *testing.T) {
	combos := grid.DiagonalOffsets([]int{1, 1, 1})
	// C(3,2) face diagonals + C(3,3) corner diagonal = 3 + 1 = 4.
	require.Len(t, combos, 4)
	for _, c := range combos {
		nonZero := 0
		for _, v := range c.Offset {
			if v != 0 {
				nonZero++
			}
		}
		require.GreaterOrEqual(t, nonZero, 2)
	}
}
