package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billy-4md/geodesic-distance/grid"
)

func TestEachInSweepOrder_VisitsEveryCellOnce(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)

	for _, sign := range grid.SweepDirections(2) {
		seen := make(map[int]bool, g.Len())
		var order []int
		g.EachInSweepOrder(sign, func(idx int) {
			require.False(t, seen[idx], "cell visited twice")
			seen[idx] = true
			order = append(order, idx)
		})
		require.Len(t, order, g.Len())
	}
}

func TestEachInSweepOrder_UpwindCausality(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)

	coords := make([]int, 2)
	upwind := make([]int, 2)
	for _, sign := range grid.SweepDirections(2) {
		visitedBefore := make(map[int]bool, g.Len())
		g.EachInSweepOrder(sign, func(idx int) {
			g.Coords(idx, coords)
			for axis := 0; axis < 2; axis++ {
				off := []int{0, 0}
				off[axis] = -sign[axis]
				if g.Step(coords, off, upwind) {
					nIdx := g.Index(upwind)
					require.True(t, visitedBefore[nIdx],
						"upwind neighbor along axis %d must precede cell %v in sweep %v", axis, coords, sign)
				}
			}
			visitedBefore[idx] = true
		})
	}
}
