package grid_test

import (
	"fmt"

	"github.com/billy-4md/geodesic-distance/grid"
)

// ExampleGrid_EachInSweepOrder demonstrates the four 2D sweep directions
// visiting a 2x2 grid in their respective odometer orders.
func ExampleGrid_EachInSweepOrder() {
	g, _ := grid.New(2, 2)
	for _, sign := range grid.SweepDirections(2) {
		var order [][]int
		coords := make([]int, 2)
		g.EachInSweepOrder(sign, func(idx int) {
			g.Coords(idx, coords)
			order = append(order, []int{coords[0], coords[1]})
		})
		fmt.Println(sign, order)
	}
	// Output:
	// [-1 -1] [[1 1] [1 0] [0 1] [0 0]]
	// [-1 1] [[1 0] [1 1] [0 0] [0 1]]
	// [1 -1] [[0 1] [0 0] [1 1] [1 0]]
	// [1 1] [[0 0] [0 1] [1 0] [1 1]]
}
