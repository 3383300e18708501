package grid

// EachInSweepOrder visits every cell index exactly once in the traversal
// order dictated by sign: axis k is visited ascending if sign[k] > 0 and
// descending if sign[k] < 0, with axis 0 cycling slowest (an odometer with
// axis Rank()-1 as the fastest wheel, matching the grid's row-major
// layout). visit is called with the linear index of each cell.
//
// This order guarantees that for every axis k and every visited cell q,
// the neighbor of q at offset -sign[k] along axis k (if in bounds) has
// already been visited — the causal "upwind" property raster-scan sweeps
// rely on.
//
// Complexity: O(N) with zero extra allocation beyond a Rank()-sized
// coordinate scratch buffer.
func (g *Grid) EachInSweepOrder(sign []int, visit func(idx int)) {
	rank := g.Rank()
	coords := make([]int, rank)
	for k := 0; k < rank; k++ {
		if sign[k] > 0 {
			coords[k] = 0
		} else {
			coords[k] = g.dims[k] - 1
		}
	}

	for count := 0; count < g.n; count++ {
		visit(g.Index(coords))

		// Odometer increment: fastest axis (last) advances first; a
		// completed cycle carries into the next-slower axis.
		for k := rank - 1; k >= 0; k-- {
			if sign[k] > 0 {
				coords[k]++
				if coords[k] < g.dims[k] {
					break
				}
				coords[k] = 0
			} else {
				coords[k]--
				if coords[k] >= 0 {
					break
				}
				coords[k] = g.dims[k] - 1
			}
		}
	}
}
