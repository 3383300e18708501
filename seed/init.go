package seed

import (
	"math"

	"github.com/billy-4md/geodesic-distance/grid"
)

// Cell states for the fast-marching state machine (spec.md §3, §4.4).
const (
	Far byte = iota
	Trial
	Frozen
)

// Init builds the initial distance field and cell-state array for the
// fast-marching solver: every seed cell is Frozen at distance 0, every
// other cell is Far at +Inf. frontier lists the seed cells' linear
// indices in mask order, used by the solver to prime its heap.
//
// If S contains no nonzero cell, Init still returns a fully populated
// (all +Inf) distance field and a nil frontier, alongside ErrEmptySeed.
// Complexity: O(N).
func Init(g *grid.Grid, S []byte) (D []float32, state []byte, frontier []int, err error) {
	n := g.Len()
	if len(S) != n {
		return nil, nil, nil, ErrShapeMismatch
	}

	D = make([]float32, n)
	state = make([]byte, n)
	inf := float32(math.Inf(1))

	for i, s := range S {
		if s != 0 {
			D[i] = 0
			state[i] = Frozen
			frontier = append(frontier, i)
		} else {
			D[i] = inf
			state[i] = Far
		}
	}

	if len(frontier) == 0 {
		return D, state, nil, ErrEmptySeed
	}

	return D, state, frontier, nil
}

// InitDistances builds the initial distance field for the raster-scan
// solver, which needs no cell-state array. Semantics otherwise match
// Init, including the ErrEmptySeed contract.
// Complexity: O(N).
func InitDistances(g *grid.Grid, S []byte) (D []float32, frontier []int, err error) {
	D, _, frontier, err = Init(g, S)
	return D, frontier, err
}
