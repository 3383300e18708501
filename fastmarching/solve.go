package fastmarching

import (
	"github.com/billy-4md/geodesic-distance/geocost"
	"github.com/billy-4md/geodesic-distance/grid"
	"github.com/billy-4md/geodesic-distance/pqueue"
	"github.com/billy-4md/geodesic-distance/seed"
)

// Solve computes the geodesic distance transform of I from the seed mask
// S using the Fast Marching Method, with edge costs weighted by lambda.
// spec.md §6 fixes the canonical FMM entry points to an implicit
// lambda=1; Solve accepts lambda explicitly so the root geodesic package
// can offer both that convenience wrapper and an explicit-lambda variant
// without duplicating the solver.
//
// Returns ErrEmptySeed (with D fully populated as +Inf) if S has no
// nonzero cell, per spec.md §4.4 failure semantics.
//
// Complexity: O(N log N) time, O(N) auxiliary memory.
func Solve(g *grid.Grid, I []float32, S []byte, lambda float64) ([]float32, error) {
	n := g.Len()
	if len(I) != n || len(S) != n {
		return nil, ErrShapeMismatch
	}
	if lambda < 0 || lambda > 1 {
		return nil, ErrLambdaRange
	}

	D, state, frontier, err := seed.Init(g, S)
	if err != nil {
		return D, ErrEmptySeed
	}

	sv := &solver{
		g:       g,
		I:       I,
		D:       D,
		state:   state,
		lambda:  lambda,
		units:   grid.UnitOffsets(g.Rank()),
		heap:    pqueue.New(n),
		coords:  make([]int, g.Rank()),
		ncoords: make([]int, g.Rank()),
		qcoords: make([]int, g.Rank()),
	}

	// Step 1: freeze seeds (already done by seed.Init) and relax their
	// neighbors — this both primes the heap and correctly combines
	// multiple adjacent seeds into a single multi-axis update.
	for _, idx := range frontier {
		sv.relax(idx)
	}

	// Step 2: repeatedly freeze the globally nearest Trial cell.
	for sv.heap.Len() > 0 {
		p, _, _ := sv.heap.ExtractMin()
		sv.state[p] = seed.Frozen
		sv.relax(p)
	}

	return sv.D, nil
}

// solver holds the mutable state for a single Solve call.
type solver struct {
	g      *grid.Grid
	I      []float32
	D      []float32
	state  []byte
	lambda float64
	units  [][]int
	heap   *pqueue.Heap

	coords  []int // scratch, reused across calls to avoid per-cell allocation
	ncoords []int
	qcoords []int // update's own scratch, distinct from coords/ncoords so
	// it can't clobber relax's base point while relax is still using it
}

// relax visits every in-bounds, non-Frozen neighbor of the newly-Frozen
// cell p and recomputes its eikonal update, inserting or decreasing its
// heap key as appropriate.
func (s *solver) relax(p int) {
	s.g.Coords(p, s.coords)
	for _, u := range s.units {
		if s.g.Step(s.coords, u, s.ncoords) {
			s.tryUpdate(s.g.Index(s.ncoords))
		}
		neg := negate(u)
		if s.g.Step(s.coords, neg, s.ncoords) {
			s.tryUpdate(s.g.Index(s.ncoords))
		}
	}
}

func (s *solver) tryUpdate(q int) {
	if s.state[q] == seed.Frozen {
		return
	}
	u, ok := s.update(q)
	if !ok {
		return
	}
	switch s.state[q] {
	case seed.Far:
		s.D[q] = float32(u)
		s.state[q] = seed.Trial
		s.heap.Insert(q, u)
	case seed.Trial:
		if u < float64(s.D[q]) {
			s.D[q] = float32(u)
			s.heap.DecreaseKey(q, u)
		}
	}
}

// update computes the eikonal update for cell q from its Frozen
// neighbors, picking on each axis the nearer of the two sides.
//
// Uses qcoords rather than coords: update is called from deep inside
// relax's neighbor loop, which still needs coords to hold relax's own
// base point for the rest of that loop.
func (s *solver) update(q int) (float64, bool) {
	s.g.Coords(q, s.qcoords)
	cands := make([]geocost.Candidate, 0, s.g.Rank())

	for _, u := range s.units {
		var best geocost.Candidate
		found := false
		for _, dir := range [2][]int{u, negate(u)} {
			if !s.g.Step(s.qcoords, dir, s.ncoords) {
				continue
			}
			n := s.g.Index(s.ncoords)
			if s.state[n] != seed.Frozen {
				continue
			}
			a := float64(s.D[n])
			if !found || a < best.A {
				best = geocost.Candidate{A: a, F: geocost.EdgeCost(s.I[q], s.I[n], 1.0, s.lambda)}
				found = true
			}
		}
		if found {
			cands = append(cands, best)
		}
	}

	if len(cands) == 0 {
		return 0, false
	}
	return geocost.Combine(cands), true
}

func negate(v []int) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}
