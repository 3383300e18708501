package rasterscan

import (
	"math"

	"github.com/billy-4md/geodesic-distance/geocost"
	"github.com/billy-4md/geodesic-distance/grid"
	"github.com/billy-4md/geodesic-distance/seed"
)

// Solve computes the geodesic distance transform of I from the seed mask S
// by iter full passes of 2^rank directional sweeps, each honoring the
// causal order of its sweep direction. lambda weights the edge-cost
// kernel as in package fastmarching. Diagonal upwind neighbors are
// consulted only if a WithDiagonals option is supplied; the canonical
// behavior is axial (4-/6-connected) for determinism.
//
// Returns ErrEmptySeed (with D fully populated as +Inf) if S has no
// nonzero cell.
//
// Complexity: O(iter * 2^rank * N) time, O(N) auxiliary memory.
func Solve(g *grid.Grid, I []float32, S []byte, lambda float64, iter int, opts ...Option) ([]float32, error) {
	n := g.Len()
	if len(I) != n || len(S) != n {
		return nil, ErrShapeMismatch
	}
	if lambda < 0 || lambda > 1 {
		return nil, ErrLambdaRange
	}
	if iter < 1 {
		return nil, ErrIterRange
	}

	D, _, err := seed.InitDistances(g, S)
	if err != nil {
		return D, ErrEmptySeed
	}

	o := resolveOptions(opts)
	sv := &solver{
		g:       g,
		I:       I,
		D:       D,
		lambda:  lambda,
		units:   grid.UnitOffsets(g.Rank()),
		diag:    o.diagonals,
		coords:  make([]int, g.Rank()),
		ncoords: make([]int, g.Rank()),
	}

	sweeps := grid.SweepDirections(g.Rank())
	for p := 0; p < iter; p++ {
		for _, sign := range sweeps {
			sv.sweep(sign)
		}
	}

	return sv.D, nil
}

type solver struct {
	g      *grid.Grid
	I      []float32
	D      []float32
	lambda float64
	units  [][]int
	diag   bool

	coords  []int
	ncoords []int
}

func (s *solver) sweep(sign []int) {
	var diagonals []grid.DiagonalCombo
	if s.diag {
		diagonals = grid.DiagonalOffsets(sign)
	}

	s.g.EachInSweepOrder(sign, func(q int) {
		s.g.Coords(q, s.coords)
		cands := make([]geocost.Candidate, 0, s.g.Rank())

		for k, u := range s.units {
			// Ascending sweeps (sign[k]>0) visit coord-1 before coord, so
			// the already-visited predecessor sits at -u. Descending
			// sweeps visit coord+1 first, so the predecessor sits at +u.
			upwind := negateOffsets(u)
			if sign[k] < 0 {
				upwind = u
			}
			if !s.g.Step(s.coords, upwind, s.ncoords) {
				continue
			}
			n := s.g.Index(s.ncoords)
			if math.IsInf(float64(s.D[n]), 1) {
				// Not reached yet: an +Inf distance would turn the
				// quadratic solve into NaN.
				continue
			}
			cands = append(cands, geocost.Candidate{
				A: float64(s.D[n]),
				F: geocost.EdgeCost(s.I[q], s.I[n], 1.0, s.lambda),
			})
		}

		u := geocost.Combine(cands)

		for _, combo := range diagonals {
			if !s.g.Step(s.coords, combo.Offset, s.ncoords) {
				continue
			}
			n := s.g.Index(s.ncoords)
			d := float64(s.D[n]) + geocost.EdgeCost(s.I[q], s.I[n], combo.Length, s.lambda)
			if d < u {
				u = d
			}
		}

		if u < float64(s.D[q]) {
			s.D[q] = float32(u)
		}
	})
}

// negateOffsets mirrors fastmarching's helper of the same shape: sign[k]<0
// means this sweep visits axis k descending, so the upwind predecessor
// (already visited) lies at +1, not the canonical -1 unit offset.
func negateOffsets(v []int) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}
