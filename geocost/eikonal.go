package geocost

import "math"

// zeroCost is the threshold below which an edge cost is treated as free:
// crossing it cannot raise the distance above the source, so it dominates
// any other candidate outright.
const zeroCost = 1e-9

// Candidate is one axis's upwind contribution to an eikonal update: a is
// the Frozen/already-computed neighbor's distance along that axis, f is
// the one-sided edge cost of reaching the cell being updated from it.
type Candidate struct {
	A float64
	F float64
}

// Combine solves the local upwind eikonal update for a cell given one
// Candidate per available axis (callers pass at most one candidate per
// axis — the nearer of the two sides — per spec.md §4.4 step 2).
//
// With a single candidate the update is the one-sided form u = a + f.
// With two or three candidates, u is the largest root of the weighted
// quadratic
//
//	sum_i (u-a_i)^2 / f_i^2 = 1
//
// which reduces to spec.md §4.2's (u-a)^2+(u-b)^2=f^2 when all f_i are
// equal. A solution is only accepted if u >= max(a_i) over the candidates
// used (the causality invariant in §4.2's closing sentence); otherwise the
// candidate with the largest A is discarded and the reduced set is
// retried, eventually falling back to a one-sided update.
//
// Returns +Inf if cands is empty (no Frozen/finite neighbor on any axis).
// Complexity: O(k^2) for k = len(cands) <= 3, i.e. effectively O(1).
func Combine(cands []Candidate) float64 {
	if len(cands) == 0 {
		return math.Inf(1)
	}

	// A zero-cost edge dominates: the cell can be reached at exactly that
	// neighbor's distance, and no combination of axes can do better since
	// every other term in the sum is non-negative.
	if a, ok := minZeroCost(cands); ok {
		return a
	}

	working := append([]Candidate(nil), cands...)
	for len(working) > 1 {
		u, ok := quadraticRoot(working)
		if ok && isCausal(u, working) {
			return u
		}
		working = dropMaxA(working)
	}

	return working[0].A + working[0].F
}

func minZeroCost(cands []Candidate) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, c := range cands {
		if c.F <= zeroCost && c.A < best {
			best = c.A
			found = true
		}
	}
	return best, found
}

// quadraticRoot solves sum_i (u-a_i)^2/f_i^2 = 1 for its larger root.
func quadraticRoot(cands []Candidate) (float64, bool) {
	var A, B, C float64
	for _, c := range cands {
		invF2 := 1 / (c.F * c.F)
		A += invF2
		B += -2 * c.A * invF2
		C += c.A * c.A * invF2
	}
	C -= 1

	disc := B*B - 4*A*C
	if disc < 0 {
		return 0, false
	}

	u := (-B + math.Sqrt(disc)) / (2 * A)
	return u, true
}

func isCausal(u float64, cands []Candidate) bool {
	const eps = 1e-7
	for _, c := range cands {
		if u < c.A-eps {
			return false
		}
	}
	return true
}

// dropMaxA removes the candidate with the largest A (ties broken by
// position) and returns the remaining slice.
func dropMaxA(cands []Candidate) []Candidate {
	maxIdx := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].A > cands[maxIdx].A {
			maxIdx = i
		}
	}
	out := make([]Candidate, 0, len(cands)-1)
	out = append(out, cands[:maxIdx]...)
	out = append(out, cands[maxIdx+1:]...)
	return out
}
