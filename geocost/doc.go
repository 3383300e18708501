// Package geocost implements the edge-cost kernel and eikonal update
// combiner shared by the fast-marching and raster-scan solvers.
//
// EdgeCost blends geometric displacement and intensity variation into a
// single per-edge cost; Combine solves the local upwind eikonal update
// given one candidate per axis, generalizing the two- and three-axis
// quadratic forms in spec.md §4.2 to any number of simultaneously
// available axes via a weighted-quadratic reduction, discarding the
// candidate with the largest frozen-neighbor distance whenever including
// it would violate causality (the combined root must be >= every
// candidate's distance) and retrying with the smaller set.
package geocost
