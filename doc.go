// Package geodesic computes geodesic distance transforms on dense 2D and
// 3D scalar grids: given an intensity field I and a binary seed mask S, it
// finds the shortest-path distance from every cell to its nearest seed,
// where path cost blends spatial displacement against intensity
// variation.
//
// Two solver families are offered, each with 2D and 3D entry points:
//
//   - FastMarching2D / FastMarching3D — package fastmarching's single
//     causal min-heap sweep, O(N log N).
//   - RasterScan2D / RasterScan3D — package rasterscan's iterated
//     directional sweeps, O(iter * N).
//
// Both read I (single-precision intensity) and S (byte seed mask, nonzero
// marks a seed) and write a same-shaped D (single-precision distance).
// Shapes of I and S must match exactly; the canonical FMM entry points use
// an implicit lambda=1 (gradient-only), matching the reference
// implementation this module supersedes; FastMarching2DWithLambda and
// FastMarching3DWithLambda accept it explicitly for callers that need a
// blended cost.
package geodesic
