// Package fastmarching implements the Fast Marching Method geodesic
// solver: a single monotone sweep driven by an indexed min-heap (package
// pqueue) that freezes cells in non-decreasing distance order.
//
// Solve is rank-generic over package grid's Grid abstraction; the 2D and
// 3D public entry points in the root geodesic package reshape nested
// slices into the flat buffers Solve expects and back.
//
// Complexity: O(N log N) time, O(N) auxiliary memory (cell state array
// plus heap position table and entries), per spec.md §4.4.
package fastmarching
