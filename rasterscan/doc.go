// Package rasterscan implements the fast-sweeping geodesic solver: iterated
// directional passes over the grid, each honoring the causal (upwind)
// structure of one sweep direction, converging towards the Fast Marching
// Method's result without a heap.
//
// Solve is rank-generic over package grid's Grid abstraction, mirroring
// package fastmarching's structure; the 2D and 3D entry points reshape
// nested slices into the flat buffers Solve expects and back.
package rasterscan
