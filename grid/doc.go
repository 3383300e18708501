// Package grid provides a rank-generic dense grid view: linear<->multi-index
// conversion, bounds checking, and neighbor/sweep enumeration shared by the
// fast-marching and raster-scan solvers.
//
// A Grid never owns scalar data; it only describes shape. Callers pair a
// Grid with flat []float32/[]byte buffers (or a Field, see field.go) sized
// to Grid.Len(). Axis 0 is the slowest-varying axis and the last axis is
// the fastest-varying one, matching row-major layout ((z,y,x) for rank 3,
// (y,x) for rank 2).
//
// Two neighbor enumerations are exposed:
//
//   - UnitOffsets: the d canonical positive unit vectors, used to derive
//     axial (4-/6-connected) neighbor pairs for edge-cost propagation.
//   - SweepDirections: the 2^d sign tuples used to order raster-scan
//     sweeps, enumerated lexicographically for determinism.
package grid
