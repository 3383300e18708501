package rasterscan

import "github.com/billy-4md/geodesic-distance/grid"

// Solve2D is a convenience wrapper over Solve for callers holding I and S
// as nested [][]float32 / [][]byte slices (row-major, y outer, x inner).
func Solve2D(i [][]float32, s [][]byte, lambda float64, iter int, opts ...Option) ([][]float32, error) {
	gi, flatI, err := grid.FlattenF32_2D(i)
	if err != nil {
		return nil, ErrShapeMismatch
	}
	gs, flatS, err := grid.FlattenU8_2D(s)
	if err != nil || !grid.SameDims(gi, gs) {
		return nil, ErrShapeMismatch
	}
	flatD, err := Solve(gi, flatI, flatS, lambda, iter, opts...)
	if flatD == nil {
		return nil, err
	}
	return grid.UnflattenF32_2D(gi, flatD), err
}

// Solve3D is the rank-3 analogue of Solve2D, with i/s laid out (z,y,x).
func Solve3D(i [][][]float32, s [][][]byte, lambda float64, iter int, opts ...Option) ([][][]float32, error) {
	gi, flatI, err := grid.FlattenF32_3D(i)
	if err != nil {
		return nil, ErrShapeMismatch
	}
	gs, flatS, err := grid.FlattenU8_3D(s)
	if err != nil || !grid.SameDims(gi, gs) {
		return nil, ErrShapeMismatch
	}
	flatD, err := Solve(gi, flatI, flatS, lambda, iter, opts...)
	if flatD == nil {
		return nil, err
	}
	return grid.UnflattenF32_3D(gi, flatD), err
}
