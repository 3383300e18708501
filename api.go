package geodesic

import (
	"github.com/billy-4md/geodesic-distance/fastmarching"
	"github.com/billy-4md/geodesic-distance/rasterscan"
)

// fmmImplicitLambda is the gradient-only weight the canonical FMM entry
// points use, matching the reference implementation (spec §6).
const fmmImplicitLambda = 1.0

// FastMarching2D computes the Fast Marching Method distance transform of a
// 2D intensity field under the implicit lambda=1 (gradient-only) cost. Use
// FastMarching2DWithLambda for a blended spatial/intensity cost.
func FastMarching2D(i [][]float32, s [][]byte) ([][]float32, error) {
	d, err := fastmarching.Solve2D(i, s, fmmImplicitLambda)
	return d, wrap(err)
}

// FastMarching2DWithLambda is FastMarching2D with an explicit lambda in
// [0,1] weighting spatial displacement (0) against intensity variation (1).
func FastMarching2DWithLambda(i [][]float32, s [][]byte, lambda float64) ([][]float32, error) {
	d, err := fastmarching.Solve2D(i, s, lambda)
	return d, wrap(err)
}

// FastMarching3D is FastMarching2D's volumetric counterpart, i/s laid out
// (z,y,x).
func FastMarching3D(i [][][]float32, s [][][]byte) ([][][]float32, error) {
	d, err := fastmarching.Solve3D(i, s, fmmImplicitLambda)
	return d, wrap(err)
}

// FastMarching3DWithLambda is FastMarching2DWithLambda's volumetric
// counterpart.
func FastMarching3DWithLambda(i [][][]float32, s [][][]byte, lambda float64) ([][][]float32, error) {
	d, err := fastmarching.Solve3D(i, s, lambda)
	return d, wrap(err)
}

// RasterScan2D computes the raster-scan distance transform of a 2D
// intensity field with lambda in [0,1] and iter full directional passes.
// Pass WithDiagonals (re-exported from package rasterscan) to enable
// 8-connectivity.
func RasterScan2D(i [][]float32, s [][]byte, lambda float64, iter int, opts ...rasterscan.Option) ([][]float32, error) {
	d, err := rasterscan.Solve2D(i, s, lambda, iter, opts...)
	return d, wrap(err)
}

// RasterScan3D is RasterScan2D's volumetric counterpart, i/s laid out
// (z,y,x). Pass WithDiagonals for 26-connectivity.
func RasterScan3D(i [][][]float32, s [][][]byte, lambda float64, iter int, opts ...rasterscan.Option) ([][][]float32, error) {
	d, err := rasterscan.Solve3D(i, s, lambda, iter, opts...)
	return d, wrap(err)
}

// WithDiagonals re-exports rasterscan.WithDiagonals so callers need not
// import package rasterscan directly for the common case.
func WithDiagonals() rasterscan.Option {
	return rasterscan.WithDiagonals()
}
