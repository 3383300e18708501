package rasterscan

// Option configures a Solve call beyond its required lambda/iter
// parameters. With no options, Solve runs the canonical 4-/6-connected
// raster-scan described by the eikonal combiner.
type Option func(*options)

type options struct {
	diagonals bool
}

// WithDiagonals enables non-axial upwind neighbors (8-connectivity in 2D,
// 26-connectivity in 3D minus the axial set already covered). Each
// diagonal predecessor contributes an extra one-sided candidate of
// geometric length sqrt(popcount), min-combined against the axial
// quadratic-combiner result rather than folded into it, since the
// combiner's formula is defined per-axis, not per-neighbor.
func WithDiagonals() Option {
	return func(o *options) { o.diagonals = true }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, set := range opts {
		set(&o)
	}
	return o
}
