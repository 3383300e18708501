package fastmarching_test

import (
	"math/rand"
	"testing"

	"github.com/billy-4md/geodesic-distance/fastmarching"
	"github.com/billy-4md/geodesic-distance/grid"
)

// BenchmarkSolve_2D measures full-field FMM solve cost on a square grid
// with a single corner seed and a pseudo-random intensity field.
func BenchmarkSolve_2D(b *testing.B) {
	const side = 128
	g, err := grid.New(side, side)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	I := make([]float32, side*side)
	for i := range I {
		I[i] = rng.Float32()
	}
	S := make([]byte, side*side)
	S[0] = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fastmarching.Solve(g, I, S, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_3D is BenchmarkSolve_2D's volumetric counterpart.
func BenchmarkSolve_3D(b *testing.B) {
	const side = 24
	g, err := grid.New(side, side, side)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	n := side * side * side
	I := make([]float32, n)
	for i := range I {
		I[i] = rng.Float32()
	}
	S := make([]byte, n)
	S[0] = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fastmarching.Solve(g, I, S, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}
