package geodesic_test

import (
	"math/rand"
	"testing"

	"github.com/billy-4md/geodesic-distance"
)

func randomField2D(side int, rng *rand.Rand) ([][]float32, [][]byte) {
	I := make([][]float32, side)
	S := make([][]byte, side)
	for y := range I {
		I[y] = make([]float32, side)
		S[y] = make([]byte, side)
		for x := range I[y] {
			I[y][x] = rng.Float32()
		}
	}
	S[0][0] = 1
	return I, S
}

// BenchmarkFastMarching2D measures the public 2D FMM entry point's
// end-to-end cost, including nested-slice reshaping.
func BenchmarkFastMarching2D(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	I, S := randomField2D(128, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := geodesic.FastMarching2D(I, S); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRasterScan2D is BenchmarkFastMarching2D's raster-scan
// counterpart at 4 passes.
func BenchmarkRasterScan2D(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	I, S := randomField2D(128, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := geodesic.RasterScan2D(I, S, 0.5, 4); err != nil {
			b.Fatal(err)
		}
	}
}
