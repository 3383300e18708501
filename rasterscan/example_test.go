package rasterscan_test

import (
	"fmt"

	"github.com/billy-4md/geodesic-distance/rasterscan"
)

// ExampleSolve2D computes the 4-connected distance transform of a flat 3x3
// patch from a single center seed over two full sweep passes.
func ExampleSolve2D() {
	I := [][]float32{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	S := [][]byte{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}

	D, err := rasterscan.Solve2D(I, S, 0.0, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range D {
		fmt.Printf("%.2f %.2f %.2f\n", row[0], row[1], row[2])
	}
	// Output:
	// 1.71 1.00 1.71
	// 1.00 0.00 1.00
	// 1.71 1.00 1.71
}
