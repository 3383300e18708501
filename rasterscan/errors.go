package rasterscan

import "errors"

var (
	// ErrShapeMismatch indicates I or S does not match the grid's cell count.
	ErrShapeMismatch = errors.New("rasterscan: buffer length does not match grid shape")

	// ErrEmptySeed indicates the seed mask contains no nonzero cell.
	// Solve still returns a fully populated +Inf distance field alongside
	// this error, matching package fastmarching's failure semantics.
	ErrEmptySeed = errors.New("rasterscan: mask contains no seed cell")

	// ErrLambdaRange indicates lambda fell outside [0,1].
	ErrLambdaRange = errors.New("rasterscan: lambda must be in [0,1]")

	// ErrIterRange indicates iter was < 1.
	ErrIterRange = errors.New("rasterscan: iter must be >= 1")
)
