package fastmarching

import "errors"

var (
	// ErrShapeMismatch indicates I or S does not match the grid's cell count.
	ErrShapeMismatch = errors.New("fastmarching: buffer length does not match grid shape")

	// ErrEmptySeed indicates the seed mask contains no nonzero cell.
	// Solve still returns a fully populated +Inf distance field alongside
	// this error, per spec.md §4.4 failure semantics.
	ErrEmptySeed = errors.New("fastmarching: mask contains no seed cell")

	// ErrLambdaRange indicates lambda fell outside [0,1].
	ErrLambdaRange = errors.New("fastmarching: lambda must be in [0,1]")
)
