package seed

import "errors"

var (
	// ErrShapeMismatch indicates the seed mask length does not match the grid's cell count.
	ErrShapeMismatch = errors.New("seed: mask length does not match grid shape")

	// ErrEmptySeed indicates the seed mask contains no nonzero cell. Per
	// spec.md §4.4/§4.5, this is reported rather than failing silently;
	// Init and InitDistances still return a fully-populated +Inf distance
	// field alongside this error.
	ErrEmptySeed = errors.New("seed: mask contains no seed cell")
)
