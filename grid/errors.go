package grid

import "errors"

// Sentinel errors returned by the grid package. Callers should match them
// with errors.Is; messages are prefixed with "grid:" for easy grepping.
var (
	// ErrBadRank indicates a requested rank is outside the supported {2,3} set.
	ErrBadRank = errors.New("grid: rank must be 2 or 3")

	// ErrBadExtent indicates a non-positive axis extent was supplied.
	ErrBadExtent = errors.New("grid: extents must be positive")

	// ErrShapeMismatch indicates a buffer length does not equal Grid.Len().
	ErrShapeMismatch = errors.New("grid: buffer length does not match grid shape")

	// ErrIndexOutOfRange indicates a coordinate or linear index is out of bounds.
	// Callers should treat this as a programmer error, not a recoverable one.
	ErrIndexOutOfRange = errors.New("grid: index out of range")

	// ErrRankMismatch indicates a coordinate slice length does not equal Grid.Rank().
	ErrRankMismatch = errors.New("grid: coordinate rank mismatch")
)
