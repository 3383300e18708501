package geodesic

import (
	"errors"

	"github.com/billy-4md/geodesic-distance/fastmarching"
	"github.com/billy-4md/geodesic-distance/rasterscan"
)

var (
	// ErrInvalidArgument covers shape mismatch, lambda out of [0,1], and
	// iter < 1 — every caller-supplied-parameter failure mode.
	ErrInvalidArgument = errors.New("geodesic: invalid argument")

	// ErrEmptySeed indicates the seed mask contains no nonzero cell. D is
	// still returned, fully populated as +Inf.
	ErrEmptySeed = errors.New("geodesic: seed mask contains no seed cell")

	// ErrAllocationFailure indicates the solver could not allocate its
	// O(N) scratch state. Go's runtime reports this as a panic rather
	// than a recoverable error for allocations this module performs
	// directly (make, append); this sentinel exists for the error
	// taxonomy's completeness and for any future caller-supplied-buffer
	// entry points that can detect the condition without panicking.
	ErrAllocationFailure = errors.New("geodesic: allocation failure")
)

// wrap maps a leaf package's sentinel error onto this package's taxonomy,
// preserving the original error in the chain for errors.Is/errors.As.
func wrap(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fastmarching.ErrEmptySeed), errors.Is(err, rasterscan.ErrEmptySeed):
		return errors.Join(ErrEmptySeed, err)
	case errors.Is(err, fastmarching.ErrShapeMismatch),
		errors.Is(err, fastmarching.ErrLambdaRange),
		errors.Is(err, rasterscan.ErrShapeMismatch),
		errors.Is(err, rasterscan.ErrLambdaRange),
		errors.Is(err, rasterscan.ErrIterRange):
		return errors.Join(ErrInvalidArgument, err)
	default:
		return err
	}
}
