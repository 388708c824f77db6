package orient

import "errors"

var (
	// ErrNotApplicable reports that the source and destination orientations
	// imply the identity transform: there is nothing for this engine to do.
	// It is a legitimate negotiation outcome, not a fault.
	ErrNotApplicable = errors.New("orient: identity transform, nothing to do")

	// ErrUnsupportedGeometry reports that the requested change cannot be
	// realized without rescaling or resampling: mismatched destination
	// dimensions, an unresolvable pixel format, or a swap-class transform
	// on planes with non-square sample density.
	ErrUnsupportedGeometry = errors.New("orient: unsupported geometry")

	// ErrUnsupportedElementWidth reports a plane whose element size is
	// outside the supported set {1, 2, 4} bytes.
	ErrUnsupportedElementWidth = errors.New("orient: unsupported pixel layout")

	// ErrAllocationFailure reports that a destination frame could not be
	// obtained from the allocator. The current frame is dropped; the
	// stream remains usable.
	ErrAllocationFailure = errors.New("orient: destination frame allocation failed")
)
