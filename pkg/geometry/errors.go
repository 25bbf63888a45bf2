package geometry

import "errors"

var (
	// ErrInvalidParameter is returned for non-positive dimensions, negative
	// subdivision counts and similar bad generator input.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAllocation is returned when the requested buffers cannot be sized
	// or addressed.
	ErrAllocation = errors.New("allocation failure")

	// ErrInvalidMesh is returned by Validate when buffers break the mesh
	// layout.
	ErrInvalidMesh = errors.New("invalid mesh")
)
