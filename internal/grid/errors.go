package grid

import "errors"

// Hard failures. Any of these aborts the whole reconstruction call: without
// a planar measurement face there is nothing to infer against.
var (
	// ErrGeometryUnavailable means the object resolved no solid body.
	ErrGeometryUnavailable = errors.New("grid: object has no solid geometry")

	// ErrNoBottomFace means the object exposed no bottom face reference.
	ErrNoBottomFace = errors.New("grid: object has no bottom face")

	// ErrNonPlanarFace means the bottom face is not planar.
	ErrNonPlanarFace = errors.New("grid: bottom face is not planar")
)
