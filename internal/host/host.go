// Package host defines the boundary surface between the grid reconstruction
// pipeline and the CAD platform that owns the model. Everything the pipeline
// needs from the platform — element geometry, anchor resolution, measurement
// probes, solid intersection — is expressed as an interface here so the core
// can run against a live host session or an in-memory test double.
//
// Dependency rule: host may depend on geom only. The pipeline packages depend
// on host, never the other way around.
package host

import (
	"github.com/atlasbim/gridline/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Object is the contract a host element must satisfy to be a reconstruction
// input: a solid body, a designated bottom face, and a bounding volume.
type Object interface {
	// Solid resolves the 3D solid body of the element. An element with no
	// solid geometry returns an error.
	Solid() (Solid, error)

	// BottomFace resolves the bottom-most face of the element, the
	// measurement plane for grid inference. Returns an error if the element
	// exposes no bottom face reference.
	BottomFace() (Face, error)

	// Bounds returns the axis-aligned bounding volume of the whole element.
	Bounds() (geom.Box, error)
}

// Face is a single face of a host solid.
type Face interface {
	// IsPlanar reports whether the face lies in a single plane. Grid
	// reconstruction only operates on planar faces.
	IsPlanar() bool

	// Plane returns the face's plane. Undefined when IsPlanar is false.
	Plane() geom.Plane

	// EdgeLoops returns the boundary curve loops of the face, outermost
	// first. A degenerate face may have zero loops.
	EdgeLoops() [][]geom.Curve

	// StableRef returns the opaque identity token for this face. It is
	// stable within one document state and is the base for anchor
	// sub-references.
	StableRef() string
}

// Solid is a host solid body supporting curve intersection.
type Solid interface {
	// IntersectLine returns the portions of the line lying inside the
	// solid, ordered along the line. The result may be empty.
	IntersectLine(l geom.Line) ([]geom.Segment, error)
}

// Anchor is a concrete geometric sub-reference resolved from a face token
// plus a small integer index. Anchors bound spacing measurements.
type Anchor interface {
	// Position returns the anchor's location in model space.
	Position() r3.Vec
}

// Context is the active measurement context: the document plus the view the
// probe is placed in. Probe lifecycle calls mutate shared document state, so
// callers must serialise reconstruction per document.
type Context interface {
	// ResolveAnchor resolves a sub-reference string (face token + "/" +
	// index) to a concrete anchor. The second return is false when the
	// reference does not resolve; this is a soft failure.
	ResolveAnchor(ref string) (Anchor, bool)

	// CreateProbe places a temporary directional-distance probe between two
	// anchors in the active view. The caller owns the probe and must delete
	// it before returning, on every path.
	CreateProbe(a, b Anchor) (Probe, error)

	// DeleteProbe removes a probe from the document.
	DeleteProbe(p Probe) error

	// Regenerate forces a document recomputation pass so probe values
	// reflect true geometry rather than creation-time defaults.
	Regenerate() error
}

// Probe is a temporary directional-distance construct between two anchors.
type Probe interface {
	// Nudge translates the probe by a small displacement. Used to dirty the
	// probe so the next Regenerate recomputes its value.
	Nudge(offset r3.Vec) error

	// Value returns the measured scalar distance between the anchors.
	Value() (float64, error)

	// Origin returns the probe's base point.
	Origin() (r3.Vec, error)

	// Direction returns the probe's own line direction, not necessarily
	// normalised.
	Direction() (r3.Vec, error)

	// Extent returns the probe's bounding extent in the view, when the host
	// exposes one. The second return is false when no extent is available.
	Extent() (geom.Box, bool)
}

// NativeGridSource is the optional fast-path capability: hosts that expose
// grid lines natively implement it on their Object, and the orchestrator
// bypasses the inference pipeline entirely.
type NativeGridSource interface {
	// NativeGridLines returns the host's own grid curves for the object,
	// with boundary curves appended when includeBoundary is set.
	NativeGridLines(includeBoundary bool) ([]geom.Curve, error)
}
