// Package geom provides the shared geometric value types used by the grid
// reconstruction pipeline: lines, segments, boxes, and planes built on
// gonum's r3 vectors.
//
// Dependency rule: geom sits at the bottom of the layer model and may not
// import any other internal package.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Epsilon is the length below which a segment is treated as numerical noise
// and discarded rather than reported.
const Epsilon = 1e-6

// Segment is a straight curve between two endpoints. It is the output unit
// of the clipping stage and the common currency of reconstructed grids.
type Segment struct {
	A, B r3.Vec
}

// Length returns the Euclidean distance between the segment endpoints.
func (s Segment) Length() float64 {
	return r3.Norm(r3.Sub(s.B, s.A))
}

// Start returns the first endpoint.
func (s Segment) Start() r3.Vec { return s.A }

// End returns the second endpoint.
func (s Segment) End() r3.Vec { return s.B }

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() r3.Vec {
	return r3.Scale(0.5, r3.Add(s.A, s.B))
}

// Direction returns the unit vector from A to B, or the zero vector for a
// degenerate segment.
func (s Segment) Direction() r3.Vec {
	d := r3.Sub(s.B, s.A)
	n := r3.Norm(d)
	if n < Epsilon {
		return r3.Vec{}
	}
	return r3.Scale(1/n, d)
}

// Curve is the minimal read surface shared by straight segments and
// host-native boundary curves. Reconstruction output is a []Curve.
type Curve interface {
	Start() r3.Vec
	End() r3.Vec
	Length() float64
}

// Line is an infinite-intent line realised as a centre point, a unit
// direction, and a half-length. Candidate grid lines are Lines before
// clipping turns them into Segments.
type Line struct {
	Center  r3.Vec
	Dir     r3.Vec
	HalfLen float64
}

// Segment materialises the line as a finite segment spanning
// Center ± HalfLen·Dir.
func (l Line) Segment() Segment {
	off := r3.Scale(l.HalfLen, l.Dir)
	return Segment{A: r3.Sub(l.Center, off), B: r3.Add(l.Center, off)}
}

// Extended returns a copy of the line with its half-length grown by margin.
// Clipping extends candidates so intersection artefacts at line ends fall
// outside the solid.
func (l Line) Extended(margin float64) Line {
	l.HalfLen += margin
	return l
}

// Box is an axis-aligned bounding volume.
type Box struct {
	Min, Max r3.Vec
}

// Size returns the per-axis extents of the box.
func (b Box) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Center returns the centre point of the box.
func (b Box) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// MaxPlanarExtent returns the larger of the X and Y spans. Candidate line
// lengths are sized from this so every line fully traverses the face.
func (b Box) MaxPlanarExtent() float64 {
	sz := b.Size()
	return math.Max(sz.X, sz.Y)
}

// IsEmpty reports whether the box has non-positive extent on any axis.
func (b Box) IsEmpty() bool {
	sz := b.Size()
	return sz.X <= 0 || sz.Y <= 0 || sz.Z <= 0
}

// Plane is a point-and-normal plane description.
type Plane struct {
	Origin r3.Vec
	Normal r3.Vec
}

// Elevation returns the Z coordinate of the plane origin. The pipeline
// measures on horizontal faces, where the origin Z is the grid elevation.
func (p Plane) Elevation() float64 {
	return p.Origin.Z
}

// Normalize returns v scaled to unit length, or the zero vector if v is
// shorter than Epsilon.
func Normalize(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n < Epsilon {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}

// PerpXY rotates v by 90 degrees within the XY plane: (x, y, z) -> (-y, x, 0).
// This is the measure-direction to line-direction rotation; the Z component
// is dropped because grid lines run within the horizontal face plane.
func PerpXY(v r3.Vec) r3.Vec {
	return r3.Vec{X: -v.Y, Y: v.X, Z: 0}
}

// NearlyEqual reports whether a and b differ by less than tol on every axis.
func NearlyEqual(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) < tol &&
		math.Abs(a.Y-b.Y) < tol &&
		math.Abs(a.Z-b.Z) < tol
}

// NearlyPerpendicular reports whether the dot product of two unit vectors is
// within tol of zero.
func NearlyPerpendicular(a, b r3.Vec, tol float64) bool {
	return math.Abs(r3.Dot(a, b)) < tol
}
