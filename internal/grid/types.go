package grid

import (
	"github.com/atlasbim/gridline/internal/geom"
	"github.com/atlasbim/gridline/internal/host"
	"gonum.org/v1/gonum/spatial/r3"
)

// FaceGeometry is everything extracted from the host object in one pass:
// the solid, the bottom measurement face, its boundary loops, the bounding
// volume, and the stable face token anchors are resolved against. It lives
// for the duration of one reconstruction call.
type FaceGeometry struct {
	Solid         host.Solid
	Face          host.Face
	BoundaryLoops [][]geom.Curve
	Bounds        geom.Box
	FaceToken     string
}

// Elevation returns the Z level of the measurement plane.
func (g *FaceGeometry) Elevation() float64 {
	return g.Face.Plane().Elevation()
}

// BoundaryCurves flattens the boundary loops into a single curve list, the
// shape they take in reconstruction output.
func (g *FaceGeometry) BoundaryCurves() []geom.Curve {
	var out []geom.Curve
	for _, loop := range g.BoundaryLoops {
		out = append(out, loop...)
	}
	return out
}

// AxisMeasurement is the spacing/direction result for one measurement axis.
// Invariant: MeasureDir and LineDir are unit vectors with a zero dot
// product; Spacing is positive.
type AxisMeasurement struct {
	// Origin is the measurement base point.
	Origin r3.Vec

	// Spacing is the inferred distance between repeated grid lines.
	Spacing float64

	// MeasureDir is the unit direction the spacing was measured along.
	MeasureDir r3.Vec

	// LineDir is MeasureDir rotated 90 degrees in the face plane; grid
	// lines run along it.
	LineDir r3.Vec

	// ExtentLength is an estimated half-length for generated lines, from
	// the probe's own bounding extent.
	ExtentLength float64
}

// Axis names one measurement axis and the anchor index pair that bounds it.
type Axis struct {
	Name          string
	AnchorIndices [2]int
}

// The two orthogonal measurement axes. The index assignment is the
// convention hosts encode grid anchors under on a face: {1,5} along the
// primary direction, {2,6} along the orthogonal one.
var (
	AxisU = Axis{Name: "U", AnchorIndices: [2]int{1, 5}}
	AxisV = Axis{Name: "V", AnchorIndices: [2]int{2, 6}}
)
