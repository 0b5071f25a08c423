package grid

import (
	"github.com/atlasbim/gridline/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// GenerateCandidates produces 2*count candidate lines from one axis
// measurement: count on each side of the measurement origin, at half-step
// offsets (i+0.5)*spacing along the measure direction. The half step places
// lines between grid boundaries rather than on the origin, matching the
// inferred tiling pattern.
//
// elevation pins every line to the measurement plane's Z level; halfLength
// sizes each line so it fully traverses the face.
func GenerateCandidates(m AxisMeasurement, elevation, halfLength float64, count int) []geom.Line {
	lines := make([]geom.Line, 0, 2*count)
	for i := 0; i < count; i++ {
		offset := (float64(i) + 0.5) * m.Spacing
		for _, sign := range []float64{-1, 1} {
			center := r3.Add(m.Origin, r3.Scale(sign*offset, m.MeasureDir))
			center.Z = elevation
			lines = append(lines, geom.Line{
				Center:  center,
				Dir:     m.LineDir,
				HalfLen: halfLength,
			})
		}
	}
	return lines
}

// CandidateHalfLength derives the half-length for generated lines: the
// larger of the configured multiple of the object's max planar extent and
// the probe's own extent estimate. The bounding-volume term dominates in
// practice and guarantees full traversal of the face.
func CandidateHalfLength(bounds geom.Box, m AxisMeasurement, multiplier float64) float64 {
	l := multiplier * bounds.MaxPlanarExtent()
	if m.ExtentLength > l {
		l = m.ExtentLength
	}
	return l
}
