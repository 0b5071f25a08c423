// Package grid owns the grid reconstruction pipeline.
//
// Responsibilities: face and boundary extraction, anchor spacing
// measurement, candidate line generation, solid clipping, and orchestration
// of the two measurement axes.
// Key types: FaceGeometry, AxisMeasurement, Reconstructor.
//
// Dependency rule: grid may depend on geom and host, but never on monitor
// or cmd packages. No host-platform code is allowed in this package beyond
// calls through the host interfaces.
package grid
