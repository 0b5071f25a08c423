package grid

import (
	"math"

	"github.com/atlasbim/gridline/internal/geom"
	"github.com/atlasbim/gridline/internal/host"
	"gonum.org/v1/gonum/spatial/r3"
)

// probeGuard owns a measurement probe for the duration of one axis
// measurement. The probe mutates shared document state, so release must
// happen on every exit path; Close is idempotent and safe to defer
// immediately after acquisition.
type probeGuard struct {
	mc     host.Context
	probe  host.Probe
	closed bool
}

// acquireProbe creates a probe between two anchors and wraps it in a guard.
func acquireProbe(mc host.Context, a, b host.Anchor) (*probeGuard, error) {
	p, err := mc.CreateProbe(a, b)
	if err != nil {
		return nil, err
	}
	return &probeGuard{mc: mc, probe: p}, nil
}

// Close deletes the probe from the document. Delete failures are logged,
// not returned: by the time Close runs the measurement outcome is already
// decided and a failed delete must not mask it.
func (g *probeGuard) Close() {
	if g == nil || g.closed {
		return
	}
	g.closed = true
	if err := g.mc.DeleteProbe(g.probe); err != nil {
		Opsf("probe delete failed: %v", err)
	}
}

// MeasureAxis infers spacing and direction for one axis from the anchor pair
// encoded under the face token. The result is soft: ok is false when the
// axis is unmeasurable (unresolved anchors, probe failure, degenerate
// reading) and the caller skips the axis. MeasureAxis never panics through
// and never leaves a probe in the document.
func MeasureAxis(mc host.Context, faceToken string, axis Axis, cfg *Config) (m AxisMeasurement, ok bool) {
	anchors := make([]host.Anchor, 0, 2)
	for _, idx := range axis.AnchorIndices {
		ref := host.AnchorRef(faceToken, idx)
		a, found := mc.ResolveAnchor(ref)
		if !found {
			Diagf("axis %s: anchor %s did not resolve, skipping", axis.Name, ref)
			continue
		}
		anchors = append(anchors, a)
	}
	if len(anchors) < 2 {
		Opsf("axis %s: %d of 2 anchors resolved, axis unmeasurable", axis.Name, len(anchors))
		return AxisMeasurement{}, false
	}

	// A panicking host call must degrade to "no measurement", not abort
	// the whole reconstruction. The guard's deferred Close still runs
	// after recovery, so the probe cannot leak.
	defer func() {
		if r := recover(); r != nil {
			Opsf("axis %s: measurement panic recovered: %v", axis.Name, r)
			m, ok = AxisMeasurement{}, false
		}
	}()

	guard, err := acquireProbe(mc, anchors[0], anchors[1])
	if err != nil {
		Opsf("axis %s: probe creation failed: %v", axis.Name, err)
		return AxisMeasurement{}, false
	}
	defer guard.Close()

	// Creation-time probe values are not authoritative. Nudge the probe to
	// dirty it, then force a regeneration pass so the read below reflects
	// true geometry.
	if err := guard.probe.Nudge(r3.Vec{X: cfg.ProbeNudgeDistance}); err != nil {
		Opsf("axis %s: probe nudge failed: %v", axis.Name, err)
		return AxisMeasurement{}, false
	}
	if err := mc.Regenerate(); err != nil {
		Opsf("axis %s: regenerate failed: %v", axis.Name, err)
		return AxisMeasurement{}, false
	}

	spacing, err := guard.probe.Value()
	if err != nil {
		Opsf("axis %s: probe value read failed: %v", axis.Name, err)
		return AxisMeasurement{}, false
	}
	if spacing <= 0 || math.IsNaN(spacing) {
		Opsf("axis %s: degenerate spacing %f, axis unmeasurable", axis.Name, spacing)
		return AxisMeasurement{}, false
	}

	origin, err := guard.probe.Origin()
	if err != nil {
		Opsf("axis %s: probe origin read failed: %v", axis.Name, err)
		return AxisMeasurement{}, false
	}
	rawDir, err := guard.probe.Direction()
	if err != nil {
		Opsf("axis %s: probe direction read failed: %v", axis.Name, err)
		return AxisMeasurement{}, false
	}
	measureDir := geom.Normalize(rawDir)
	if measureDir == (r3.Vec{}) {
		Opsf("axis %s: zero-length probe direction, axis unmeasurable", axis.Name)
		return AxisMeasurement{}, false
	}
	lineDir := geom.Normalize(geom.PerpXY(measureDir))
	if lineDir == (r3.Vec{}) {
		// Probe runs parallel to Z; there is no in-plane perpendicular.
		Opsf("axis %s: probe direction %v has no planar perpendicular", axis.Name, measureDir)
		return AxisMeasurement{}, false
	}

	extent := cfg.FallbackExtent
	if box, found := guard.probe.Extent(); found {
		if e := box.MaxPlanarExtent(); e > 0 {
			extent = e
		}
	}

	Diagf("axis %s: spacing=%.4f origin=%v measureDir=%v extent=%.2f",
		axis.Name, spacing, origin, measureDir, extent)
	return AxisMeasurement{
		Origin:       origin,
		Spacing:      spacing,
		MeasureDir:   measureDir,
		LineDir:      lineDir,
		ExtentLength: extent,
	}, true
}
