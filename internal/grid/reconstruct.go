package grid

import (
	"fmt"

	"github.com/atlasbim/gridline/internal/geom"
	"github.com/atlasbim/gridline/internal/host"
	"github.com/google/uuid"
)

// Reconstructor sequences the reconstruction pipeline: face extraction, per
// axis measurement, candidate generation, and solid clipping. It holds the
// measurement context explicitly so the pipeline can run against any host
// session or a test double.
//
// Reconstruction mutates shared document state transiently through the
// probe lifecycle; callers must serialise calls per document.
type Reconstructor struct {
	mc  host.Context
	cfg *Config
}

// NewReconstructor builds a Reconstructor over the given measurement
// context. The config is validated up front; pass DefaultConfig() for the
// canonical tuning.
func NewReconstructor(mc host.Context, cfg *Config) (*Reconstructor, error) {
	if mc == nil {
		return nil, fmt.Errorf("grid: nil measurement context")
	}
	if cfg == nil {
		return nil, fmt.Errorf("grid: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("grid: invalid config: %w", err)
	}
	return &Reconstructor{mc: mc, cfg: cfg}, nil
}

// Reconstruct infers the grid curves embedded on the object's bottom face.
//
// When the object implements host.NativeGridSource the host's own grid
// lines are returned and the inference pipeline is bypassed entirely; a
// native-path failure falls back to inference rather than aborting.
//
// Otherwise the pipeline measures both axes from their anchor pairs. An
// unmeasurable axis contributes no lines; both axes unmeasurable yields an
// empty result with a nil error — "no inferable grid" is a legitimate
// outcome, not a failure. With includeBoundary set, the face's boundary
// curves are appended even when no grid lines were found.
func (r *Reconstructor) Reconstruct(obj host.Object, includeBoundary bool) ([]geom.Curve, error) {
	runID := uuid.New().String()

	if native, ok := obj.(host.NativeGridSource); ok {
		curves, err := native.NativeGridLines(includeBoundary)
		if err == nil {
			Diagf("run %s: native grid source served %d curves", runID, len(curves))
			return curves, nil
		}
		Opsf("run %s: native grid source failed, falling back to inference: %v", runID, err)
	}

	g, err := ExtractFaceGeometry(obj)
	if err != nil {
		return nil, fmt.Errorf("grid reconstruction %s: %w", runID, err)
	}

	clipper := NewSolidClipper(r.cfg.MinSegmentLength, r.cfg.ClipExtensionMargin)
	var curves []geom.Curve
	measured := 0
	for _, axis := range []Axis{AxisU, AxisV} {
		m, ok := MeasureAxis(r.mc, g.FaceToken, axis, r.cfg)
		if !ok {
			continue
		}
		measured++

		halfLen := CandidateHalfLength(g.Bounds, m, r.cfg.LineLengthMultiplier)
		lines := GenerateCandidates(m, g.Elevation(), halfLen, r.cfg.CandidateLineCount)
		segs := clipper.ClipLines(g.Solid, lines)
		Diagf("run %s: axis %s produced %d segments from %d candidates",
			runID, axis.Name, len(segs), len(lines))
		for _, s := range segs {
			curves = append(curves, s)
		}
	}

	if includeBoundary {
		curves = append(curves, g.BoundaryCurves()...)
	}

	processed, failed, empty, kept, discarded := clipper.Stats()
	Opsf("run %s: face %s: %d/2 axes measured, %d curves (clip: %d lines, %d failed, %d empty, %d kept, %d noise)",
		runID, g.FaceToken, measured, len(curves), processed, failed, empty, kept, discarded)
	return curves, nil
}
