package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atlasbim/gridline/internal/geom"
	"github.com/atlasbim/gridline/internal/host"
	"github.com/atlasbim/gridline/internal/host/hostfake"
)

func testConfig() *Config {
	return &Config{
		CandidateLineCount:   150,
		LineLengthMultiplier: 2.0,
		ClipExtensionMargin:  5000,
		MinSegmentLength:     1e-6,
		ProbeNudgeDistance:   0.1,
		FallbackExtent:       5.0,
	}
}

func TestMeasureAxis_Success(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)
	ctx := hostfake.NewContext(slab, 2, 1.5)

	m, ok := MeasureAxis(ctx, slab.FaceToken, AxisU, testConfig())
	require.True(t, ok, "U axis should be measurable")

	assert.InDelta(t, 2.0, m.Spacing, 1e-9, "spacing should equal pitchU")
	assert.InDelta(t, 1.0, r3.Norm(m.MeasureDir), 1e-9, "measure direction should be unit length")
	assert.InDelta(t, 1.0, r3.Norm(m.LineDir), 1e-9, "line direction should be unit length")
	assert.True(t, geom.NearlyPerpendicular(m.MeasureDir, m.LineDir, 1e-9),
		"line direction must be perpendicular to measure direction")
	assert.InDelta(t, 2.0, m.ExtentLength, 1e-9, "extent should come from the probe bounds")
	assert.Equal(t, slab.Elevation, m.Origin.Z, "origin should sit on the face plane")

	// The probe must not outlive the measurement.
	assert.Equal(t, 0, ctx.LiveProbeCount())
	created, deleted := ctx.ProbeStats()
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, deleted)
}

func TestMeasureAxis_BothAxesIndependent(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)
	ctx := hostfake.NewContext(slab, 2, 1.5)

	u, okU := MeasureAxis(ctx, slab.FaceToken, AxisU, testConfig())
	v, okV := MeasureAxis(ctx, slab.FaceToken, AxisV, testConfig())
	require.True(t, okU)
	require.True(t, okV)

	assert.InDelta(t, 2.0, u.Spacing, 1e-9)
	assert.InDelta(t, 1.5, v.Spacing, 1e-9)
	assert.True(t, geom.NearlyPerpendicular(u.MeasureDir, v.MeasureDir, 1e-9),
		"axis measure directions should be orthogonal")
}

func TestMeasureAxis_UnresolvableAnchor(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)
	ctx := hostfake.NewContext(slab, 2, 1.5)
	ctx.Unresolvable[host.AnchorRef(slab.FaceToken, 5)] = true

	_, ok := MeasureAxis(ctx, slab.FaceToken, AxisU, testConfig())
	assert.False(t, ok, "axis with one resolved anchor must be unmeasurable")

	created, _ := ctx.ProbeStats()
	assert.Equal(t, 0, created, "no probe should be created without two anchors")
}

func TestMeasureAxis_WrongFaceToken(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)
	ctx := hostfake.NewContext(slab, 2, 1.5)

	_, ok := MeasureAxis(ctx, "some-other-face", AxisU, testConfig())
	assert.False(t, ok, "anchors under a foreign token must not resolve")
}

func TestMeasureAxis_ProbeCreateFails(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)
	ctx := hostfake.NewContext(slab, 2, 1.5)
	ctx.FailCreateProbe = true

	_, ok := MeasureAxis(ctx, slab.FaceToken, AxisU, testConfig())
	assert.False(t, ok)
	assert.Equal(t, 0, ctx.LiveProbeCount())
}

func TestMeasureAxis_ValueReadFails(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)
	ctx := hostfake.NewContext(slab, 2, 1.5)
	ctx.FailProbeValue = true

	_, ok := MeasureAxis(ctx, slab.FaceToken, AxisU, testConfig())
	assert.False(t, ok)

	// The error path must still delete the probe.
	assert.Equal(t, 0, ctx.LiveProbeCount())
	created, deleted := ctx.ProbeStats()
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, deleted)
}

func TestMeasureAxis_RegenerateFails(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)
	ctx := hostfake.NewContext(slab, 2, 1.5)
	ctx.FailRegenerate = true

	_, ok := MeasureAxis(ctx, slab.FaceToken, AxisU, testConfig())
	assert.False(t, ok)
	assert.Equal(t, 0, ctx.LiveProbeCount())
}

func TestMeasureAxis_ZeroSpacingUnmeasurable(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)
	// Coincident anchors: pitch 0 along U.
	ctx := hostfake.NewContext(slab, 0, 1.5)

	_, ok := MeasureAxis(ctx, slab.FaceToken, AxisU, testConfig())
	assert.False(t, ok, "zero spacing must mark the axis unmeasurable")
	assert.Equal(t, 0, ctx.LiveProbeCount())
}

func TestMeasureAxis_NoExtentFallback(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)
	ctx := hostfake.NewContext(slab, 2, 1.5)
	ctx.NoProbeExtent = true

	cfg := testConfig().WithFallbackExtent(7.5)
	m, ok := MeasureAxis(ctx, slab.FaceToken, AxisU, cfg)
	require.True(t, ok)
	assert.Equal(t, 7.5, m.ExtentLength, "missing probe extent should fall back to the configured constant")
}

// ---------------------------------------------------------------------------
// Panic containment
// ---------------------------------------------------------------------------

type staticAnchor struct{ pos r3.Vec }

func (a staticAnchor) Position() r3.Vec { return a.pos }

// panicProbe blows up on Value, modelling a host access violation surfacing
// as a panic inside an interop call.
type panicProbe struct{}

func (p *panicProbe) Nudge(r3.Vec) error         { return nil }
func (p *panicProbe) Value() (float64, error)    { panic("host access violation") }
func (p *panicProbe) Origin() (r3.Vec, error)    { return r3.Vec{}, nil }
func (p *panicProbe) Direction() (r3.Vec, error) { return r3.Vec{X: 1}, nil }
func (p *panicProbe) Extent() (geom.Box, bool)   { return geom.Box{}, false }

type panicCtx struct {
	created int
	deleted int
}

func (c *panicCtx) ResolveAnchor(ref string) (host.Anchor, bool) {
	return staticAnchor{}, true
}

func (c *panicCtx) CreateProbe(a, b host.Anchor) (host.Probe, error) {
	c.created++
	return &panicProbe{}, nil
}

func (c *panicCtx) DeleteProbe(p host.Probe) error {
	c.deleted++
	return nil
}

func (c *panicCtx) Regenerate() error { return nil }

func TestMeasureAxis_PanicContainedAndProbeDeleted(t *testing.T) {
	ctx := &panicCtx{}

	var m AxisMeasurement
	var ok bool
	require.NotPanics(t, func() {
		m, ok = MeasureAxis(ctx, "face", AxisU, testConfig())
	})
	assert.False(t, ok)
	assert.Equal(t, AxisMeasurement{}, m)
	assert.Equal(t, 1, ctx.created)
	assert.Equal(t, 1, ctx.deleted, "panic path must still delete the probe")
}
