package hostfake

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atlasbim/gridline/internal/geom"
	"github.com/atlasbim/gridline/internal/host"
	"gonum.org/v1/gonum/spatial/r3"
)

// Context is a fake measurement context over a Slab. It resolves a uniform
// set of measurement anchors on the bottom face and models the host's probe
// lifecycle, including the stale-until-regenerate behaviour of freshly
// created probes.
type Context struct {
	mu      sync.Mutex
	anchors map[string]r3.Vec

	liveProbes map[*Probe]bool
	created    int
	deleted    int

	// Fault injection.
	Unresolvable    map[string]bool // refs that fail to resolve
	FailCreateProbe bool            // CreateProbe returns an error
	FailProbeValue  bool            // Probe.Value returns an error
	FailRegenerate  bool            // Regenerate returns an error
	NoProbeExtent   bool            // probes report no bounding extent
}

// NewContext builds a context for the slab with anchor pairs matching the
// conventional index assignment: {1,5} spaced pitchU apart along X, {2,6}
// spaced pitchV apart along Y, all on the bottom face.
func NewContext(s *Slab, pitchU, pitchV float64) *Context {
	z := s.Elevation
	return &Context{
		anchors: map[string]r3.Vec{
			host.AnchorRef(s.FaceToken, 1): {Z: z},
			host.AnchorRef(s.FaceToken, 5): {X: pitchU, Z: z},
			host.AnchorRef(s.FaceToken, 2): {Z: z},
			host.AnchorRef(s.FaceToken, 6): {Y: pitchV, Z: z},
		},
		liveProbes:   make(map[*Probe]bool),
		Unresolvable: make(map[string]bool),
	}
}

// ResolveAnchor implements host.Context.
func (c *Context) ResolveAnchor(ref string) (host.Anchor, bool) {
	if c.Unresolvable[ref] {
		return nil, false
	}
	pos, ok := c.anchors[ref]
	if !ok {
		return nil, false
	}
	return fakeAnchor{pos: pos}, true
}

// CreateProbe implements host.Context. The returned probe reports a zero
// value until the next Regenerate, matching hosts whose creation-time probe
// values are not yet authoritative.
func (c *Context) CreateProbe(a, b host.Anchor) (host.Probe, error) {
	if c.FailCreateProbe {
		return nil, errors.New("hostfake: probe creation rejected")
	}
	p := &Probe{ctx: c, a: a.Position(), b: b.Position(), stale: true}
	c.mu.Lock()
	c.liveProbes[p] = true
	c.created++
	c.mu.Unlock()
	return p, nil
}

// DeleteProbe implements host.Context.
func (c *Context) DeleteProbe(p host.Probe) error {
	fp, ok := p.(*Probe)
	if !ok {
		return fmt.Errorf("hostfake: foreign probe %T", p)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.liveProbes[fp] {
		return errors.New("hostfake: probe already deleted")
	}
	delete(c.liveProbes, fp)
	c.deleted++
	return nil
}

// Regenerate implements host.Context by marking all live probes as
// recomputed.
func (c *Context) Regenerate() error {
	if c.FailRegenerate {
		return errors.New("hostfake: regenerate failed")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for p := range c.liveProbes {
		p.stale = false
	}
	return nil
}

// LiveProbeCount returns the number of probes created but not yet deleted.
// Tests use it to assert the pipeline never leaks a probe.
func (c *Context) LiveProbeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.liveProbes)
}

// ProbeStats returns the total created and deleted probe counts.
func (c *Context) ProbeStats() (created, deleted int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.created, c.deleted
}

type fakeAnchor struct {
	pos r3.Vec
}

func (a fakeAnchor) Position() r3.Vec { return a.pos }

// Probe is the fake measurement probe between two anchor positions.
type Probe struct {
	ctx    *Context
	a, b   r3.Vec
	offset r3.Vec
	stale  bool
}

// Nudge implements host.Probe. The displacement moves the probe annotation,
// not the anchors, so the measured value is unaffected.
func (p *Probe) Nudge(offset r3.Vec) error {
	p.offset = r3.Add(p.offset, offset)
	return nil
}

// Value implements host.Probe. A stale probe (created but never regenerated)
// reports zero, the way a real host serves a default before recompute.
func (p *Probe) Value() (float64, error) {
	if p.ctx.FailProbeValue {
		return 0, errors.New("hostfake: probe value unavailable")
	}
	if p.stale {
		return 0, nil
	}
	return r3.Norm(r3.Sub(p.b, p.a)), nil
}

// Origin implements host.Probe.
func (p *Probe) Origin() (r3.Vec, error) {
	return p.a, nil
}

// Direction implements host.Probe. The vector is deliberately not normalised.
func (p *Probe) Direction() (r3.Vec, error) {
	return r3.Sub(p.b, p.a), nil
}

// Extent implements host.Probe.
func (p *Probe) Extent() (geom.Box, bool) {
	if p.ctx.NoProbeExtent {
		return geom.Box{}, false
	}
	min := r3.Vec{
		X: minf(p.a.X, p.b.X),
		Y: minf(p.a.Y, p.b.Y),
		Z: minf(p.a.Z, p.b.Z),
	}
	max := r3.Vec{
		X: maxf(p.a.X, p.b.X),
		Y: maxf(p.a.Y, p.b.Y),
		Z: maxf(p.a.Z, p.b.Z),
	}
	return geom.Box{Min: min, Max: max}, true
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
