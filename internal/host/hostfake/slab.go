// Package hostfake provides an in-memory host implementation backed by a
// synthetic rectangular slab. It exists so the reconstruction pipeline can be
// exercised without a live CAD session: geometry queries are answered
// analytically and every failure mode of the real host can be injected.
package hostfake

import (
	"errors"

	"github.com/atlasbim/gridline/internal/geom"
	"github.com/atlasbim/gridline/internal/host"
	"gonum.org/v1/gonum/spatial/r3"
)

// Slab is a rectangular ceiling slab centred on the origin in XY, with its
// bottom face at Elevation and the body extending upward by Thickness.
type Slab struct {
	Width     float64 // X span
	Depth     float64 // Y span
	Thickness float64 // Z span of the body
	Elevation float64 // Z of the bottom face
	FaceToken string  // stable identity token of the bottom face

	// Fault injection. Each flag makes the corresponding host query fail
	// the way a real element with broken geometry would.
	NoSolid      bool // Solid() fails
	NoBottomFace bool // BottomFace() fails
	NonPlanar    bool // bottom face reports non-planar
	NoLoops      bool // bottom face has zero edge loops
}

// NewSlab returns a slab with the given plan dimensions and conventional
// defaults for the remaining fields.
func NewSlab(width, depth float64) *Slab {
	return &Slab{
		Width:     width,
		Depth:     depth,
		Thickness: 0.3,
		Elevation: 2.7,
		FaceToken: "slab:1/face:bottom",
	}
}

// Solid implements host.Object.
func (s *Slab) Solid() (host.Solid, error) {
	if s.NoSolid {
		return nil, errors.New("hostfake: slab has no solid body")
	}
	return &slabSolid{slab: s}, nil
}

// BottomFace implements host.Object.
func (s *Slab) BottomFace() (host.Face, error) {
	if s.NoBottomFace {
		return nil, errors.New("hostfake: slab exposes no bottom face reference")
	}
	return &slabFace{slab: s}, nil
}

// Bounds implements host.Object.
func (s *Slab) Bounds() (geom.Box, error) {
	return geom.Box{
		Min: r3.Vec{X: -s.Width / 2, Y: -s.Depth / 2, Z: s.Elevation},
		Max: r3.Vec{X: s.Width / 2, Y: s.Depth / 2, Z: s.Elevation + s.Thickness},
	}, nil
}

// BoundaryLoop returns the four edges of the bottom face rectangle, counter
// clockwise from the min corner.
func (s *Slab) BoundaryLoop() []geom.Curve {
	hw, hd, z := s.Width/2, s.Depth/2, s.Elevation
	corners := []r3.Vec{
		{X: -hw, Y: -hd, Z: z},
		{X: hw, Y: -hd, Z: z},
		{X: hw, Y: hd, Z: z},
		{X: -hw, Y: hd, Z: z},
	}
	loop := make([]geom.Curve, 4)
	for i := range corners {
		loop[i] = geom.Segment{A: corners[i], B: corners[(i+1)%4]}
	}
	return loop
}

type slabFace struct {
	slab *Slab
}

func (f *slabFace) IsPlanar() bool { return !f.slab.NonPlanar }

func (f *slabFace) Plane() geom.Plane {
	return geom.Plane{
		Origin: r3.Vec{Z: f.slab.Elevation},
		Normal: r3.Vec{Z: -1}, // bottom face looks down
	}
}

func (f *slabFace) EdgeLoops() [][]geom.Curve {
	if f.slab.NoLoops {
		return nil
	}
	return [][]geom.Curve{f.slab.BoundaryLoop()}
}

func (f *slabFace) StableRef() string { return f.slab.FaceToken }

type slabSolid struct {
	slab *Slab
}

// IntersectLine clips the line against the slab's box analytically using the
// slab method on each axis: the intersection of the per-axis parameter
// intervals is the inside span.
func (s *slabSolid) IntersectLine(l geom.Line) ([]geom.Segment, error) {
	seg := l.Segment()
	d := r3.Sub(seg.B, seg.A)
	box, _ := s.slab.Bounds()

	tMin, tMax := 0.0, 1.0
	clip := func(origin, dir, lo, hi float64) bool {
		if dir == 0 {
			return origin >= lo && origin <= hi
		}
		t0 := (lo - origin) / dir
		t1 := (hi - origin) / dir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		return tMin <= tMax
	}

	if !clip(seg.A.X, d.X, box.Min.X, box.Max.X) ||
		!clip(seg.A.Y, d.Y, box.Min.Y, box.Max.Y) ||
		!clip(seg.A.Z, d.Z, box.Min.Z, box.Max.Z) {
		return nil, nil
	}

	at := func(t float64) r3.Vec {
		return r3.Add(seg.A, r3.Scale(t, d))
	}
	return []geom.Segment{{A: at(tMin), B: at(tMax)}}, nil
}
