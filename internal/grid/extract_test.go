package grid

import (
	"errors"
	"testing"

	"github.com/atlasbim/gridline/internal/host/hostfake"
)

func TestExtractFaceGeometry(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)

	g, err := ExtractFaceGeometry(slab)
	if err != nil {
		t.Fatalf("ExtractFaceGeometry: %v", err)
	}
	if g.FaceToken != slab.FaceToken {
		t.Errorf("FaceToken = %q, want %q", g.FaceToken, slab.FaceToken)
	}
	if len(g.BoundaryLoops) != 1 || len(g.BoundaryLoops[0]) != 4 {
		t.Errorf("boundary loops shape = %d", len(g.BoundaryLoops))
	}
	if got := len(g.BoundaryCurves()); got != 4 {
		t.Errorf("BoundaryCurves() = %d curves, want 4", got)
	}
	if g.Elevation() != slab.Elevation {
		t.Errorf("Elevation() = %f, want %f", g.Elevation(), slab.Elevation)
	}
	if g.Bounds.MaxPlanarExtent() != 10 {
		t.Errorf("bounds planar extent = %f, want 10", g.Bounds.MaxPlanarExtent())
	}
}

func TestExtractFaceGeometry_HardErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*hostfake.Slab)
		wantErr error
	}{
		{"no solid", func(s *hostfake.Slab) { s.NoSolid = true }, ErrGeometryUnavailable},
		{"no bottom face", func(s *hostfake.Slab) { s.NoBottomFace = true }, ErrNoBottomFace},
		{"non planar face", func(s *hostfake.Slab) { s.NonPlanar = true }, ErrNonPlanarFace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slab := hostfake.NewSlab(10, 6)
			tt.mutate(slab)
			_, err := ExtractFaceGeometry(slab)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExtractFaceGeometry_ZeroLoopsIsNotAnError(t *testing.T) {
	slab := hostfake.NewSlab(10, 6)
	slab.NoLoops = true

	g, err := ExtractFaceGeometry(slab)
	if err != nil {
		t.Fatalf("ExtractFaceGeometry: %v", err)
	}
	if len(g.BoundaryLoops) != 0 {
		t.Errorf("boundary loops = %d, want 0", len(g.BoundaryLoops))
	}
	if got := g.BoundaryCurves(); got != nil {
		t.Errorf("BoundaryCurves() = %v, want nil", got)
	}
}
