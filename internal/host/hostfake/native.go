package hostfake

import (
	"github.com/atlasbim/gridline/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// NativeSlab wraps a Slab with the optional native grid-line capability, for
// exercising the orchestrator's fast path. The grid is computed analytically
// from the stored pitches rather than inferred.
type NativeSlab struct {
	*Slab
	PitchU float64
	PitchV float64
}

// NewNativeSlab returns a slab whose grid lines are served natively.
func NewNativeSlab(width, depth, pitchU, pitchV float64) *NativeSlab {
	return &NativeSlab{
		Slab:   NewSlab(width, depth),
		PitchU: pitchU,
		PitchV: pitchV,
	}
}

// NativeGridLines implements host.NativeGridSource. Lines sit at half-step
// offsets from the slab centre on both sides, clipped to the plan rectangle.
func (n *NativeSlab) NativeGridLines(includeBoundary bool) ([]geom.Curve, error) {
	var out []geom.Curve
	hw, hd, z := n.Width/2, n.Depth/2, n.Elevation

	if n.PitchU > 0 {
		for off := n.PitchU / 2; off < hw; off += n.PitchU {
			for _, x := range []float64{-off, off} {
				out = append(out, geom.Segment{
					A: r3.Vec{X: x, Y: -hd, Z: z},
					B: r3.Vec{X: x, Y: hd, Z: z},
				})
			}
		}
	}
	if n.PitchV > 0 {
		for off := n.PitchV / 2; off < hd; off += n.PitchV {
			for _, y := range []float64{-off, off} {
				out = append(out, geom.Segment{
					A: r3.Vec{X: -hw, Y: y, Z: z},
					B: r3.Vec{X: hw, Y: y, Z: z},
				})
			}
		}
	}

	if includeBoundary {
		out = append(out, n.BoundaryLoop()...)
	}
	return out, nil
}
