package grid

import (
	"fmt"

	"github.com/atlasbim/gridline/internal/host"
)

// ExtractFaceGeometry resolves everything the pipeline needs from the host
// object in one pass: solid body, bottom face, boundary loops, bounding
// volume, and the face's stable identity token.
//
// The queries are read-only; extraction has no document side effects. A face
// with zero edge loops is degenerate but legal and yields empty boundaries.
func ExtractFaceGeometry(obj host.Object) (*FaceGeometry, error) {
	solid, err := obj.Solid()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeometryUnavailable, err)
	}

	face, err := obj.BottomFace()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoBottomFace, err)
	}
	if !face.IsPlanar() {
		return nil, ErrNonPlanarFace
	}

	bounds, err := obj.Bounds()
	if err != nil {
		return nil, fmt.Errorf("%w: bounding volume: %v", ErrGeometryUnavailable, err)
	}

	g := &FaceGeometry{
		Solid:         solid,
		Face:          face,
		BoundaryLoops: face.EdgeLoops(),
		Bounds:        bounds,
		FaceToken:     face.StableRef(),
	}
	Diagf("extracted face %s: %d boundary loops, bounds %v",
		g.FaceToken, len(g.BoundaryLoops), bounds)
	return g, nil
}
