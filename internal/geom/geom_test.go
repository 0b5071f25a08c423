package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSegmentLength(t *testing.T) {
	s := Segment{A: r3.Vec{X: 0, Y: 0, Z: 0}, B: r3.Vec{X: 3, Y: 4, Z: 0}}
	if got := s.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length() = %f, want 5", got)
	}
}

func TestSegmentDirection_Degenerate(t *testing.T) {
	s := Segment{A: r3.Vec{X: 1, Y: 1, Z: 1}, B: r3.Vec{X: 1, Y: 1, Z: 1}}
	if got := s.Direction(); got != (r3.Vec{}) {
		t.Errorf("Direction() of degenerate segment = %v, want zero vector", got)
	}
}

func TestSegmentMidpoint(t *testing.T) {
	s := Segment{A: r3.Vec{X: -2, Y: 0, Z: 4}, B: r3.Vec{X: 2, Y: 6, Z: 4}}
	want := r3.Vec{X: 0, Y: 3, Z: 4}
	if got := s.Midpoint(); !NearlyEqual(got, want, 1e-12) {
		t.Errorf("Midpoint() = %v, want %v", got, want)
	}
}

func TestLineSegment(t *testing.T) {
	l := Line{
		Center:  r3.Vec{X: 1, Y: 2, Z: 3},
		Dir:     r3.Vec{X: 1, Y: 0, Z: 0},
		HalfLen: 5,
	}
	seg := l.Segment()
	if !NearlyEqual(seg.A, r3.Vec{X: -4, Y: 2, Z: 3}, 1e-12) {
		t.Errorf("Segment().A = %v", seg.A)
	}
	if !NearlyEqual(seg.B, r3.Vec{X: 6, Y: 2, Z: 3}, 1e-12) {
		t.Errorf("Segment().B = %v", seg.B)
	}
}

func TestLineExtended(t *testing.T) {
	l := Line{Dir: r3.Vec{X: 0, Y: 1, Z: 0}, HalfLen: 10}
	got := l.Extended(5000)
	if got.HalfLen != 5010 {
		t.Errorf("Extended half-length = %f, want 5010", got.HalfLen)
	}
	if l.HalfLen != 10 {
		t.Errorf("Extended mutated receiver: HalfLen = %f", l.HalfLen)
	}
}

func TestBoxMaxPlanarExtent(t *testing.T) {
	b := Box{Min: r3.Vec{X: 0, Y: 0, Z: 0}, Max: r3.Vec{X: 10, Y: 6, Z: 0.3}}
	if got := b.MaxPlanarExtent(); got != 10 {
		t.Errorf("MaxPlanarExtent() = %f, want 10", got)
	}
	// Z span must not participate even when it dominates.
	tall := Box{Min: r3.Vec{}, Max: r3.Vec{X: 1, Y: 2, Z: 50}}
	if got := tall.MaxPlanarExtent(); got != 2 {
		t.Errorf("MaxPlanarExtent() = %f, want 2", got)
	}
}

func TestBoxCenterAndEmpty(t *testing.T) {
	b := Box{Min: r3.Vec{X: -1, Y: -2, Z: 0}, Max: r3.Vec{X: 1, Y: 2, Z: 4}}
	if got := b.Center(); !NearlyEqual(got, r3.Vec{X: 0, Y: 0, Z: 2}, 1e-12) {
		t.Errorf("Center() = %v", got)
	}
	if b.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty box")
	}
	if !(Box{}).IsEmpty() {
		t.Error("IsEmpty() = false for zero box")
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(r3.Vec{X: 0, Y: 3, Z: 4})
	if math.Abs(r3.Norm(v)-1) > 1e-12 {
		t.Errorf("Normalize() norm = %f, want 1", r3.Norm(v))
	}
	if got := Normalize(r3.Vec{}); got != (r3.Vec{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestPerpXY(t *testing.T) {
	cases := []struct {
		in, want r3.Vec
	}{
		{r3.Vec{X: 1, Y: 0, Z: 0}, r3.Vec{X: 0, Y: 1, Z: 0}},
		{r3.Vec{X: 0, Y: 1, Z: 0}, r3.Vec{X: -1, Y: 0, Z: 0}},
		{r3.Vec{X: 1, Y: 1, Z: 7}, r3.Vec{X: -1, Y: 1, Z: 0}},
	}
	for _, c := range cases {
		got := PerpXY(c.in)
		if !NearlyEqual(got, c.want, 1e-12) {
			t.Errorf("PerpXY(%v) = %v, want %v", c.in, got, c.want)
		}
		if math.Abs(got.X*c.in.X+got.Y*c.in.Y) > 1e-12 {
			t.Errorf("PerpXY(%v) not perpendicular in XY", c.in)
		}
	}
}

func TestNearlyPerpendicular(t *testing.T) {
	a := Normalize(r3.Vec{X: 1, Y: 1, Z: 0})
	b := Normalize(PerpXY(a))
	if !NearlyPerpendicular(a, b, 1e-9) {
		t.Errorf("expected %v perpendicular to %v", a, b)
	}
	if NearlyPerpendicular(a, a, 1e-9) {
		t.Error("vector reported perpendicular to itself")
	}
}
