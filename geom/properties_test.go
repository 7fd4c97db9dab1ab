package geom

import (
	"testing"

	fuzz "github.com/google/gofuzz"
)

// randCoord is fuzzed instead of Coordinate directly: gofuzz's default
// float64 strategy reinterprets random bits and regularly produces NaN/Inf,
// which would make every property below vacuously ill-defined.
type randCoord struct {
	X, Y int
}

func fuzzCoordinates(t *testing.T, n int) []Coordinate {
	t.Helper()
	f := fuzz.New().Funcs(func(r *randCoord, c fuzz.Continue) {
		r.X = c.Intn(201) - 100
		r.Y = c.Intn(201) - 100
	})
	coords := make([]Coordinate, n)
	for i := range coords {
		var r randCoord
		f.Fuzz(&r)
		coords[i] = NewCoordinate(float64(r.X), float64(r.Y))
	}
	return coords
}

// TestPropertyOrientationAntisymmetry checks spec §8's robust-orientation
// invariant across randomized triples: swapping the first two points negates
// the result, and a degenerate (p, p, q) triple is always Collinear.
func TestPropertyOrientationAntisymmetry(t *testing.T) {
	pts := fuzzCoordinates(t, 150)
	for i := 0; i+2 < len(pts); i += 3 {
		p1, p2, q := pts[i], pts[i+1], pts[i+2]
		fwd := ComputeOrientation(p1, p2, q)
		rev := ComputeOrientation(p2, p1, q)
		if fwd != -rev {
			t.Fatalf("orientation(%v,%v,%v)=%v, orientation(%v,%v,%v)=%v; want negatives",
				p1, p2, q, fwd, p2, p1, q, rev)
		}
		if got := ComputeOrientation(p1, p1, q); got != Collinear {
			t.Fatalf("orientation(%v,%v,%v) = %v, want Collinear", p1, p1, q, got)
		}
	}
}

// TestPropertyIntersectionIdempotenceAndEnvelope checks spec §8's
// idempotence and envelope-containment invariants for the robust segment
// intersector across randomized segment pairs.
func TestPropertyIntersectionIdempotenceAndEnvelope(t *testing.T) {
	pts := fuzzCoordinates(t, 200)
	for i := 0; i+4 <= len(pts); i += 4 {
		a0, a1, b0, b1 := pts[i], pts[i+1], pts[i+2], pts[i+3]

		first := NewLineIntersector()
		first.ComputeSegmentIntersection(a0, a1, b0, b1)
		second := NewLineIntersector()
		second.ComputeSegmentIntersection(a0, a1, b0, b1)

		if first.HasIntersection() != second.HasIntersection() {
			t.Fatalf("non-idempotent HasIntersection for (%v-%v, %v-%v)", a0, a1, b0, b1)
		}
		if !first.HasIntersection() {
			continue
		}
		if first.IntersectionNum() != second.IntersectionNum() {
			t.Fatalf("non-idempotent IntersectionNum for (%v-%v, %v-%v)", a0, a1, b0, b1)
		}

		segA := NewLineSegment(a0, a1).Envelope()
		segB := NewLineSegment(b0, b1).Envelope()
		for k := 0; k < first.IntersectionNum(); k++ {
			p1 := first.IntersectionPoint(k)
			p2 := second.IntersectionPoint(k)
			if p1 != p2 {
				t.Fatalf("intersector not idempotent at point %d: %v != %v", k, p1, p2)
			}
			if !segA.ContainsPoint(p1) || !segB.ContainsPoint(p1) {
				t.Fatalf("intersection point %v lies outside an input segment's envelope", p1)
			}
		}
	}
}

// TestPropertyConvexHull checks spec §8's convex hull invariant across
// randomized point sets: every input point is inside or on the hull, and
// every hull vertex is one of the inputs.
func TestPropertyConvexHull(t *testing.T) {
	pts := fuzzCoordinates(t, 40)
	hull := ConvexHull(pts)
	for _, p := range pts {
		if !pointInClosedHull(hull, p) {
			t.Fatalf("input point %v fell outside its own hull", p)
		}
	}
	for _, v := range hull {
		found := false
		for _, p := range pts {
			if v.Equals2D(p) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("hull vertex %v is not one of the input points", v)
		}
	}
}

func pointInClosedHull(ring []Coordinate, p Coordinate) bool {
	if InRing(p, ring) {
		return true
	}
	return OnLine(p, ring)
}
