package geom

// InRing reports whether p lies strictly inside the closed ring described
// by coordinates (ring[0] == ring[len(ring)-1]), using the crossing-number
// test from spec §4.3: a horizontal ray cast from p in the positive-x
// direction is tested against every edge, and an edge contributes a
// crossing iff exactly one endpoint is strictly above p.y and the other is
// at or below it, with the crossing's x compared to p.x via the robust
// sign-of-determinant of the translated endpoints. Boundary points are not
// distinguished from interior or exterior by this routine — use OnLine to
// test for boundary membership first if that distinction matters.
func InRing(p Coordinate, ring []Coordinate) bool {
	crossings := 0
	n := len(ring)
	if n == 0 {
		return false
	}
	for i := 0; i < n-1; i++ {
		p1 := ring[i]
		p2 := ring[i+1]

		if isCrossing(p, p1, p2) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// isCrossing reports whether the edge p1-p2 contributes a crossing of the
// positive-x ray cast from p, per spec §4.3.
func isCrossing(p, p1, p2 Coordinate) bool {
	if (p1.Y > p.Y) == (p2.Y > p.Y) {
		return false
	}
	// Translate so p is the origin; the edge crosses the ray iff the
	// translated edge's orientation relative to the origin places its x
	// intercept strictly to the right of p.
	sign := SignOfDet2x2(p1.X-p.X, p1.Y-p.Y, p2.X-p.X, p2.Y-p.Y)
	if p2.Y < p1.Y {
		sign = -sign
	}
	return sign > 0
}

// OnLine reports whether p lies on the polyline described by the given
// coordinates, using the robust line intersector to test each consecutive
// edge in turn.
func OnLine(p Coordinate, line []Coordinate) bool {
	li := NewLineIntersector()
	for i := 0; i+1 < len(line); i++ {
		li.ComputePointOnLine(p, line[i], line[i+1])
		if li.HasIntersection() {
			return true
		}
	}
	return false
}
