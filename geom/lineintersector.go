package geom

// IntersectionResult classifies the outcome of a segment/segment
// intersection test — spec §4.2.
type IntersectionResult int

const (
	// NoIntersection means the segments share no point.
	NoIntersection IntersectionResult = iota
	// PointIntersection means the segments meet at exactly one point.
	PointIntersection
	// CollinearIntersection means the segments overlap along a shared line.
	CollinearIntersection
)

// LineIntersector computes whether and how two segments intersect, using
// the robust orientation-index cascade from spec §4.2 rather than a direct
// floating-point line-equation solve. A zero-value LineIntersector is ready
// to use with the floating precision model; call SetPrecisionModel to
// round results to a fixed grid.
type LineIntersector struct {
	pm *PrecisionModel

	result        IntersectionResult
	inputLines    [2]LineSegment
	intPt         [2]Coordinate
	intersections int
	isProper      bool
	err           error
}

// Err returns the diagnostic error recorded by the most recent
// ComputeSegmentIntersection call, or nil if none occurred. It is non-nil
// only for the degenerate case where two segments that passed the
// orientation-index cascade nonetheless produced a homogeneous line pair
// with no finite intersection (both project to the same point at
// infinity).
func (li *LineIntersector) Err() error { return li.err }

// NewLineIntersector returns a LineIntersector using the floating
// precision model.
func NewLineIntersector() *LineIntersector {
	return &LineIntersector{pm: NewFloatingPrecisionModel()}
}

// SetPrecisionModel installs the model used to round computed intersection
// points before they are returned.
func (li *LineIntersector) SetPrecisionModel(pm *PrecisionModel) {
	li.pm = pm
}

// HasIntersection reports whether the most recent compute call found an
// intersection.
func (li *LineIntersector) HasIntersection() bool {
	return li.result != NoIntersection
}

// Result returns the classification of the most recent compute call.
func (li *LineIntersector) Result() IntersectionResult { return li.result }

// IsProper reports whether the intersection point found by
// ComputeSegmentIntersection lies strictly in the interior of both
// segments (never true for a collinear overlap or an endpoint touch).
func (li *LineIntersector) IsProper() bool {
	return li.HasIntersection() && li.isProper
}

// IntersectionNum returns how many intersection coordinates were computed
// (0, 1, or 2).
func (li *LineIntersector) IntersectionNum() int { return li.intersections }

// IntersectionPoint returns the i'th computed intersection coordinate.
func (li *LineIntersector) IntersectionPoint(i int) Coordinate { return li.intPt[i] }

// ComputePointOnLine sets has_intersection iff p lies on the closed segment
// a-b (endpoints included), and flags proper iff p is strictly interior to
// it — spec §4.2.
func (li *LineIntersector) ComputePointOnLine(p, a, b Coordinate) {
	li.inputLines = [2]LineSegment{{P0: a, P1: b}, {}}
	li.intersections = 0
	li.isProper = false

	if !NewEnvelopeFromCoordinates(a, b).ContainsPoint(p) {
		li.result = NoIntersection
		return
	}

	if ComputeOrientation(a, b, p) != Collinear {
		li.result = NoIntersection
		return
	}

	li.isProper = !p.Equals2D(a) && !p.Equals2D(b)
	li.result = PointIntersection
	li.intersections = 1
	li.intPt[0] = p
}

// ComputeSegmentIntersection classifies the intersection of segment p1-p2
// with segment q1-q2 and stores 0, 1, or 2 intersection coordinates —
// spec §4.2's robust variant: envelope rejection, then the four orientation
// indices, then an endpoint copy or a homogeneous-coordinate solve for the
// interior case.
func (li *LineIntersector) ComputeSegmentIntersection(p1, p2, q1, q2 Coordinate) {
	li.inputLines = [2]LineSegment{{P0: p1, P1: p2}, {P0: q1, P1: q2}}
	li.intersections = 0
	li.isProper = false
	li.err = nil

	envP := NewEnvelopeFromCoordinates(p1, p2)
	envQ := NewEnvelopeFromCoordinates(q1, q2)
	if !envP.Intersects(envQ) {
		li.result = NoIntersection
		return
	}

	pq1 := ComputeOrientation(p1, p2, q1)
	pq2 := ComputeOrientation(p1, p2, q2)
	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		li.result = NoIntersection
		return
	}

	qp1 := ComputeOrientation(q1, q2, p1)
	qp2 := ComputeOrientation(q1, q2, p2)
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		li.result = NoIntersection
		return
	}

	collinear := pq1 == Collinear && pq2 == Collinear && qp1 == Collinear && qp2 == Collinear
	if collinear {
		li.computeCollinearIntersection(p1, p2, q1, q2)
		return
	}

	// At least one orientation is exactly zero: the intersection is an
	// endpoint, copied verbatim rather than recomputed (spec §4.2: "never
	// computed, always copied").
	switch {
	case pq1 == Collinear:
		li.intPt[0] = q1
	case pq2 == Collinear:
		li.intPt[0] = q2
	case qp1 == Collinear:
		li.intPt[0] = p1
	case qp2 == Collinear:
		li.intPt[0] = p2
	default:
		li.computeProperIntersection(p1, p2, q1, q2)
		return
	}
	li.result = PointIntersection
	li.intersections = 1
	li.isProper = false
}

func (li *LineIntersector) computeCollinearIntersection(p1, p2, q1, q2 Coordinate) {
	p1q1p2 := NewEnvelopeFromCoordinates(p1, p2).ContainsPoint(q1)
	p1q2p2 := NewEnvelopeFromCoordinates(p1, p2).ContainsPoint(q2)
	q1p1q2 := NewEnvelopeFromCoordinates(q1, q2).ContainsPoint(p1)
	q1p2q2 := NewEnvelopeFromCoordinates(q1, q2).ContainsPoint(p2)

	ls := NewLineSegment(p1, p2)

	switch {
	case p1q1p2 && p1q2p2:
		li.setCollinear(q1, q2, ls)
	case q1p1q2 && q1p2q2:
		li.setCollinear(p1, p2, ls)
	case p1q1p2 && q1p1q2:
		li.setCollinearOrPoint(q1, p1, ls)
	case p1q1p2 && q1p2q2:
		li.setCollinearOrPoint(q1, p2, ls)
	case p1q2p2 && q1p1q2:
		li.setCollinearOrPoint(q2, p1, ls)
	case p1q2p2 && q1p2q2:
		li.setCollinearOrPoint(q2, p2, ls)
	default:
		li.result = NoIntersection
	}
}

func (li *LineIntersector) setCollinearOrPoint(a, b Coordinate, ls LineSegment) {
	if a.Equals2D(b) {
		li.result = PointIntersection
		li.intersections = 1
		li.intPt[0] = a
		return
	}
	li.setCollinear(a, b, ls)
}

// setCollinear stores the overlap segment a-b in canonical (increasing
// edge-distance) order along ls.
func (li *LineIntersector) setCollinear(a, b Coordinate, ls LineSegment) {
	li.result = CollinearIntersection
	li.intersections = 2
	if ls.EdgeDistance(a) <= ls.EdgeDistance(b) {
		li.intPt[0], li.intPt[1] = a, b
	} else {
		li.intPt[0], li.intPt[1] = b, a
	}
}

// computeProperIntersection handles the general interior-crossing case via
// the homogeneous-coordinate line intersection spec §4.2 describes: each
// segment is mapped to a projective line through the envelope-centre-
// normalised endpoints, and the intersection point is the cross product of
// the two lines, de-homogenised and re-offset.
func (li *LineIntersector) computeProperIntersection(p1, p2, q1, q2 Coordinate) {
	env := NewEnvelopeFromCoordinates(p1, p2, q1, q2)
	cx := (env.MinX() + env.MaxX()) / 2
	cy := (env.MinY() + env.MaxY()) / 2

	n := func(c Coordinate) (float64, float64) { return c.X - cx, c.Y - cy }

	p1x, p1y := n(p1)
	p2x, p2y := n(p2)
	q1x, q1y := n(q1)
	q2x, q2y := n(q2)

	// L1 = p1 x p2, L2 = q1 x q2 in homogeneous coordinates (x, y, 1).
	l1a := p1y - p2y
	l1b := p2x - p1x
	l1c := p1x*p2y - p2x*p1y

	l2a := q1y - q2y
	l2b := q2x - q1x
	l2c := q1x*q2y - q2x*q1y

	w := l1a*l2b - l2a*l1b
	if w == 0 {
		li.result = NoIntersection
		li.err = &ProjectivePointAtInfinityError{A: p1, B: p2, C: q1, D: q2}
		DefaultLogger.Printf("geom: %v", li.err)
		return
	}

	x := (l1b*l2c - l2b*l1c) / w
	y := (l2a*l1c - l1a*l2c) / w

	pt := NewCoordinate(x+cx, y+cy)
	if li.pm != nil {
		li.pm.MakeCoordinatePrecise(&pt)
	}

	// The computed point must lie within each input segment's envelope; if
	// rounding pushed it outside, log and return it anyway (spec §4.2).
	if !NewEnvelopeFromCoordinates(p1, p2).ContainsPoint(pt) ||
		!NewEnvelopeFromCoordinates(q1, q2).ContainsPoint(pt) {
		DefaultLogger.Printf("geom: intersection point %v outside input segment envelope", pt)
	}

	li.result = PointIntersection
	li.intersections = 1
	li.intPt[0] = pt
	li.isProper = !pt.Equals2D(p1) && !pt.Equals2D(p2) && !pt.Equals2D(q1) && !pt.Equals2D(q2)
}
