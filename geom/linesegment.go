package geom

import "math"

// LineSegment is an ordered pair (P0, P1) of coordinates — spec §3.
type LineSegment struct {
	P0, P1 Coordinate
}

// NewLineSegment returns the segment p0-p1.
func NewLineSegment(p0, p1 Coordinate) LineSegment {
	return LineSegment{P0: p0, P1: p1}
}

// Reverse returns the segment with endpoints swapped.
func (ls LineSegment) Reverse() LineSegment {
	return LineSegment{P0: ls.P1, P1: ls.P0}
}

// Normalize returns ls oriented so that P0 <= P1 lexicographically,
// reversing it if necessary.
func (ls LineSegment) Normalize() LineSegment {
	if ls.P1.Less(ls.P0) {
		return ls.Reverse()
	}
	return ls
}

// Envelope returns the bounding box of the segment.
func (ls LineSegment) Envelope() Envelope {
	return NewEnvelopeFromCoordinates(ls.P0, ls.P1)
}

// Length returns the Euclidean length of the segment.
func (ls LineSegment) Length() float64 {
	return ls.P0.Distance(ls.P1)
}

// IsHorizontal reports whether P0.Y == P1.Y.
func (ls LineSegment) IsHorizontal() bool { return ls.P0.Y == ls.P1.Y }

// IsVertical reports whether P0.X == P1.X.
func (ls LineSegment) IsVertical() bool { return ls.P0.X == ls.P1.X }

// OrientationIndex returns the orientation of p relative to the directed
// line through (P0, P1): CCW, CW, or Collinear, via the robust sign of
// determinant primitive (spec §4.1).
func (ls LineSegment) OrientationIndex(p Coordinate) Direction {
	return ComputeOrientation(ls.P0, ls.P1, p)
}

// ProjectionFactor returns the parametric location of the projection of p
// onto the infinite line through P0-P1, where 0 corresponds to P0 and 1
// corresponds to P1. Returns NaN for a degenerate (zero-length) segment.
func (ls LineSegment) ProjectionFactor(p Coordinate) float64 {
	if ls.P0.Equals2D(ls.P1) {
		return math.NaN()
	}
	dx := ls.P1.X - ls.P0.X
	dy := ls.P1.Y - ls.P0.Y
	len2 := dx*dx + dy*dy
	r := ((p.X-ls.P0.X)*dx + (p.Y-ls.P0.Y)*dy) / len2
	return r
}

// Project returns the orthogonal projection of p onto the infinite line
// through P0-P1, clamped to the closed segment.
func (ls LineSegment) Project(p Coordinate) Coordinate {
	if ls.P0.Equals2D(p) || ls.P1.Equals2D(p) {
		return p
	}
	r := ls.ProjectionFactor(p)
	if math.IsNaN(r) {
		return ls.P0
	}
	if r <= 0 {
		return ls.P0
	}
	if r >= 1 {
		return ls.P1
	}
	return NewCoordinate(
		ls.P0.X+r*(ls.P1.X-ls.P0.X),
		ls.P0.Y+r*(ls.P1.Y-ls.P0.Y),
	)
}

// DistancePoint returns the perpendicular distance from p to the closed
// segment (distance to the nearest endpoint if the projection falls
// outside it).
func (ls LineSegment) DistancePoint(p Coordinate) float64 {
	if ls.P0.Equals2D(ls.P1) {
		return p.Distance(ls.P0)
	}
	r := ls.ProjectionFactor(p)
	if r <= 0 {
		return p.Distance(ls.P0)
	}
	if r >= 1 {
		return p.Distance(ls.P1)
	}
	proj := ls.Project(p)
	return p.Distance(proj)
}

// Angle returns the direction of the segment as an angle in radians,
// measured counter-clockwise from the positive X axis.
func (ls LineSegment) Angle() float64 {
	return math.Atan2(ls.P1.Y-ls.P0.Y, ls.P1.X-ls.P0.X)
}

// MidPoint returns the segment's midpoint.
func (ls LineSegment) MidPoint() Coordinate {
	return NewCoordinate((ls.P0.X+ls.P1.X)/2, (ls.P0.Y+ls.P1.Y)/2)
}

// EdgeDistance computes the monotone distance metric spec §4.2 defines for
// ordering two points known to lie on this segment: the absolute delta
// along the segment's dominant axis, falling back to
// max(|dx|, |dy|) if that delta is zero (handles a point coincident with P0
// or a segment that is neither purely horizontal nor vertical at the
// queried point).
func (ls LineSegment) EdgeDistance(p Coordinate) float64 {
	dx := math.Abs(ls.P1.X - ls.P0.X)
	dy := math.Abs(ls.P1.Y - ls.P0.Y)

	var dist float64
	if dx > dy {
		dist = math.Abs(p.X - ls.P0.X)
	} else {
		dist = math.Abs(p.Y - ls.P0.Y)
	}
	if dist == 0 && !p.Equals2D(ls.P0) {
		dist = math.Max(math.Abs(p.X-ls.P0.X), math.Abs(p.Y-ls.P0.Y))
	}
	return dist
}

func (ls LineSegment) String() string {
	return ls.P0.String() + " - " + ls.P1.String()
}
