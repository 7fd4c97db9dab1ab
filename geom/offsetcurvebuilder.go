package geom

import "math"

// EndCapStyle selects how OffsetCurveBuilder terminates the open end of a
// line's offset curve — spec §4.6.
type EndCapStyle int

const (
	// EndCapRound closes the end with a semicircular fillet.
	EndCapRound EndCapStyle = iota
	// EndCapFlat closes the end with a straight segment between the two
	// offset endpoints.
	EndCapFlat
	// EndCapSquare closes the end by extending both offsets outward.
	EndCapSquare
)

// BufferParameters configures OffsetCurveBuilder and OffsetCurveSetBuilder:
// the end-cap style and the quadrant-segment count controlling fillet
// approximation (default 8, i.e. a fillet subtends at most π/16 per
// segment) — spec §4.6.
type BufferParameters struct {
	EndCapStyle     EndCapStyle
	QuadrantSegments int
	PrecisionModel  *PrecisionModel
}

// DefaultBufferParameters returns round end caps, 8 quadrant segments, and
// the floating precision model.
func DefaultBufferParameters() BufferParameters {
	return BufferParameters{
		EndCapStyle:      EndCapRound,
		QuadrantSegments: 8,
		PrecisionModel:   NewFloatingPrecisionModel(),
	}
}

func (p BufferParameters) filletAngleQuantum() float64 {
	qs := p.QuadrantSegments
	if qs <= 0 {
		qs = 8
	}
	return math.Pi / (2 * float64(qs))
}

// offsetSide identifies which side of a directed segment an offset curve
// runs on.
type offsetSide int

const (
	offsetLeft  offsetSide = 1
	offsetRight offsetSide = -1
)

// OffsetCurveBuilder generates the raw offset curve for a single line,
// ring, or point component at a signed distance, per spec §4.6.
type OffsetCurveBuilder struct {
	Params BufferParameters
}

// NewOffsetCurveBuilder returns a builder using the given parameters.
func NewOffsetCurveBuilder(params BufferParameters) *OffsetCurveBuilder {
	return &OffsetCurveBuilder{Params: params}
}

func (b *OffsetCurveBuilder) precise(c Coordinate) Coordinate {
	if b.Params.PrecisionModel != nil {
		b.Params.PrecisionModel.MakeCoordinatePrecise(&c)
	}
	return c
}

// offsetSegment returns the two endpoints of segment (p0, p1) translated
// perpendicular to it by distance d on side s — spec §4.6's "offset
// segment" primitive.
func offsetSegment(p0, p1 Coordinate, s offsetSide, d float64) (Coordinate, Coordinate) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return p0, p1
	}
	// Left-perpendicular unit vector of the segment direction.
	ux := -dy / length
	uy := dx / length
	sign := float64(s)
	ox := ux * d * sign
	oy := uy * d * sign
	return NewCoordinate(p0.X+ox, p0.Y+oy), NewCoordinate(p1.X+ox, p1.Y+oy)
}

// addFillet appends the fillet arc around centre from angle startAngle to
// endAngle (direction implied by their difference), subdividing into
// segments no wider than the configured angle quantum — spec §4.6.
func (b *OffsetCurveBuilder) addFillet(out []Coordinate, centre Coordinate, startAngle, endAngle float64, d float64) []Coordinate {
	direction := 1.0
	delta := endAngle - startAngle
	if delta < 0 {
		direction = -1.0
		delta = -delta
	}
	quantum := b.Params.filletAngleQuantum()
	nSegs := int(math.Ceil(delta / quantum))
	if nSegs < 1 {
		nSegs = 1
	}
	absD := math.Abs(d)
	for i := 0; i <= nSegs; i++ {
		angle := startAngle + direction*delta*float64(i)/float64(nSegs)
		pt := NewCoordinate(centre.X+absD*math.Cos(angle), centre.Y+absD*math.Sin(angle))
		out = appendDistinct(out, b.precise(pt))
	}
	return out
}

func appendDistinct(out []Coordinate, c Coordinate) []Coordinate {
	if len(out) > 0 && out[len(out)-1].Equals2D(c) {
		return out
	}
	return append(out, c)
}

// addLineEndCap appends the end cap at p1 terminating segment (p0, p1) —
// spec §4.6.
func (b *OffsetCurveBuilder) addLineEndCap(out []Coordinate, p0, p1 Coordinate, d float64) []Coordinate {
	theta := math.Atan2(p1.Y-p0.Y, p1.X-p0.X)

	_, leftTip := offsetSegment(p0, p1, offsetLeft, d)
	_, rightTip := offsetSegment(p0, p1, offsetRight, d)

	switch b.Params.EndCapStyle {
	case EndCapRound:
		out = appendDistinct(out, b.precise(leftTip))
		out = b.addFillet(out, p1, theta+math.Pi/2, theta-math.Pi/2, d)
		out = appendDistinct(out, b.precise(rightTip))
	case EndCapFlat:
		out = appendDistinct(out, b.precise(leftTip))
		out = appendDistinct(out, b.precise(rightTip))
	case EndCapSquare:
		sqLeft := NewCoordinate(leftTip.X+d*math.Cos(theta), leftTip.Y+d*math.Sin(theta))
		sqRight := NewCoordinate(rightTip.X+d*math.Cos(theta), rightTip.Y+d*math.Sin(theta))
		out = appendDistinct(out, b.precise(leftTip))
		out = appendDistinct(out, b.precise(sqLeft))
		out = appendDistinct(out, b.precise(sqRight))
		out = appendDistinct(out, b.precise(rightTip))
	}
	return out
}

// addCorner handles the join between segments (s0, s1) and (s1, s2) at
// interior vertex s1, on side s at distance d, appending whatever points
// the corner case from spec §4.6 requires.
func (b *OffsetCurveBuilder) addCorner(out []Coordinate, s0, s1, s2 Coordinate, s offsetSide, d float64) []Coordinate {
	orient := ComputeOrientation(s0, s1, s2)

	_, prevOffEnd := offsetSegment(s0, s1, s, d)
	nextOffStart, _ := offsetSegment(s1, s2, s, d)

	if orient == Collinear {
		dx0, dy0 := s1.X-s0.X, s1.Y-s0.Y
		dx1, dy1 := s2.X-s1.X, s2.Y-s1.Y
		sameDirection := dx0*dx1+dy0*dy1 >= 0
		if sameDirection {
			return out // collinear, same direction: skip
		}
		theta := math.Atan2(dy0, dx0)
		out = appendDistinct(out, b.precise(prevOffEnd))
		out = b.addFillet(out, s1, theta+math.Pi/2, theta+3*math.Pi/2, d)
		return out
	}

	// Outside turn: the side being offset is on the convex side of the
	// turn. For the left side that's a CCW turn; for the right side, CW.
	outsideTurn := (s == offsetLeft && orient == CounterClockwise) || (s == offsetRight && orient == Clockwise)

	if outsideTurn {
		out = appendDistinct(out, b.precise(prevOffEnd))
		a0 := math.Atan2(prevOffEnd.Y-s1.Y, prevOffEnd.X-s1.X)
		a1 := math.Atan2(nextOffStart.Y-s1.Y, nextOffStart.X-s1.X)
		out = b.addFillet(out, s1, a0, a1, d)
		out = appendDistinct(out, b.precise(nextOffStart))
		return out
	}

	// Inside turn: try the exact intersection of the two offset segments.
	off0a, off0b := offsetSegment(s0, s1, s, d)
	off1a, off1b := offsetSegment(s1, s2, s, d)

	li := NewLineIntersector()
	li.ComputeSegmentIntersection(off0a, off0b, off1a, off1b)
	if li.Result() == PointIntersection {
		out = appendDistinct(out, b.precise(li.IntersectionPoint(0)))
		return out
	}

	if prevOffEnd.Distance(nextOffStart) < math.Abs(d)/1000 {
		out = appendDistinct(out, b.precise(prevOffEnd))
		return out
	}

	out = appendDistinct(out, b.precise(prevOffEnd))
	out = appendDistinct(out, b.precise(s1))
	out = appendDistinct(out, b.precise(nextOffStart))
	return out
}

// GetLineCurve returns the offset curve for a line string at distance d:
// left-side offset, end cap, right-side offset reversed, end cap,
// closed — spec §4.6. A zero or degenerate input produces an empty curve.
func (b *OffsetCurveBuilder) GetLineCurve(line []Coordinate, d float64) []Coordinate {
	pts := dedupeAdjacent(line)
	if len(pts) < 2 || d == 0 {
		return nil
	}

	var out []Coordinate
	out = b.offsetSide(out, pts, offsetLeft, d)
	out = b.addLineEndCap(out, pts[len(pts)-2], pts[len(pts)-1], d)
	revPts := reverseCoords(pts)
	out = b.offsetSide(out, revPts, offsetLeft, d)
	out = b.addLineEndCap(out, revPts[len(revPts)-2], revPts[len(revPts)-1], d)

	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

// GetRingCurve returns a single closed offset on the requested side of a
// ring at distance d — spec §4.6.
func (b *OffsetCurveBuilder) GetRingCurve(ring []Coordinate, s offsetSide, d float64) []Coordinate {
	pts := dedupeAdjacent(ring)
	if len(pts) > 1 && pts[0].Equals2D(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 || d == 0 {
		return nil
	}
	closed := append(append([]Coordinate{}, pts...), pts[0], pts[1])
	var out []Coordinate
	out = b.offsetSide(out, closed, s, d)
	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

// GetPointCurve returns a round or square cap polygon around p at radius
// d > 0, per the end-cap style, spec §4.6's point entry point.
func (b *OffsetCurveBuilder) GetPointCurve(p Coordinate, d float64) []Coordinate {
	if d <= 0 {
		return nil
	}
	var out []Coordinate
	switch b.Params.EndCapStyle {
	case EndCapSquare:
		out = []Coordinate{
			NewCoordinate(p.X+d, p.Y+d),
			NewCoordinate(p.X+d, p.Y-d),
			NewCoordinate(p.X-d, p.Y-d),
			NewCoordinate(p.X-d, p.Y+d),
		}
	default:
		out = b.addFillet(out, p, 0, 2*math.Pi, d)
	}
	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

// offsetSide walks pts and appends the offset segment for each edge
// followed by the corner handling at each interior vertex, per spec §4.6.
func (b *OffsetCurveBuilder) offsetSide(out []Coordinate, pts []Coordinate, s offsetSide, d float64) []Coordinate {
	for i := 0; i+1 < len(pts); i++ {
		p0, p1 := pts[i], pts[i+1]
		off0, off1 := offsetSegment(p0, p1, s, d)
		out = appendDistinct(out, b.precise(off0))
		out = appendDistinct(out, b.precise(off1))
		if i+2 < len(pts) {
			out = b.addCorner(out, p0, p1, pts[i+2], s, d)
		}
	}
	return out
}

func reverseCoords(pts []Coordinate) []Coordinate {
	rev := make([]Coordinate, len(pts))
	for i, c := range pts {
		rev[len(pts)-1-i] = c
	}
	return rev
}
