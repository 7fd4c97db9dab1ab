package geom

import "math"

// GeometryKind discriminates the inputs OffsetCurveSetBuilder dispatches
// on — spec §4.7.
type GeometryKind int

const (
	KindPoint GeometryKind = iota
	KindLineString
	KindLinearRing
	KindPolygon
)

// PolygonInput is the polygon shape OffsetCurveSetBuilder consumes: a
// shell ring plus zero or more hole rings, each already closed
// (first == last).
type PolygonInput struct {
	Shell Ring
	Holes []Ring
}

// OffsetCurveSetBuilder dispatches a single input geometry component to
// OffsetCurveBuilder and wraps the resulting raw curve(s) as labelled
// SegmentStrings ready for noding — spec §4.7.
type OffsetCurveSetBuilder struct {
	Curve  *OffsetCurveBuilder
	Params BufferParameters
}

// NewOffsetCurveSetBuilder returns a set builder using params for its
// underlying OffsetCurveBuilder.
func NewOffsetCurveSetBuilder(params BufferParameters) *OffsetCurveSetBuilder {
	return &OffsetCurveSetBuilder{Curve: NewOffsetCurveBuilder(params), Params: params}
}

// BuildPoint returns the labelled curve for a point buffer at distance d.
func (b *OffsetCurveSetBuilder) BuildPoint(p Coordinate, d float64) []*SegmentString {
	curve := b.Curve.GetPointCurve(p, d)
	if len(curve) == 0 {
		return nil
	}
	return []*SegmentString{NewSegmentString(curve, LocationExterior, LocationInterior)}
}

// BuildLineString returns the labelled curve for a line buffer at distance
// |d| (line buffers are always symmetric and never erode).
func (b *OffsetCurveSetBuilder) BuildLineString(line []Coordinate, d float64) []*SegmentString {
	curve := b.Curve.GetLineCurve(line, math.Abs(d))
	if len(curve) == 0 {
		return nil
	}
	return []*SegmentString{NewSegmentString(curve, LocationExterior, LocationInterior)}
}

// BuildLinearRing returns the labelled curve for a standalone ring (not a
// polygon shell/hole) buffered at distance d, on both sides since a bare
// ring has no defined interior.
func (b *OffsetCurveSetBuilder) BuildLinearRing(ring Ring, d float64) []*SegmentString {
	var out []*SegmentString
	if c := b.Curve.GetRingCurve(ring, offsetLeft, d); len(c) > 0 {
		out = append(out, NewSegmentString(c, LocationExterior, LocationInterior))
	}
	if c := b.Curve.GetRingCurve(ring, offsetRight, d); len(c) > 0 {
		out = append(out, NewSegmentString(c, LocationInterior, LocationExterior))
	}
	return out
}

// BuildPolygon returns the labelled curves for a polygon's shell and holes
// buffered at signed distance d, applying the erosion heuristic from
// spec §4.7: a negative distance that is large relative to the shell's
// envelope erodes it completely (emits nothing), with an additional
// in-centre test for triangular shells. Holes use the opposite sign
// convention.
func (b *OffsetCurveSetBuilder) BuildPolygon(poly PolygonInput, d float64) []*SegmentString {
	var out []*SegmentString

	shellSide := offsetLeft
	if !IsCCW(poly.Shell) {
		shellSide = offsetRight
	}
	if d >= 0 || !erodesCompletely(poly.Shell, d) {
		if c := b.Curve.GetRingCurve(poly.Shell, shellSide, d); len(c) > 0 {
			left, right := LocationExterior, LocationInterior
			if shellSide == offsetRight {
				left, right = LocationInterior, LocationExterior
			}
			out = append(out, NewSegmentString(c, left, right))
		}
	}

	for _, hole := range poly.Holes {
		holeSide := offsetLeft
		if IsCCW(hole) {
			holeSide = offsetRight
		}
		hd := -d
		if hd >= 0 || !erodesCompletely(hole, hd) {
			if c := b.Curve.GetRingCurve(hole, holeSide, hd); len(c) > 0 {
				left, right := LocationInterior, LocationExterior
				if holeSide == offsetRight {
					left, right = LocationExterior, LocationInterior
				}
				out = append(out, NewSegmentString(c, left, right))
			}
		}
	}
	return out
}

// erodesCompletely implements spec §4.7's erosion heuristic: a ring is
// considered fully eroded by a negative buffer distance d if
// 2*|d| >= min(envelope.width, envelope.height); triangular shells get an
// additional, more precise in-centre-to-side distance test before that
// coarse bound is trusted.
func erodesCompletely(ring Ring, d float64) bool {
	if d >= 0 {
		return false
	}
	env := NewEnvelopeFromCoordinates(ring...)
	minSpan := math.Min(env.Width(), env.Height())
	if 2*math.Abs(d) < minSpan {
		return false
	}
	pts := ring
	if len(pts) > 1 && pts[0].Equals2D(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) == 3 {
		return math.Abs(d) >= inradius(pts[0], pts[1], pts[2])
	}
	return true
}

// inradius returns the radius of the circle inscribed in triangle (a, b, c).
func inradius(a, b, c Coordinate) float64 {
	ab := a.Distance(b)
	bc := b.Distance(c)
	ca := c.Distance(a)
	s := (ab + bc + ca) / 2
	area := math.Abs(triangleArea2(a, b, c)) / 2
	if s == 0 {
		return 0
	}
	return area / s
}
