package geom

import (
	"fmt"

	"github.com/geocore/vecgeo/r1"
	"github.com/geocore/vecgeo/r2"
)

// Envelope is the axis-aligned bounding box [minX, maxX] x [minY, maxY]
// from spec §3, built on r2.Rect. A null envelope (both intervals empty)
// represents "no bounds" — the identity for Expand/Union.
type Envelope struct {
	rect r2.Rect
}

// NewNullEnvelope returns an empty/null envelope.
func NewNullEnvelope() Envelope { return Envelope{rect: r2.EmptyRect()} }

// NewEnvelopeFromCoordinate returns the degenerate envelope containing a
// single point.
func NewEnvelopeFromCoordinate(c Coordinate) Envelope {
	return Envelope{rect: r2.RectFromPoints(c.Vector())}
}

// NewEnvelopeFromCoordinates returns the smallest envelope containing all
// of the given coordinates.
func NewEnvelopeFromCoordinates(cs ...Coordinate) Envelope {
	e := NewNullEnvelope()
	for _, c := range cs {
		e = e.ExpandToInclude(c)
	}
	return e
}

// NewEnvelope returns the envelope [minX, maxX] x [minY, maxY]. Arguments
// need not be pre-sorted.
func NewEnvelope(x1, x2, y1, y2 float64) Envelope {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Envelope{rect: r2.Rect{
		X: r1.Interval{Lo: x1, Hi: x2},
		Y: r1.Interval{Lo: y1, Hi: y2},
	}}
}

// IsNull reports whether this envelope represents no area at all.
func (e Envelope) IsNull() bool { return e.rect.IsEmpty() }

// MinX, MaxX, MinY, MaxY return the envelope's bounds. They are undefined
// (NaN-free but meaningless) on a null envelope.
func (e Envelope) MinX() float64 { return e.rect.X.Lo }
func (e Envelope) MaxX() float64 { return e.rect.X.Hi }
func (e Envelope) MinY() float64 { return e.rect.Y.Lo }
func (e Envelope) MaxY() float64 { return e.rect.Y.Hi }

// Width and Height return the envelope's extent along each axis (negative
// for a null envelope).
func (e Envelope) Width() float64  { return e.rect.X.Length() }
func (e Envelope) Height() float64 { return e.rect.Y.Length() }

// ExpandToInclude returns the envelope expanded, if necessary, to contain c.
func (e Envelope) ExpandToInclude(c Coordinate) Envelope {
	return Envelope{rect: e.rect.AddPoint(c.Vector())}
}

// ExpandToIncludeEnvelope returns the smallest envelope containing both e
// and other.
func (e Envelope) ExpandToIncludeEnvelope(other Envelope) Envelope {
	return Envelope{rect: e.rect.Union(other.rect)}
}

// Inflate returns the envelope expanded by distance on every side (a
// negative distance shrinks it, possibly to null).
func (e Envelope) Inflate(distance float64) Envelope {
	return Envelope{rect: e.rect.ExpandedByMargin(distance)}
}

// Translate returns the envelope shifted by (dx, dy).
func (e Envelope) Translate(dx, dy float64) Envelope {
	return Envelope{rect: e.rect.Translate(r2.Vector{X: dx, Y: dy})}
}

// ContainsPoint reports whether c lies within or on the boundary of e.
func (e Envelope) ContainsPoint(c Coordinate) bool {
	return e.rect.ContainsPoint(c.Vector())
}

// Contains reports whether e contains other entirely.
func (e Envelope) Contains(other Envelope) bool {
	return e.rect.Contains(other.rect)
}

// Intersects reports whether e and other share any point.
func (e Envelope) Intersects(other Envelope) bool {
	return e.rect.Intersects(other.rect)
}

// IntersectsPoint reports whether e contains c (alias kept for symmetry
// with Intersects(Envelope), matching the teacher's Region-interface
// naming habits).
func (e Envelope) IntersectsPoint(c Coordinate) bool {
	return e.ContainsPoint(c)
}

// Intersection returns the overlap of e and other; IsNull reports true on
// the result if they do not overlap.
func (e Envelope) Intersection(other Envelope) Envelope {
	return Envelope{rect: e.rect.Intersection(other.rect)}
}

func (e Envelope) String() string {
	if e.IsNull() {
		return "Env[null]"
	}
	return fmt.Sprintf("Env[%v : %v, %v : %v]", e.MinX(), e.MaxX(), e.MinY(), e.MaxY())
}
