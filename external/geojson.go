// Package external adapts this module's geom.Geometry values to
// github.com/blevesearch/bleve_index_api's GeoJSON contract, the same
// dependency golang-geo's own geojson package wraps (its
// geometryCollectionIntersectsShape helper calls shapeIn.Intersects on an
// index.GeoJSON), so a geom.Geometry built here can be indexed by a Bleve
// search application without going through a serialize/parse round trip.
package external

import (
	"encoding/json"
	"fmt"

	index "github.com/blevesearch/bleve_index_api"

	"github.com/geocore/vecgeo/geom"
)

// Shape wraps a geom.Geometry so it satisfies index.GeoJSON.
type Shape struct {
	Geometry geom.Geometry
}

// New wraps g as an index.GeoJSON-compatible Shape.
func New(g geom.Geometry) *Shape {
	return &Shape{Geometry: g}
}

// Type returns the GeoJSON type name for the wrapped geometry.
func (s *Shape) Type() string {
	switch s.Geometry.(type) {
	case *geom.Point:
		return "Point"
	case *geom.LineString, *geom.LinearRing:
		return "LineString"
	case *geom.Polygon2:
		return "Polygon"
	case *geom.MultiPoint:
		return "MultiPoint"
	case *geom.MultiLineString:
		return "MultiLineString"
	case *geom.MultiPolygon:
		return "MultiPolygon"
	case *geom.GeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Intersects reports whether s and other touch. other must be a *Shape;
// any other index.GeoJSON yields an error. It reports false when either
// side is empty or the envelopes are disjoint, and otherwise tests the two
// coordinate sequences edge against edge (or, for a single point, on-line
// and in-ring).
func (s *Shape) Intersects(other index.GeoJSON) (bool, error) {
	otherShape, ok := other.(*Shape)
	if !ok {
		return false, fmt.Errorf("external: Intersects requires another *external.Shape, got %T", other)
	}

	a := geom.CollectCoordinates(s.Geometry)
	b := geom.CollectCoordinates(otherShape.Geometry)
	if len(a) == 0 || len(b) == 0 {
		return false, nil
	}

	if !s.Geometry.Envelope().Intersects(otherShape.Geometry.Envelope()) {
		return false, nil
	}

	return ringsOrLinesIntersect(a, b), nil
}

// ringsOrLinesIntersect tests every edge of a against every edge of b with
// the robust line intersector, and additionally checks point containment
// when either side is a single point.
func ringsOrLinesIntersect(a, b []geom.Coordinate) bool {
	if len(a) == 1 {
		return geom.OnLine(a[0], b) || pointInClosed(a[0], b)
	}
	if len(b) == 1 {
		return geom.OnLine(b[0], a) || pointInClosed(b[0], a)
	}

	li := geom.NewLineIntersector()
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			li.ComputeSegmentIntersection(a[i], a[i+1], b[j], b[j+1])
			if li.HasIntersection() {
				return true
			}
		}
	}
	return false
}

func pointInClosed(p geom.Coordinate, ring []geom.Coordinate) bool {
	if len(ring) < 2 || !ring[0].Equals2D(ring[len(ring)-1]) {
		return false
	}
	return geom.InRing(p, ring)
}

// Value returns the GeoJSON-encoded form of the wrapped geometry as a
// coordinate array, sufficient for indexing and round-tripping through
// Bleve's GeoJSON storage path; it is not a full RFC 7946 encoder (no
// CRS, no bbox member) since spec.md's Non-goals exclude a serializer.
func (s *Shape) Value() ([]byte, error) {
	coords := geom.CollectCoordinates(s.Geometry)
	flat := make([][2]float64, len(coords))
	for i, c := range coords {
		flat[i] = [2]float64{c.X, c.Y}
	}
	return json.Marshal(struct {
		Type        string       `json:"type"`
		Coordinates [][2]float64 `json:"coordinates"`
	}{Type: s.Type(), Coordinates: flat})
}
