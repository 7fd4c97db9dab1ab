package geom

import "sort"

// CentroidAccumulator accumulates weighted contributions from points,
// lines, and areas and reduces them to a single centroid, mirroring the
// CoordinateVisitor pattern spec §6 describes: callers feed geometry
// components through AddPoint/AddLine/AddArea in any order and read back
// Centroid once at the end.
type CentroidAccumulator struct {
	areaSum     float64
	cg3         r2VectorSum // 3x centroid of areas, area-weighted
	lineLength  float64
	lineCentSum r2VectorSum
	ptCount     int
	ptCentSum   r2VectorSum
}

// r2VectorSum is a running (x, y) sum, kept as a tiny local type rather
// than pulling in r2.Vector arithmetic for what is just two float64 adds.
type r2VectorSum struct{ X, Y float64 }

func (s *r2VectorSum) add(x, y float64) {
	s.X += x
	s.Y += y
}

// AddPoint folds a single point into the point centroid.
func (c *CentroidAccumulator) AddPoint(p Coordinate) {
	c.ptCount++
	c.ptCentSum.add(p.X, p.Y)
}

// AddLine folds every segment of the given coordinate sequence into the
// line-length-weighted centroid.
func (c *CentroidAccumulator) AddLine(line []Coordinate) {
	for i := 0; i+1 < len(line); i++ {
		a, b := line[i], line[i+1]
		segLen := a.Distance(b)
		c.lineLength += segLen
		mx := (a.X + b.X) / 2
		my := (a.Y + b.Y) / 2
		c.lineCentSum.add(mx*segLen, my*segLen)
	}
}

// AddArea folds the ring's signed area contribution into the area
// centroid, using the standard triangle-fan decomposition from an
// arbitrary base point (the ring's first vertex).
func (c *CentroidAccumulator) AddArea(ring []Coordinate) {
	if len(ring) < 3 {
		return
	}
	base := ring[0]
	for i := 1; i+1 < len(ring); i++ {
		triArea2 := triangleArea2(base, ring[i], ring[i+1])
		c.areaSum += triArea2
		c.cg3.add((base.X+ring[i].X+ring[i+1].X)*triArea2, (base.Y+ring[i].Y+ring[i+1].Y)*triArea2)
	}
}

// triangleArea2 returns twice the signed area of triangle (a, b, c).
func triangleArea2(a, b, c Coordinate) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// Centroid reduces the accumulated contributions to a single point,
// preferring area over line over point contributions in that order — the
// standard SFS centroid precedence (a polygon's centroid ignores its
// boundary's point/line weight once it has nonzero area).
func (c *CentroidAccumulator) Centroid() (Coordinate, bool) {
	if c.areaSum != 0 {
		return NewCoordinate(c.cg3.X/(3*c.areaSum), c.cg3.Y/(3*c.areaSum)), true
	}
	if c.lineLength > 0 {
		return NewCoordinate(c.lineCentSum.X/c.lineLength, c.lineCentSum.Y/c.lineLength), true
	}
	if c.ptCount > 0 {
		return NewCoordinate(c.ptCentSum.X/float64(c.ptCount), c.ptCentSum.Y/float64(c.ptCount)), true
	}
	return Coordinate{}, false
}

// CentroidOf feeds g's rings, lines, and points into a fresh
// CentroidAccumulator and returns the reduced centroid — the Geometry-level
// entry point spec §6 groups with BufferBuilder.Buffer and PointLocator.Locate
// as operations "typed against" the Geometry contract.
func CentroidOf(g Geometry) (Coordinate, bool) {
	var acc CentroidAccumulator
	addGeometryToCentroid(&acc, g)
	return acc.Centroid()
}

func addGeometryToCentroid(acc *CentroidAccumulator, g Geometry) {
	switch t := g.(type) {
	case *Point:
		acc.AddPoint(t.Coord)
	case *MultiPoint:
		for _, p := range t.Points {
			acc.AddPoint(p.Coord)
		}
	case *LineString:
		acc.AddLine(t.Coords)
	case *LinearRing:
		acc.AddLine(t.Coords)
	case *MultiLineString:
		for _, l := range t.Lines {
			acc.AddLine(l.Coords)
		}
	case *Polygon2:
		if t.Shell != nil {
			acc.AddArea(t.Shell.Coords)
		}
		for _, h := range t.Holes {
			acc.AddArea(h.Coords)
		}
	case *MultiPolygon:
		for _, p := range t.Polygons {
			addGeometryToCentroid(acc, p)
		}
	case *GeometryCollection:
		for _, m := range t.Geometries {
			addGeometryToCentroid(acc, m)
		}
	}
}

// InteriorPoint returns a point guaranteed to lie in the interior of the
// ring (not merely its centroid, which can fall outside a concave
// polygon): the midpoint of a horizontal scan line through the ring at a
// y ordinate chosen to cross it, clipped to the widest interior chord at
// that height. Falls back to the ring's centroid when no edge crosses the
// chosen scan line.
func InteriorPoint(ring []Coordinate) (Coordinate, bool) {
	if len(ring) < 3 {
		return Coordinate{}, false
	}
	env := NewEnvelopeFromCoordinates(ring...)
	scanY := (env.MinY() + env.MaxY()) / 2

	var xs []float64
	n := len(ring)
	for i := 0; i < n-1; i++ {
		a, b := ring[i], ring[i+1]
		if (a.Y > scanY) == (b.Y > scanY) {
			continue
		}
		t := (scanY - a.Y) / (b.Y - a.Y)
		xs = append(xs, a.X+t*(b.X-a.X))
	}
	if len(xs) < 2 {
		var acc CentroidAccumulator
		acc.AddArea(ring)
		return acc.Centroid()
	}
	sort.Float64s(xs)
	bestLo, bestHi := xs[0], xs[1]
	for i := 2; i+1 < len(xs); i += 2 {
		if xs[i+1]-xs[i] > bestHi-bestLo {
			bestLo, bestHi = xs[i], xs[i+1]
		}
	}
	return NewCoordinate((bestLo+bestHi)/2, scanY), true
}
