package geom

import "sort"

// ConvexHullOp computes the convex hull of a Geometry's constituent
// coordinates, exposed the way spec §6 describes it to consumers:
// ConvexHullOp.Compute returns a Geometry whose concrete type depends on how
// degenerate the input is (a Point, a LineString, or a Polygon2 shell).
type ConvexHullOp struct {
	Geom Geometry
}

// NewConvexHullOp returns an operator over g's coordinates.
func NewConvexHullOp(g Geometry) *ConvexHullOp { return &ConvexHullOp{Geom: g} }

// Compute runs ConvexHull over the operator's geometry and wraps the result
// back into a Geometry: a single point collapses to Point, two points (or a
// degenerate collinear hull) to LineString, three or more to a Polygon2
// shell.
func (h *ConvexHullOp) Compute() Geometry {
	hull := ConvexHull(CollectCoordinates(h.Geom))
	switch len(hull) {
	case 0:
		return &GeometryCollection{}
	case 1:
		return &Point{Coord: hull[0]}
	case 2:
		return &LineString{Coords: hull}
	default:
		return &Polygon2{Shell: &LinearRing{Coords: hull}}
	}
}

// ConvexHull computes the convex hull of an unordered set of coordinates
// per spec §4.4: deduplicate, reduce via an octagon for large inputs,
// radially sort around the lowest-then-leftmost point, then Graham scan.
// The result is returned as a coordinate sequence forming a closed ring; an
// input with fewer than 3 distinct points returns those points unclosed, and
// an input whose points are all collinear returns its two extreme points,
// unclosed (ConvexHullOp.Compute wraps those cases into a Point or
// LineString).
func ConvexHull(pts []Coordinate) []Coordinate {
	uniq := dedupeCoordinates(pts)
	if len(uniq) < 3 {
		return uniq
	}

	if len(uniq) > 50 {
		uniq = reduceByOctagon(uniq)
	}

	sorted := radialSort(uniq)
	hull := cleanCollinear(grahamScan(sorted))
	if len(hull) < 3 {
		return []Coordinate{sorted[0], sorted[len(sorted)-1]}
	}
	return hull
}

func dedupeCoordinates(pts []Coordinate) []Coordinate {
	sorted := make([]Coordinate, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	out := sorted[:0]
	for i, c := range sorted {
		if i == 0 || !c.Equals2D(sorted[i-1]) {
			out = append(out, c)
		}
	}
	return out
}

// reduceByOctagon discards interior points of the octilateral formed by the
// eight extremal points in the cardinal/intercardinal directions, per
// spec §4.4 step 3.
func reduceByOctagon(pts []Coordinate) []Coordinate {
	minX, minXY, maxY, maxXY := pts[0], pts[0], pts[0], pts[0]
	maxX, maxXmY, minY, minXmY := pts[0], pts[0], pts[0], pts[0]

	for _, p := range pts[1:] {
		if p.X < minX.X {
			minX = p
		}
		if p.X-p.Y < minXY.X-minXY.Y {
			minXY = p
		}
		if p.Y > maxY.Y {
			maxY = p
		}
		if p.X+p.Y > maxXY.X+maxXY.Y {
			maxXY = p
		}
		if p.X > maxX.X {
			maxX = p
		}
		if p.X-p.Y > maxXmY.X-maxXmY.Y {
			maxXmY = p
		}
		if p.Y < minY.Y {
			minY = p
		}
		if p.X+p.Y < minXmY.X+minXmY.Y {
			minXmY = p
		}
	}

	octagon := []Coordinate{minX, minXY, maxY, maxXY, maxX, maxXmY, minY, minXmY}

	var out []Coordinate
	for _, p := range pts {
		if !strictlyInsideConvexPolygon(p, octagon) {
			out = append(out, p)
		}
	}
	return out
}

func strictlyInsideConvexPolygon(p Coordinate, poly []Coordinate) bool {
	n := len(poly)
	closed := make([]Coordinate, n+1)
	copy(closed, poly)
	closed[n] = poly[0]
	return InRing(p, closed) && !OnLine(p, closed)
}

// radialSort swaps the lowest-then-leftmost point to index 0 and sorts the
// rest by angle around it using the robust orientation index, breaking
// ties by squared distance (spec §4.4 step 4).
func radialSort(pts []Coordinate) []Coordinate {
	lowest := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[lowest].Y || (pts[i].Y == pts[lowest].Y && pts[i].X < pts[lowest].X) {
			lowest = i
		}
	}
	out := make([]Coordinate, len(pts))
	copy(out, pts)
	out[0], out[lowest] = out[lowest], out[0]

	origin := out[0]
	rest := out[1:]
	sort.Slice(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		switch ComputeOrientation(origin, a, b) {
		case CounterClockwise:
			return true
		case Clockwise:
			return false
		default:
			return origin.Distance2(a) < origin.Distance2(b)
		}
	})
	return out
}

// grahamScan runs the classic scan over a radially-sorted point list,
// popping while the top-of-stack turn is not strictly counter-clockwise.
func grahamScan(pts []Coordinate) []Coordinate {
	if len(pts) < 3 {
		return pts
	}
	stack := []Coordinate{pts[0], pts[1], pts[2]}
	for i := 3; i < len(pts); i++ {
		p := pts[i]
		for len(stack) > 1 && ComputeOrientation(stack[len(stack)-2], stack[len(stack)-1], p) != CounterClockwise {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}
	return stack
}

// cleanCollinear removes any vertex that is collinear with its neighbors,
// then closes the ring.
func cleanCollinear(hull []Coordinate) []Coordinate {
	if len(hull) < 3 {
		return hull
	}
	var out []Coordinate
	n := len(hull)
	for i := 0; i < n; i++ {
		prev := hull[(i-1+n)%n]
		cur := hull[i]
		next := hull[(i+1)%n]
		if ComputeOrientation(prev, cur, next) == Collinear {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return out
	}
	return append(out, out[0])
}
