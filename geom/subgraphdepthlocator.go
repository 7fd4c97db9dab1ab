package geom

import "sort"

// stabbedSegment is one candidate segment crossed by a depth-locator ray,
// tagged with the depth on its left side.
type stabbedSegment struct {
	p0, p1    Coordinate
	leftDepth int
}

// SubgraphDepthLocator computes the "outside depth" of a query subgraph by
// stabbing a horizontal ray through every already-processed subgraph, per
// spec §4.10.
type SubgraphDepthLocator struct {
	processed []*BufferSubgraph
}

// NewSubgraphDepthLocator returns a locator that will stab rays through
// processed (subgraphs handled earlier in the depth-assignment order).
func NewSubgraphDepthLocator(processed []*BufferSubgraph) *SubgraphDepthLocator {
	return &SubgraphDepthLocator{processed: processed}
}

// OutsideDepth returns the outside depth of query, computed by shooting a
// horizontal ray to the right from query's rightmost coordinate and
// examining every non-horizontal, non-self segment from an already
// processed subgraph whose envelope spans the ray's y — spec §4.10.
func (l *SubgraphDepthLocator) OutsideDepth(query *BufferSubgraph) int {
	c := query.RightMostCoordinate()

	var stabbed []stabbedSegment
	for _, sg := range l.processed {
		if sg == query {
			continue
		}
		if c.Y < sg.Envelope().MinY() || c.Y > sg.Envelope().MaxY() {
			continue
		}
		for _, d := range sg.DirEdges {
			de := &sg.Graph.DirEdges[d]
			if !de.Forward {
				continue
			}
			coords := sg.Graph.Coords(d)
			for i := 0; i+1 < len(coords); i++ {
				p0, p1 := coords[i], coords[i+1]
				if p0.Y == p1.Y {
					continue // horizontal segments never contribute
				}
				lo, hi := p0.Y, p1.Y
				if lo > hi {
					lo, hi = hi, lo
				}
				if c.Y < lo || c.Y > hi {
					continue
				}
				if !segmentStabbedRightOf(c, p0, p1) {
					continue
				}
				// de.Depth[0] already holds sg's assigned outside depth:
				// assignSubgraphDepths ran on every earlier subgraph in
				// l.processed before it was appended there, so this reads
				// the accumulated depth rather than re-deriving a bare
				// 0/1 inside/outside flag from the static Label.
				leftDepth := de.Depth[0]
				stabbed = append(stabbed, stabbedSegment{p0: p0, p1: p1, leftDepth: leftDepth})
			}
		}
	}

	if len(stabbed) == 0 {
		return 0
	}

	sort.Slice(stabbed, func(i, j int) bool {
		return compareStabbed(stabbed[i], stabbed[j]) < 0
	})

	return stabbed[0].leftDepth
}

// segmentStabbedRightOf reports whether the horizontal ray from c
// (travelling in the +x direction) crosses segment p0-p1 strictly to the
// right of c, using the same robust sign-of-determinant primitive the
// ring-crossing test uses.
func segmentStabbedRightOf(c, p0, p1 Coordinate) bool {
	sign := SignOfDet2x2(p0.X-c.X, p0.Y-c.Y, p1.X-c.X, p1.Y-c.Y)
	if p1.Y < p0.Y {
		sign = -sign
	}
	return sign > 0
}

// compareStabbed orders two stabbed segments left-to-right using a
// determinate comparator: first by normalised upward-segment orientation,
// falling back to lexicographic p0/p1 comparison for collinear
// segments — spec §4.10.
func compareStabbed(a, b stabbedSegment) int {
	ua := normalizeUpward(a)
	ub := normalizeUpward(b)

	orient := ComputeOrientation(ua.p0, ua.p1, ub.p1)
	if orient != Collinear {
		return -int(orient)
	}
	if c := ua.p0.CompareTo(ub.p0); c != 0 {
		return c
	}
	return ua.p1.CompareTo(ub.p1)
}

// normalizeUpward returns s oriented so that p0 is the lower endpoint.
func normalizeUpward(s stabbedSegment) stabbedSegment {
	if s.p0.Y > s.p1.Y {
		return stabbedSegment{p0: s.p1, p1: s.p0, leftDepth: s.leftDepth}
	}
	return s
}
