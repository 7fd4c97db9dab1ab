package geom

import "math"

// PolygonBuilder traces the result directed edges flagged by the buffer
// pipeline into closed rings, then assembles shells and holes into
// polygons — spec §4.8 step 9.
type PolygonBuilder struct {
	graph     *PlanarGraph
	subgraphs []*BufferSubgraph
}

// NewPolygonBuilder returns a builder over graph.
func NewPolygonBuilder(graph *PlanarGraph) *PolygonBuilder {
	return &PolygonBuilder{graph: graph}
}

// Add registers a subgraph whose directed edges/nodes should be considered
// when tracing rings.
func (pb *PolygonBuilder) Add(sg *BufferSubgraph) {
	pb.subgraphs = append(pb.subgraphs, sg)
}

// Build traces every result directed edge into a closed ring, classifies
// each ring as a shell (CCW) or hole (CW), and assigns each hole to the
// smallest-area shell that contains it.
func (pb *PolygonBuilder) Build() []PolygonInput {
	ringVisited := make(map[DirEdgeID]bool)
	var shells, holes []Ring

	for _, sg := range pb.subgraphs {
		for _, d := range sg.DirEdges {
			de := &pb.graph.DirEdges[d]
			if !de.InResult || ringVisited[d] {
				continue
			}
			ring := pb.traceRing(d, ringVisited)
			if len(ring) < 4 {
				continue
			}
			if IsCCW(ring) {
				shells = append(shells, ring)
			} else {
				holes = append(holes, ring)
			}
		}
	}

	polys := make([]PolygonInput, len(shells))
	for i, s := range shells {
		polys[i] = PolygonInput{Shell: s}
	}

	for _, h := range holes {
		idx := smallestContainingShell(polys, h)
		if idx < 0 {
			continue // a hole with no containing shell is dropped (degenerate input)
		}
		polys[idx].Holes = append(polys[idx].Holes, h)
	}
	return polys
}

// traceRing follows directed edges starting at start until it returns to
// start, always choosing the next clockwise-star result edge at each
// node — the standard DCEL ring-tracing rule.
func (pb *PolygonBuilder) traceRing(start DirEdgeID, visited map[DirEdgeID]bool) Ring {
	var ring Ring
	cur := start
	for {
		visited[cur] = true
		coords := pb.graph.Coords(cur)
		if len(ring) == 0 {
			ring = append(ring, coords...)
		} else {
			ring = append(ring, coords[1:]...)
		}

		sym := pb.graph.DirEdges[cur].Sym
		next := pb.nextResultEdge(sym)
		if next == noDirEdge {
			break
		}
		cur = next
		if cur == start {
			break
		}
		if visited[cur] {
			break
		}
	}
	return dedupeAdjacent(ring)
}

// nextResultEdge scans forward from sym around its origin node's star
// (already sorted clockwise by FinalizeStars) for the next result edge,
// wrapping around the star exactly once.
func (pb *PolygonBuilder) nextResultEdge(sym DirEdgeID) DirEdgeID {
	node := pb.graph.DirEdges[sym].FromNode
	star := pb.graph.Nodes[node].Star
	if len(star) == 0 {
		return noDirEdge
	}
	pos := -1
	for i, d := range star {
		if d == sym {
			pos = i
			break
		}
	}
	if pos < 0 {
		return noDirEdge
	}
	for i := 1; i <= len(star); i++ {
		cand := star[(pos+i)%len(star)]
		if pb.graph.DirEdges[cand].InResult {
			return cand
		}
	}
	return noDirEdge
}

// smallestContainingShell returns the index of the smallest-area shell in
// polys whose ring contains hole's first vertex, or -1 if none does.
func smallestContainingShell(polys []PolygonInput, hole Ring) int {
	best := -1
	bestArea := math.Inf(1)
	p := hole[0]
	for i, poly := range polys {
		if !InRing(p, poly.Shell) && !OnLine(p, poly.Shell) {
			continue
		}
		area := math.Abs(ringArea(poly.Shell))
		if area < bestArea {
			bestArea = area
			best = i
		}
	}
	return best
}

func ringArea(ring Ring) float64 {
	var acc CentroidAccumulator
	acc.AddArea(ring)
	return acc.areaSum
}
