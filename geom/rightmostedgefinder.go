package geom

// FindRightmostEdge implements spec §4.9: given a subgraph, find the
// forward directed edge whose rightmost vertex has the largest x; on ties
// pick whichever orientation puts the exterior side on the right, and
// finally swap to the twin if the found edge's right side turns out to be
// labelled interior instead.
func FindRightmostEdge(graph *PlanarGraph, sg *BufferSubgraph) DirEdgeID {
	var best DirEdgeID = noDirEdge
	bestX := 0.0
	bestVertexIdx := -1
	var bestCoords []Coordinate

	for _, d := range sg.DirEdges {
		de := &graph.DirEdges[d]
		if !de.Forward {
			continue
		}
		coords := graph.Coords(d)
		for i, c := range coords {
			if best == noDirEdge || c.X > bestX {
				best = d
				bestX = c.X
				bestVertexIdx = i
				bestCoords = coords
			}
		}
	}

	if best == noDirEdge {
		return noDirEdge
	}

	// If the rightmost vertex is an interior vertex of the chosen edge
	// (not an endpoint), orient using the CW/CCW relationship of the two
	// adjacent segments so the exterior side faces right.
	if bestVertexIdx > 0 && bestVertexIdx < len(bestCoords)-1 {
		prev := bestCoords[bestVertexIdx-1]
		cur := bestCoords[bestVertexIdx]
		next := bestCoords[bestVertexIdx+1]
		if ComputeOrientation(prev, cur, next) == CounterClockwise {
			best = graph.DirEdges[best].Sym
		}
	} else {
		// The rightmost vertex sits at a node: pick among incident edges
		// using the node's edge-star ordering (already sorted clockwise
		// by FinalizeStars), preferring the star's first entry.
		nodeID := graph.DirEdges[best].FromNode
		if bestVertexIdx != 0 {
			nodeID = graph.DirEdges[best].ToNode
		}
		star := graph.Nodes[nodeID].Star
		if len(star) > 0 {
			for _, cand := range star {
				if graph.DirEdges[cand].Forward {
					best = cand
					break
				}
			}
		}
	}

	// Finally, if the found edge's right side is labelled interior (i.e.
	// the exterior is on its left instead), swap to its twin.
	de := &graph.DirEdges[best]
	if de.Label != nil && de.Label.Right(0) == LocationInterior {
		best = de.Sym
	}

	return best
}
