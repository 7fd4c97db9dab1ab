package geom

import "sort"

// BufferSubgraph is a connected set of DirectedEdges and Nodes produced by
// the buffer pipeline's connected-component extraction (spec §3, §4.8 step
// 6). It caches its envelope and rightmost coordinate, the fields used to
// order subgraphs before depth assignment.
type BufferSubgraph struct {
	Graph     *PlanarGraph
	DirEdges  []DirEdgeID
	Nodes     []NodeID
	envelope  Envelope
	rightmost Coordinate
	hasRight  bool
}

// ExtractSubgraphs partitions graph into its connected components via a
// breadth-first reachability walk starting from each unvisited node —
// spec §4.8 step 6.
func ExtractSubgraphs(graph *PlanarGraph) []*BufferSubgraph {
	visited := make([]bool, len(graph.Nodes))
	var subgraphs []*BufferSubgraph

	for start := range graph.Nodes {
		if visited[start] {
			continue
		}
		sg := &BufferSubgraph{Graph: graph}
		queue := []NodeID{NodeID(start)}
		visited[start] = true

		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			sg.Nodes = append(sg.Nodes, n)

			for _, d := range graph.Nodes[n].Star {
				sg.DirEdges = append(sg.DirEdges, d)
				sg.addCoord(graph.Coords(d)...)
				to := graph.DirEdges[d].ToNode
				if !visited[to] {
					visited[to] = true
					queue = append(queue, to)
				}
			}
		}
		subgraphs = append(subgraphs, sg)
	}
	return subgraphs
}

func (sg *BufferSubgraph) addCoord(coords ...Coordinate) {
	for _, c := range coords {
		if !sg.hasRight || c.X > sg.rightmost.X || (c.X == sg.rightmost.X && c.Y > sg.rightmost.Y) {
			sg.rightmost = c
			sg.hasRight = true
		}
	}
	if sg.envelope.IsNull() {
		sg.envelope = NewEnvelopeFromCoordinates(coords...)
	} else {
		for _, c := range coords {
			sg.envelope = sg.envelope.ExpandToInclude(c)
		}
	}
}

// Envelope returns the subgraph's cached bounding box.
func (sg *BufferSubgraph) Envelope() Envelope { return sg.envelope }

// RightMostCoordinate returns the subgraph's cached rightmost (then
// topmost, to break ties) coordinate, used to sort subgraphs for depth
// processing — spec §4.8 step 7.
func (sg *BufferSubgraph) RightMostCoordinate() Coordinate { return sg.rightmost }

// SortSubgraphs orders subgraphs by descending rightmost-coordinate x
// (spec §4.8 step 7: "guarantees that when polygons are assembled, shells
// precede the holes they contain").
func SortSubgraphs(subgraphs []*BufferSubgraph) {
	sort.Slice(subgraphs, func(i, j int) bool {
		return subgraphs[i].rightmost.X > subgraphs[j].rightmost.X
	})
}
