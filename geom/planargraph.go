package geom

import (
	"math"
	"sort"
)

// This file implements the classical DCEL-style half-edge graph spec §3
// describes (Edge / DirectedEdge / Node / PlanarGraph), but as an
// arena-of-slices keyed by integer indices rather than a mesh of pointers:
// every Edge, DirectedEdge, and Node lives in a slice owned by the
// PlanarGraph and is referenced by its index into that slice. This mirrors
// how a Graph owns its vertices/edges as index-addressed slices rather than
// as a pointer-linked structure.

// NodeID indexes into PlanarGraph.Nodes.
type NodeID int

// EdgeID indexes into PlanarGraph.Edges.
type EdgeID int

// DirEdgeID indexes into PlanarGraph.DirEdges.
type DirEdgeID int

const noDirEdge DirEdgeID = -1

// Edge is an undirected coordinate sequence with an associated Label and a
// depth delta per spec §3/§4.8: +1, -1, or 0 depending on whether the
// label's side-0 left/right locations are interior/exterior,
// exterior/interior, or neither.
type Edge struct {
	Coords     []Coordinate
	Label      *Label
	DepthDelta int
}

// Envelope returns the bounding box of the edge's coordinate sequence.
func (e *Edge) Envelope() Envelope {
	return NewEnvelopeFromCoordinates(e.Coords...)
}

// isCollapsed reports whether the edge's forward and reverse traversal
// produce the same sequence (a zero-width spike), which spec §4.8 excludes
// from contributing to the result-edge flag even when its depth condition
// is otherwise satisfied.
func (e *Edge) isCollapsed() bool {
	n := len(e.Coords)
	if n < 2 {
		return true
	}
	for i := 0; i < n/2; i++ {
		if !e.Coords[i].Equals2D(e.Coords[n-1-i]) {
			return false
		}
	}
	return true
}

// DirectedEdge is one of the two directed traversals of an Edge. Forward
// indicates the edge's natural coordinate order; Sym is the index of its
// twin (the opposite traversal of the same Edge). Depth holds the running
// depth on [left, right] assigned during the buffer pipeline's breadth-
// first depth propagation.
type DirectedEdge struct {
	Edge     EdgeID
	Forward  bool
	FromNode NodeID
	ToNode   NodeID
	Sym      DirEdgeID
	Label    *Label
	Depth    [2]int
	InResult bool
	Visited  bool

	// next is the following directed edge in this node's outgoing star,
	// in clockwise angular order — used by ring-tracing during polygon
	// extraction.
	next DirEdgeID
}

// Coords returns the directed edge's coordinate sequence in traversal
// order (reversed from the underlying Edge if Forward is false).
func (g *PlanarGraph) Coords(d DirEdgeID) []Coordinate {
	de := &g.DirEdges[d]
	coords := g.Edges[de.Edge].Coords
	if de.Forward {
		return coords
	}
	rev := make([]Coordinate, len(coords))
	for i, c := range coords {
		rev[len(coords)-1-i] = c
	}
	return rev
}

// Node is a vertex of the planar graph together with the star of
// DirectedEdges leaving it, sorted in clockwise angular order around the
// node.
type Node struct {
	Coord Coordinate
	Star  []DirEdgeID
}

// PlanarGraph owns every Node, Edge, and DirectedEdge produced by merging
// noded segment strings (spec §4.8 step 4-5). Coordinates are deduplicated
// into Nodes via nodeIndex.
type PlanarGraph struct {
	Nodes     []Node
	Edges     []Edge
	DirEdges  []DirectedEdge
	nodeIndex map[Coordinate]NodeID
}

// NewPlanarGraph returns an empty graph ready for edge insertion.
func NewPlanarGraph() *PlanarGraph {
	return &PlanarGraph{nodeIndex: make(map[Coordinate]NodeID)}
}

// addNode returns the NodeID for coord, creating one if it does not yet
// exist (the "overlay node factory" spec §4.8 step 5 refers to).
func (g *PlanarGraph) addNode(coord Coordinate) NodeID {
	key := Coordinate{X: coord.X, Y: coord.Y}
	if id, ok := g.nodeIndex[key]; ok {
		return id
	}
	id := NodeID(len(g.Nodes))
	g.Nodes = append(g.Nodes, Node{Coord: coord})
	g.nodeIndex[key] = id
	return id
}

// InsertEdge implements spec §4.8 step 4: if an edge with the same
// coordinate sequence (or its reverse) already exists, merge the new
// label into it (flipping first if the match was reversed) and add its
// depth delta to the existing edge's; otherwise insert a fresh Edge and
// its two DirectedEdges.
func (g *PlanarGraph) InsertEdge(coords []Coordinate, label *Label, depthDelta int) EdgeID {
	for i := range g.Edges {
		e := &g.Edges[i]
		if coordsEqual(e.Coords, coords) {
			e.Label = e.Label.Merge(label)
			e.DepthDelta += depthDelta
			return EdgeID(i)
		}
		if coordsEqualReversed(e.Coords, coords) {
			e.Label = e.Label.Merge(label.Flip())
			e.DepthDelta += depthDelta
			return EdgeID(i)
		}
	}

	edgeID := EdgeID(len(g.Edges))
	g.Edges = append(g.Edges, Edge{Coords: coords, Label: label, DepthDelta: depthDelta})

	from := g.addNode(coords[0])
	to := g.addNode(coords[len(coords)-1])

	fwdID := DirEdgeID(len(g.DirEdges))
	g.DirEdges = append(g.DirEdges, DirectedEdge{
		Edge: edgeID, Forward: true, FromNode: from, ToNode: to, Label: label, next: noDirEdge,
	})
	revID := DirEdgeID(len(g.DirEdges))
	g.DirEdges = append(g.DirEdges, DirectedEdge{
		Edge: edgeID, Forward: false, FromNode: to, ToNode: from, Label: label.Flip(), next: noDirEdge,
	})
	g.DirEdges[fwdID].Sym = revID
	g.DirEdges[revID].Sym = fwdID

	g.Nodes[from].Star = append(g.Nodes[from].Star, fwdID)
	g.Nodes[to].Star = append(g.Nodes[to].Star, revID)

	return edgeID
}

// FinalizeStars sorts every node's outgoing star into clockwise angular
// order and links each directed edge to the next one in that order,
// required before ring tracing or the rightmost-edge finder can use the
// node's edge-star ordering (spec §4.9).
func (g *PlanarGraph) FinalizeStars() {
	for ni := range g.Nodes {
		node := &g.Nodes[ni]
		sort.Slice(node.Star, func(i, j int) bool {
			return directedEdgeAngle(g, node.Star[i]) > directedEdgeAngle(g, node.Star[j])
		})
		n := len(node.Star)
		for i, d := range node.Star {
			g.DirEdges[d].next = node.Star[(i+1)%n]
		}
	}
}

func directedEdgeAngle(g *PlanarGraph, d DirEdgeID) float64 {
	coords := g.Coords(d)
	if len(coords) < 2 {
		return 0
	}
	return math.Atan2(coords[1].Y-coords[0].Y, coords[1].X-coords[0].X)
}

func coordsEqual(a, b []Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals2D(b[i]) {
			return false
		}
	}
	return true
}

func coordsEqualReversed(a, b []Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	for i := range a {
		if !a[i].Equals2D(b[n-1-i]) {
			return false
		}
	}
	return true
}
