package geom

import "testing"

func TestInsertEdgeCreatesSymPair(t *testing.T) {
	g := NewPlanarGraph()
	coords := []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}
	label := NewLabel(LocationBoundary, LocationInterior, LocationExterior)

	edgeID := g.InsertEdge(coords, label, 1)
	if len(g.Edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(g.Edges))
	}
	if len(g.DirEdges) != 2 {
		t.Fatalf("expected 2 directed edges, got %d", len(g.DirEdges))
	}
	if len(g.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(g.Nodes))
	}

	fwd := g.DirEdges[0]
	rev := g.DirEdges[fwd.Sym]
	if fwd.Edge != edgeID || rev.Edge != edgeID {
		t.Errorf("both directed edges should reference the same Edge")
	}
	if !fwd.Forward || rev.Forward {
		t.Errorf("expected one forward and one reverse directed edge")
	}
	if fwd.FromNode != rev.ToNode || fwd.ToNode != rev.FromNode {
		t.Errorf("sym directed edge endpoints should be swapped")
	}
}

func TestInsertEdgeMergesDuplicate(t *testing.T) {
	g := NewPlanarGraph()
	coords := []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}
	l1 := NewLabel(LocationBoundary, LocationInterior, LocationExterior)
	l2 := NewLabel(LocationBoundary, LocationExterior, LocationInterior)

	g.InsertEdge(coords, l1, 1)
	g.InsertEdge(coords, l2, 1)

	if len(g.Edges) != 1 {
		t.Fatalf("expected the duplicate edge to merge, got %d edges", len(g.Edges))
	}
	if g.Edges[0].DepthDelta != 2 {
		t.Errorf("DepthDelta = %d, want 2 (summed across both inserts)", g.Edges[0].DepthDelta)
	}
}

func TestInsertEdgeMergesReversed(t *testing.T) {
	g := NewPlanarGraph()
	l := NewLabel(LocationBoundary, LocationInterior, LocationExterior)

	g.InsertEdge([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, l, 1)
	g.InsertEdge([]Coordinate{{X: 1, Y: 0}, {X: 0, Y: 0}}, l, 1)

	if len(g.Edges) != 1 {
		t.Fatalf("expected the reversed edge to merge, got %d edges", len(g.Edges))
	}
}

func TestFinalizeStarsLinksNext(t *testing.T) {
	g := NewPlanarGraph()
	l := NewLabel(LocationBoundary, LocationInterior, LocationExterior)

	// A 3-edge star out of the origin, so the node at (0,0) has 3 outgoing
	// directed edges to sort into clockwise order.
	g.InsertEdge([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, l, 0)
	g.InsertEdge([]Coordinate{{X: 0, Y: 0}, {X: 0, Y: 1}}, l, 0)
	g.InsertEdge([]Coordinate{{X: 0, Y: 0}, {X: -1, Y: 0}}, l, 0)

	g.FinalizeStars()

	origin := g.nodeIndex[Coordinate{X: 0, Y: 0}]
	node := g.Nodes[origin]
	if len(node.Star) != 3 {
		t.Fatalf("expected 3 outgoing directed edges at the origin, got %d", len(node.Star))
	}
	for _, d := range node.Star {
		if g.DirEdges[d].next == noDirEdge {
			t.Errorf("FinalizeStars left next unset for directed edge %d", d)
		}
	}
}
