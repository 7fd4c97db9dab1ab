package geom

import "testing"

func TestFindRightmostEdgeCCWSquare(t *testing.T) {
	g := NewPlanarGraph()
	// A CCW square (exterior on the left of each forward edge, as the
	// offset-curve-set builder would label a shell).
	left, right := LocationExterior, LocationInterior
	l := NewLabel(LocationBoundary, left, right)
	g.InsertEdge([]Coordinate{{X: 0, Y: 0}, {X: 4, Y: 0}}, l, 1)
	g.InsertEdge([]Coordinate{{X: 4, Y: 0}, {X: 4, Y: 4}}, l, 1)
	g.InsertEdge([]Coordinate{{X: 4, Y: 4}, {X: 0, Y: 4}}, l, 1)
	g.InsertEdge([]Coordinate{{X: 0, Y: 4}, {X: 0, Y: 0}}, l, 1)
	g.FinalizeStars()

	subgraphs := ExtractSubgraphs(g)
	if len(subgraphs) != 1 {
		t.Fatalf("expected a single subgraph, got %d", len(subgraphs))
	}

	d := FindRightmostEdge(g, subgraphs[0])
	if d == noDirEdge {
		t.Fatalf("expected a rightmost edge to be found")
	}
	de := g.DirEdges[d]
	if de.Label.Right(0) != LocationExterior {
		t.Errorf("FindRightmostEdge must return an edge with exterior on its right, got %v", de.Label.Right(0))
	}

	coords := g.Coords(d)
	maxX := coords[0].X
	for _, c := range coords {
		if c.X > maxX {
			maxX = c.X
		}
	}
	if maxX != 4 {
		t.Errorf("expected the rightmost edge to touch x=4, got max x=%v", maxX)
	}
}

func TestFindRightmostEdgeEmptySubgraph(t *testing.T) {
	g := NewPlanarGraph()
	sg := &BufferSubgraph{Graph: g}
	if d := FindRightmostEdge(g, sg); d != noDirEdge {
		t.Errorf("expected noDirEdge for an empty subgraph, got %v", d)
	}
}
