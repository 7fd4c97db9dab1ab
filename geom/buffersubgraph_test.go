package geom

import "testing"

func squareGraph() *PlanarGraph {
	g := NewPlanarGraph()
	l := NewLabel(LocationBoundary, LocationInterior, LocationExterior)
	g.InsertEdge([]Coordinate{{X: 0, Y: 0}, {X: 4, Y: 0}}, l, 1)
	g.InsertEdge([]Coordinate{{X: 4, Y: 0}, {X: 4, Y: 4}}, l, 1)
	g.InsertEdge([]Coordinate{{X: 4, Y: 4}, {X: 0, Y: 4}}, l, 1)
	g.InsertEdge([]Coordinate{{X: 0, Y: 4}, {X: 0, Y: 0}}, l, 1)
	g.FinalizeStars()
	return g
}

func TestExtractSubgraphsSingleComponent(t *testing.T) {
	g := squareGraph()
	subgraphs := ExtractSubgraphs(g)
	if len(subgraphs) != 1 {
		t.Fatalf("expected 1 connected component for a closed square, got %d", len(subgraphs))
	}
	sg := subgraphs[0]
	if len(sg.Nodes) != 4 {
		t.Errorf("expected 4 nodes in the subgraph, got %d", len(sg.Nodes))
	}
	env := sg.Envelope()
	if env.MinX() != 0 || env.MaxX() != 4 || env.MinY() != 0 || env.MaxY() != 4 {
		t.Errorf("unexpected subgraph envelope: %v", env)
	}
}

func TestExtractSubgraphsTwoComponents(t *testing.T) {
	g := NewPlanarGraph()
	l := NewLabel(LocationBoundary, LocationInterior, LocationExterior)
	g.InsertEdge([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, l, 1)
	g.InsertEdge([]Coordinate{{X: 100, Y: 100}, {X: 101, Y: 100}}, l, 1)
	g.FinalizeStars()

	subgraphs := ExtractSubgraphs(g)
	if len(subgraphs) != 2 {
		t.Fatalf("expected 2 disjoint components, got %d", len(subgraphs))
	}
}

func TestSortSubgraphsDescendingByRightmostX(t *testing.T) {
	g := NewPlanarGraph()
	l := NewLabel(LocationBoundary, LocationInterior, LocationExterior)
	g.InsertEdge([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, l, 1)
	g.InsertEdge([]Coordinate{{X: 10, Y: 0}, {X: 20, Y: 0}}, l, 1)
	g.FinalizeStars()

	subgraphs := ExtractSubgraphs(g)
	SortSubgraphs(subgraphs)

	for i := 1; i < len(subgraphs); i++ {
		if subgraphs[i-1].RightMostCoordinate().X < subgraphs[i].RightMostCoordinate().X {
			t.Errorf("subgraphs not sorted descending by rightmost X: %v then %v",
				subgraphs[i-1].RightMostCoordinate(), subgraphs[i].RightMostCoordinate())
		}
	}
}
