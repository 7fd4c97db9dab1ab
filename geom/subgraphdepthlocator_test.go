package geom

import "testing"

func TestOutsideDepthNoProcessedSubgraphs(t *testing.T) {
	g := squareGraph()
	subgraphs := ExtractSubgraphs(g)
	locator := NewSubgraphDepthLocator(nil)
	if got := locator.OutsideDepth(subgraphs[0]); got != 0 {
		t.Errorf("OutsideDepth with no processed subgraphs = %d, want 0", got)
	}
}

// newSquareSubgraph builds a single CCW square ring subgraph (interior on
// its left) over [-10,10]x[-10,10], with depths already assigned for the
// given outside depth, the way bufferbuilder.go's build loop assigns every
// subgraph's depths before appending it to processed.
func newSquareSubgraph(outsideDepth int) (*PlanarGraph, *BufferSubgraph) {
	g := NewPlanarGraph()
	label := NewLabel(LocationBoundary, LocationInterior, LocationExterior)
	g.InsertEdge([]Coordinate{{X: -10, Y: -10}, {X: 10, Y: -10}}, label, 1)
	g.InsertEdge([]Coordinate{{X: 10, Y: -10}, {X: 10, Y: 10}}, label, 1)
	g.InsertEdge([]Coordinate{{X: 10, Y: 10}, {X: -10, Y: 10}}, label, 1)
	g.InsertEdge([]Coordinate{{X: -10, Y: 10}, {X: -10, Y: -10}}, label, 1)
	g.FinalizeStars()
	sg := ExtractSubgraphs(g)[0]
	assignSubgraphDepths(g, sg, outsideDepth)
	return g, sg
}

// innerQuerySubgraph builds a tiny query subgraph whose rightmost
// coordinate lies well inside newSquareSubgraph's ring.
func innerQuerySubgraph() *BufferSubgraph {
	inner := NewPlanarGraph()
	innerLabel := NewLabel(LocationBoundary, LocationInterior, LocationExterior)
	inner.InsertEdge([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, innerLabel, 1)
	inner.FinalizeStars()
	return ExtractSubgraphs(inner)[0]
}

func TestOutsideDepthInsideAnotherSubgraph(t *testing.T) {
	_, outerSubgraph := newSquareSubgraph(0)
	locator := NewSubgraphDepthLocator([]*BufferSubgraph{outerSubgraph})
	if got := locator.OutsideDepth(innerQuerySubgraph()); got < 1 {
		t.Errorf("OutsideDepth for a point inside the outer ring = %d, want >= 1", got)
	}
}

// TestOutsideDepthTracksNestingOfOuterSubgraph covers a subgraph nested
// inside another subgraph whose own outside depth is already >= 1 (the
// shell of a hole-bearing polygon buffer, say): OutsideDepth must track the
// outer subgraph's already-assigned depth rather than reporting a constant
// derived from the static edge Label. Comparing two assignments that only
// differ in outsideDepth isolates exactly this: under the old Label-derived
// computation the two results would be equal (always 1); the fix makes
// them differ by precisely the difference in outsideDepth.
func TestOutsideDepthTracksNestingOfOuterSubgraph(t *testing.T) {
	_, shallow := newSquareSubgraph(0)
	_, deep := newSquareSubgraph(3)

	query := innerQuerySubgraph()
	shallowDepth := NewSubgraphDepthLocator([]*BufferSubgraph{shallow}).OutsideDepth(query)
	deepDepth := NewSubgraphDepthLocator([]*BufferSubgraph{deep}).OutsideDepth(query)

	if deepDepth-shallowDepth != 3 {
		t.Errorf("OutsideDepth with outer outsideDepth 0 and 3 = %d and %d, want them to differ by exactly 3",
			shallowDepth, deepDepth)
	}
}
