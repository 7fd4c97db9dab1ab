package geom

// BufferBuilder assembles the buffer polygon for a geometry at a signed
// distance, following the pipeline spec §4.8 describes: offset-curve-set
// generation, noding, merged-edge graph construction, connected-component
// extraction, depth assignment, and polygon extraction.
type BufferBuilder struct {
	Params BufferParameters
	Noder  Noder
}

// NewBufferBuilder returns a builder using params and the default noder
// (an MCIndexNoder wrapping a robust line intersector with params'
// precision model) — spec §4.8 step 3.
func NewBufferBuilder(params BufferParameters) *BufferBuilder {
	noder := NewMCIndexNoder()
	noder.PrecisionModel = params.PrecisionModel
	return &BufferBuilder{Params: params, Noder: noder}
}

// BufferResult is the output of the buffer pipeline: zero or more result
// polygons, each a shell with its holes, plus the underlying graph kept
// alive for callers that want to inspect it (e.g. tests).
type BufferResult struct {
	Polygons []PolygonInput
	Graph    *PlanarGraph
}

// BuildPointBuffer runs the full pipeline for a single point buffered at
// radius d.
func (bb *BufferBuilder) BuildPointBuffer(p Coordinate, d float64) (*BufferResult, error) {
	setBuilder := NewOffsetCurveSetBuilder(bb.Params)
	return bb.build(setBuilder.BuildPoint(p, d))
}

// BuildLineBuffer runs the full pipeline for a line string buffered at
// distance d.
func (bb *BufferBuilder) BuildLineBuffer(line []Coordinate, d float64) (*BufferResult, error) {
	setBuilder := NewOffsetCurveSetBuilder(bb.Params)
	return bb.build(setBuilder.BuildLineString(line, d))
}

// BuildRingBuffer runs the full pipeline for a standalone ring buffered at
// signed distance d.
func (bb *BufferBuilder) BuildRingBuffer(ring Ring, d float64) (*BufferResult, error) {
	setBuilder := NewOffsetCurveSetBuilder(bb.Params)
	return bb.build(setBuilder.BuildLinearRing(ring, d))
}

// BuildPolygonBuffer runs the full pipeline for a polygon (shell + holes)
// buffered at signed distance d.
func (bb *BufferBuilder) BuildPolygonBuffer(poly PolygonInput, d float64) (*BufferResult, error) {
	setBuilder := NewOffsetCurveSetBuilder(bb.Params)
	return bb.build(setBuilder.BuildPolygon(poly, d))
}

// Buffer is spec §6's consumer-facing BufferBuilder::buffer(geometry,
// distance) -> Geometry: it dispatches on g's concrete type to the
// matching Build*Buffer method and wraps the result back into a Geometry
// (a Polygon2 for a single result polygon, a MultiPolygon for several, and
// an empty GeometryCollection when there is none).
func (bb *BufferBuilder) Buffer(g Geometry, d float64) (Geometry, error) {
	var result *BufferResult
	var err error
	switch t := g.(type) {
	case *Point:
		result, err = bb.BuildPointBuffer(t.Coord, d)
	case *MultiPoint:
		var combined *BufferResult
		for _, p := range t.Points {
			r, e := bb.BuildPointBuffer(p.Coord, d)
			if e != nil {
				return nil, e
			}
			combined = mergeBufferResults(combined, r)
		}
		result = combined
	case *LineString:
		result, err = bb.BuildLineBuffer(t.Coords, d)
	case *MultiLineString:
		var combined *BufferResult
		for _, l := range t.Lines {
			r, e := bb.BuildLineBuffer(l.Coords, d)
			if e != nil {
				return nil, e
			}
			combined = mergeBufferResults(combined, r)
		}
		result = combined
	case *LinearRing:
		result, err = bb.BuildRingBuffer(Ring(t.Coords), d)
	case *Polygon2:
		result, err = bb.BuildPolygonBuffer(polygonInputOf(t), d)
	case *MultiPolygon:
		var combined *BufferResult
		for _, p := range t.Polygons {
			r, e := bb.BuildPolygonBuffer(polygonInputOf(p), d)
			if e != nil {
				return nil, e
			}
			combined = mergeBufferResults(combined, r)
		}
		result = combined
	default:
		return nil, &UnsupportedGeometryError{Geom: g}
	}
	if err != nil {
		return nil, err
	}
	return geometryOfBufferResult(result), nil
}

// UnsupportedGeometryError reports a Geometry whose concrete type Buffer
// has no dispatch case for (e.g. a GeometryCollection, which spec §4.8
// does not define a buffer rule for directly — buffer its members instead).
type UnsupportedGeometryError struct{ Geom Geometry }

func (e *UnsupportedGeometryError) Error() string {
	return "geom: Buffer does not support this geometry type"
}

func mergeBufferResults(a, b *BufferResult) *BufferResult {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	a.Polygons = append(a.Polygons, b.Polygons...)
	return a
}

func polygonInputOf(p *Polygon2) PolygonInput {
	in := PolygonInput{Shell: Ring(p.Shell.Coords)}
	for _, h := range p.Holes {
		in.Holes = append(in.Holes, Ring(h.Coords))
	}
	return in
}

func geometryOfBufferResult(result *BufferResult) Geometry {
	if result == nil || len(result.Polygons) == 0 {
		return &GeometryCollection{}
	}
	if len(result.Polygons) == 1 {
		return polygon2Of(result.Polygons[0])
	}
	out := &MultiPolygon{}
	for _, p := range result.Polygons {
		out.Polygons = append(out.Polygons, polygon2Of(p))
	}
	return out
}

func polygon2Of(p PolygonInput) *Polygon2 {
	out := &Polygon2{Shell: &LinearRing{Coords: p.Shell}}
	for _, h := range p.Holes {
		out.Holes = append(out.Holes, &LinearRing{Coords: h})
	}
	return out
}

// build implements spec §4.8 steps 2-9 over an already-generated set of
// raw labelled curves.
func (bb *BufferBuilder) build(raw []*SegmentString) (*BufferResult, error) {
	if len(raw) == 0 {
		return &BufferResult{}, nil
	}

	noded, err := bb.Noder.Node(raw)
	if err != nil {
		return nil, err
	}

	graph := NewPlanarGraph()
	for _, s := range noded {
		if len(s.Coords) < 2 {
			continue
		}
		delta := depthDeltaOf(s.Label)
		graph.InsertEdge(s.Coords, s.Label, delta)
	}
	graph.FinalizeStars()

	subgraphs := ExtractSubgraphs(graph)
	SortSubgraphs(subgraphs)

	var processed []*BufferSubgraph
	for _, sg := range subgraphs {
		locator := NewSubgraphDepthLocator(processed)
		outsideDepth := locator.OutsideDepth(sg)
		assignSubgraphDepths(graph, sg, outsideDepth)
		flagResultEdges(graph, sg)
		processed = append(processed, sg)
	}

	pb := NewPolygonBuilder(graph)
	for _, sg := range subgraphs {
		pb.Add(sg)
	}
	polys := pb.Build()

	return &BufferResult{Polygons: polys, Graph: graph}, nil
}

// depthDeltaOf implements spec §4.8 step 4's depth-delta rule: +1 when the
// label's side-0 left/right locations are interior/exterior, -1 when
// they're exterior/interior, 0 otherwise.
func depthDeltaOf(label *Label) int {
	left, right := label.Left(0), label.Right(0)
	switch {
	case left == LocationInterior && right == LocationExterior:
		return 1
	case left == LocationExterior && right == LocationInterior:
		return -1
	default:
		return 0
	}
}

// assignSubgraphDepths starts from the rightmost edge with the subgraph's
// outside depth and propagates depths to every directed edge via a
// breadth-first traversal of the subgraph, each step applying the crossed
// edge's depth delta — spec §4.8 step 8.
func assignSubgraphDepths(graph *PlanarGraph, sg *BufferSubgraph, outsideDepth int) {
	start := FindRightmostEdge(graph, sg)
	if start == noDirEdge {
		return
	}

	startEdge := &graph.Edges[graph.DirEdges[start].Edge]
	startDe := &graph.DirEdges[start]
	delta := startEdge.DepthDelta
	if !startDe.Forward {
		delta = -delta
	}
	startDe.Depth[1] = outsideDepth
	startDe.Depth[0] = outsideDepth + delta
	graph.DirEdges[graph.DirEdges[start].Sym].Depth[0] = startDe.Depth[1]
	graph.DirEdges[graph.DirEdges[start].Sym].Depth[1] = startDe.Depth[0]

	visitedNode := make(map[NodeID]bool)
	queue := []DirEdgeID{start}
	startDe.Visited = true
	graph.DirEdges[graph.DirEdges[start].Sym].Visited = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curDe := &graph.DirEdges[cur]
		node := curDe.ToNode
		if visitedNode[node] {
			continue
		}
		visitedNode[node] = true

		for _, out := range graph.Nodes[node].Star {
			if graph.DirEdges[out].Visited {
				continue
			}
			outDe := &graph.DirEdges[out]
			edge := &graph.Edges[outDe.Edge]
			// Depth on the incoming side of out equals depth on the
			// outgoing side of its sym (the shared node's ambient depth);
			// propagate using curDe's depth on its own right side as the
			// local ambient depth, matching the "assign inward from the
			// rightmost edge" rule.
			ambient := curDe.Depth[1]
			outDe.Depth[0] = ambient
			outDe.Depth[1] = ambient + edge.DepthDelta
			sym := &graph.DirEdges[outDe.Sym]
			sym.Depth[0] = outDe.Depth[1]
			sym.Depth[1] = outDe.Depth[0]
			outDe.Visited = true
			sym.Visited = true
			queue = append(queue, out)
		}
	}
}

// flagResultEdges marks, for every directed edge in sg, whether it belongs
// to the buffer result: right depth >= 1 and left depth <= 0, excluding
// edges whose underlying Edge is a collapsed zero-width spike — spec §4.8
// step 8.
func flagResultEdges(graph *PlanarGraph, sg *BufferSubgraph) {
	for _, d := range sg.DirEdges {
		de := &graph.DirEdges[d]
		edge := &graph.Edges[de.Edge]
		if edge.isCollapsed() {
			continue
		}
		if de.Depth[1] >= 1 && de.Depth[0] <= 0 {
			de.InResult = true
		}
	}
}
