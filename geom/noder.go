package geom

import "sort"

// SimpleNoder nodes segment strings by brute-force pairwise comparison: it
// is the reference implementation every other Noder must agree with, used
// directly on small inputs and by tests to validate MCIndexNoder's output.
type SimpleNoder struct {
	PrecisionModel *PrecisionModel
}

// NewSimpleNoder returns a SimpleNoder using the floating precision model.
func NewSimpleNoder() *SimpleNoder {
	return &SimpleNoder{PrecisionModel: NewFloatingPrecisionModel()}
}

// Node implements Noder by comparing every pair of segments across every
// pair of input strings, splitting at each computed intersection.
func (n *SimpleNoder) Node(input []*SegmentString) ([]*SegmentString, error) {
	splits := make([][]Coordinate, len(input))
	for i, s := range input {
		splits[i] = []Coordinate{s.Coords[0]}
	}

	li := NewLineIntersector()
	li.SetPrecisionModel(n.PrecisionModel)

	for i, a := range input {
		for ai := 0; ai+1 < len(a.Coords); ai++ {
			p1, p2 := a.Coords[ai], a.Coords[ai+1]
			var hits []Coordinate
			for j, b := range input {
				for bi := 0; bi+1 < len(b.Coords); bi++ {
					if i == j && ai == bi {
						continue
					}
					q1, q2 := b.Coords[bi], b.Coords[bi+1]
					li.ComputeSegmentIntersection(p1, p2, q1, q2)
					switch li.Result() {
					case PointIntersection:
						hits = append(hits, li.IntersectionPoint(0))
					case CollinearIntersection:
						hits = append(hits, li.IntersectionPoint(0), li.IntersectionPoint(1))
					}
				}
			}
			hits = dedupeOnSegment(p1, p2, hits)
			splits[i] = append(splits[i], hits...)
			splits[i] = append(splits[i], p2)
		}
	}

	var out []*SegmentString
	for i, s := range input {
		coords := dedupeAdjacent(splits[i])
		if len(coords) < 2 {
			continue
		}
		out = append(out, &SegmentString{Coords: coords, Label: s.Label})
	}
	return out, nil
}

// dedupeOnSegment sorts interior hit points on segment p1-p2 by their
// edge-distance from p1 and removes the endpoints themselves, since those
// are already emitted by the caller's own traversal.
func dedupeOnSegment(p1, p2 Coordinate, hits []Coordinate) []Coordinate {
	if len(hits) == 0 {
		return nil
	}
	ls := NewLineSegment(p1, p2)
	var interior []Coordinate
	for _, h := range hits {
		if h.Equals2D(p1) || h.Equals2D(p2) {
			continue
		}
		interior = append(interior, h)
	}
	sort.Slice(interior, func(i, j int) bool {
		return ls.EdgeDistance(interior[i]) < ls.EdgeDistance(interior[j])
	})
	return dedupeAdjacent(interior)
}

func dedupeAdjacent(coords []Coordinate) []Coordinate {
	var out []Coordinate
	for i, c := range coords {
		if i > 0 && c.Equals2D(out[len(out)-1]) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// monotoneChain is a maximal run of a segment string's edges whose X
// coordinates move monotonically in one direction, the unit MCIndexNoder
// indexes and prunes by envelope before falling back to exact intersection
// tests — spec §4.8 step 3's default noder.
type monotoneChain struct {
	owner    int // index into the input slice
	start    int // first vertex index of the chain within owner's Coords
	end      int // last vertex index (inclusive)
	envelope Envelope
}

// MCIndexNoder is the monotone-chain-index noder spec §4.8 names as the
// default: input strings are split into monotone chains, each chain's
// envelope is computed once, and chain pairs are tested for intersection
// only when their envelopes overlap, before falling back to the same
// robust LineIntersector the SimpleNoder uses for the exact test.
type MCIndexNoder struct {
	PrecisionModel *PrecisionModel
}

// NewMCIndexNoder returns an MCIndexNoder using the floating precision
// model.
func NewMCIndexNoder() *MCIndexNoder {
	return &MCIndexNoder{PrecisionModel: NewFloatingPrecisionModel()}
}

// Node implements Noder using the monotone-chain envelope index: chains
// whose envelopes do not overlap are never compared, but the final
// classification of any candidate pair still goes through the exact
// robust LineIntersector, so the result matches SimpleNoder's on every
// input, only faster on inputs with large chain counts.
func (n *MCIndexNoder) Node(input []*SegmentString) ([]*SegmentString, error) {
	var chains []monotoneChain
	for owner, s := range input {
		chains = append(chains, buildMonotoneChains(owner, s.Coords)...)
	}

	type hitSet struct{ set map[Coordinate]bool }
	hits := make([]hitSet, len(input))
	for i := range hits {
		hits[i].set = make(map[Coordinate]bool)
	}

	li := NewLineIntersector()
	li.SetPrecisionModel(n.PrecisionModel)

	for i := 0; i < len(chains); i++ {
		for j := i; j < len(chains); j++ {
			a, b := chains[i], chains[j]
			if !a.envelope.Intersects(b.envelope) {
				continue
			}
			ca := input[a.owner].Coords
			cb := input[b.owner].Coords
			for ai := a.start; ai < a.end; ai++ {
				for bi := b.start; bi < b.end; bi++ {
					if i == j && ai == bi {
						continue
					}
					li.ComputeSegmentIntersection(ca[ai], ca[ai+1], cb[bi], cb[bi+1])
					switch li.Result() {
					case PointIntersection:
						hits[a.owner].set[li.IntersectionPoint(0)] = true
						hits[b.owner].set[li.IntersectionPoint(0)] = true
					case CollinearIntersection:
						for _, k := range [2]int{0, 1} {
							hits[a.owner].set[li.IntersectionPoint(k)] = true
							hits[b.owner].set[li.IntersectionPoint(k)] = true
						}
					}
				}
			}
		}
	}

	var out []*SegmentString
	for owner, s := range input {
		coords := s.Coords
		var built []Coordinate
		for i := 0; i+1 < len(coords); i++ {
			p1, p2 := coords[i], coords[i+1]
			var onSeg []Coordinate
			ls := NewLineSegment(p1, p2)
			for h := range hits[owner].set {
				if h.Equals2D(p1) || h.Equals2D(p2) {
					continue
				}
				if OnLine(h, []Coordinate{p1, p2}) {
					onSeg = append(onSeg, h)
				}
			}
			sort.Slice(onSeg, func(a, b int) bool {
				return ls.EdgeDistance(onSeg[a]) < ls.EdgeDistance(onSeg[b])
			})
			built = append(built, p1)
			built = append(built, onSeg...)
		}
		built = append(built, coords[len(coords)-1])
		built = dedupeAdjacent(built)
		if len(built) < 2 {
			continue
		}
		out = append(out, &SegmentString{Coords: built, Label: s.Label})
	}
	return out, nil
}

func buildMonotoneChains(owner int, coords []Coordinate) []monotoneChain {
	var chains []monotoneChain
	n := len(coords)
	if n < 2 {
		return chains
	}
	start := 0
	increasing := coords[1].X >= coords[0].X
	for i := 1; i < n-1; i++ {
		nextIncreasing := coords[i+1].X >= coords[i].X
		if nextIncreasing != increasing {
			chains = append(chains, monotoneChain{
				owner: owner, start: start, end: i,
				envelope: NewEnvelopeFromCoordinates(coords[start : i+1]...),
			})
			start = i
			increasing = nextIncreasing
		}
	}
	chains = append(chains, monotoneChain{
		owner: owner, start: start, end: n - 1,
		envelope: NewEnvelopeFromCoordinates(coords[start:]...),
	})
	return chains
}
