package geom

// SegmentString is a labelled coordinate sequence produced by the offset
// curve builder and consumed by a Noder — spec §4.7: "each raw curve is
// wrapped as a SegmentString and labelled with left/right locations".
type SegmentString struct {
	Coords []Coordinate
	Label  *Label
}

// NewSegmentString returns a SegmentString over coords labelled left/right
// with the given locations for geometry index 0 (the only participant the
// buffer pipeline tracks).
func NewSegmentString(coords []Coordinate, left, right Location) *SegmentString {
	return &SegmentString{Coords: coords, Label: NewLabel(LocationBoundary, left, right)}
}

// Reverse returns a SegmentString over the same coordinates in reverse
// order, with its label's sides flipped to match.
func (s *SegmentString) Reverse() *SegmentString {
	n := len(s.Coords)
	rev := make([]Coordinate, n)
	for i, c := range s.Coords {
		rev[n-1-i] = c
	}
	return &SegmentString{Coords: rev, Label: s.Label.Flip()}
}

// Noder nodes a collection of labelled segment strings: every mutual
// intersection between any two input segments becomes a vertex in the
// output, so no two output segment strings cross except at shared
// endpoints — spec §4.8 step 3.
type Noder interface {
	Node(input []*SegmentString) ([]*SegmentString, error)
}
