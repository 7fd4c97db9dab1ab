package geom

import "testing"

func crossingStrings() []*SegmentString {
	a := NewSegmentString([]Coordinate{{X: 0, Y: 5}, {X: 10, Y: 5}}, LocationInterior, LocationExterior)
	b := NewSegmentString([]Coordinate{{X: 5, Y: 0}, {X: 5, Y: 10}}, LocationInterior, LocationExterior)
	return []*SegmentString{a, b}
}

func TestSimpleNoderSplitsAtIntersection(t *testing.T) {
	noder := NewSimpleNoder()
	out, err := noder.Node(crossingStrings())
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 noded segment strings, got %d", len(out))
	}
	for _, s := range out {
		if len(s.Coords) != 3 {
			t.Errorf("expected each crossing string to split into 3 coords, got %d: %v", len(s.Coords), s.Coords)
		}
	}
}

func TestSimpleNoderNoIntersection(t *testing.T) {
	a := NewSegmentString([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, LocationInterior, LocationExterior)
	b := NewSegmentString([]Coordinate{{X: 0, Y: 5}, {X: 1, Y: 5}}, LocationInterior, LocationExterior)

	noder := NewSimpleNoder()
	out, err := noder.Node([]*SegmentString{a, b})
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	for _, s := range out {
		if len(s.Coords) != 2 {
			t.Errorf("expected unchanged 2-point strings, got %d: %v", len(s.Coords), s.Coords)
		}
	}
}

func TestMCIndexNoderAgreesWithSimpleNoder(t *testing.T) {
	simple, err := NewSimpleNoder().Node(crossingStrings())
	if err != nil {
		t.Fatalf("SimpleNoder.Node: %v", err)
	}
	mc, err := NewMCIndexNoder().Node(crossingStrings())
	if err != nil {
		t.Fatalf("MCIndexNoder.Node: %v", err)
	}
	if len(simple) != len(mc) {
		t.Fatalf("SimpleNoder produced %d strings, MCIndexNoder produced %d", len(simple), len(mc))
	}
	for i := range simple {
		if len(simple[i].Coords) != len(mc[i].Coords) {
			t.Errorf("string %d: SimpleNoder has %d coords, MCIndexNoder has %d", i, len(simple[i].Coords), len(mc[i].Coords))
		}
	}
}

func TestSegmentStringReverse(t *testing.T) {
	s := NewSegmentString([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}}, LocationInterior, LocationExterior)
	r := s.Reverse()
	if !r.Coords[0].Equals2D(s.Coords[1]) || !r.Coords[1].Equals2D(s.Coords[0]) {
		t.Errorf("Reverse() did not reverse the coordinate order: %v", r.Coords)
	}
	if r.Label.Left(0) != LocationExterior || r.Label.Right(0) != LocationInterior {
		t.Errorf("Reverse() did not flip the label sides")
	}
}
