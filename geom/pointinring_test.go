package geom

import "testing"

func unitSquare() []Coordinate {
	return []Coordinate{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0},
	}
}

func TestInRing(t *testing.T) {
	ring := unitSquare()
	tests := []struct {
		p    Coordinate
		want bool
	}{
		{Coordinate{X: 2, Y: 2}, true},
		{Coordinate{X: 10, Y: 10}, false},
		{Coordinate{X: -1, Y: 2}, false},
	}
	for _, tc := range tests {
		if got := InRing(tc.p, ring); got != tc.want {
			t.Errorf("InRing(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestInRingEmpty(t *testing.T) {
	if InRing(Coordinate{X: 0, Y: 0}, nil) {
		t.Errorf("InRing against an empty ring must be false")
	}
}

func TestOnLine(t *testing.T) {
	line := []Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}}
	if !OnLine(Coordinate{X: 5, Y: 0}, line) {
		t.Errorf("expected midpoint to be on the line")
	}
	if OnLine(Coordinate{X: 5, Y: 1}, line) {
		t.Errorf("expected off-line point to not be on the line")
	}
}
