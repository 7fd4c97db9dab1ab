package geom

import "testing"

func TestBuildPointReturnsExteriorInteriorLabel(t *testing.T) {
	b := NewOffsetCurveSetBuilder(DefaultBufferParameters())
	out := b.BuildPoint(Coordinate{X: 0, Y: 0}, 3)
	if len(out) != 1 {
		t.Fatalf("expected 1 segment string, got %d", len(out))
	}
	if out[0].Label.Left(0) != LocationExterior || out[0].Label.Right(0) != LocationInterior {
		t.Errorf("unexpected label: left=%v right=%v", out[0].Label.Left(0), out[0].Label.Right(0))
	}
}

func TestBuildPolygonPositiveDistance(t *testing.T) {
	b := NewOffsetCurveSetBuilder(DefaultBufferParameters())
	poly := PolygonInput{Shell: Ring(unitSquare())}
	out := b.BuildPolygon(poly, 1)
	if len(out) != 1 {
		t.Fatalf("expected 1 segment string for a hole-free shell, got %d", len(out))
	}
}

func TestBuildPolygonErodesCompletely(t *testing.T) {
	b := NewOffsetCurveSetBuilder(DefaultBufferParameters())
	// unitSquare spans 4x4; an erosion distance larger than half the
	// narrowest span should erode the shell to nothing.
	poly := PolygonInput{Shell: Ring(unitSquare())}
	out := b.BuildPolygon(poly, -10)
	if len(out) != 0 {
		t.Errorf("expected the shell to erode completely, got %d segment strings", len(out))
	}
}

func TestErodesCompletelyTriangleInradius(t *testing.T) {
	tri := Ring{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}, {X: 0, Y: 0},
	}
	if erodesCompletely(tri, -0.01) {
		t.Errorf("a small erosion distance should not fully erode the triangle")
	}
	if !erodesCompletely(tri, -100) {
		t.Errorf("a huge erosion distance should fully erode the triangle")
	}
}

func TestErodesCompletelyPositiveDistance(t *testing.T) {
	if erodesCompletely(Ring(unitSquare()), 5) {
		t.Errorf("a non-negative distance never erodes")
	}
}
