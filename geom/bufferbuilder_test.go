package geom

import "testing"

func TestBufferBuilderPointBuffer(t *testing.T) {
	bb := NewBufferBuilder(DefaultBufferParameters())
	result, err := bb.BuildPointBuffer(Coordinate{X: 0, Y: 0}, 5)
	if err != nil {
		t.Fatalf("BuildPointBuffer: %v", err)
	}
	if len(result.Polygons) != 1 {
		t.Fatalf("expected 1 result polygon, got %d", len(result.Polygons))
	}
	poly := result.Polygons[0]
	if len(poly.Holes) != 0 {
		t.Errorf("a point buffer should have no holes, got %d", len(poly.Holes))
	}
	env := NewEnvelopeFromCoordinates(poly.Shell...)
	if env.MinX() > -4.9 || env.MaxX() < 4.9 {
		t.Errorf("buffered circle envelope %v does not reach radius 5", env)
	}
}

func TestBufferBuilderPolygonExpandsEnvelope(t *testing.T) {
	bb := NewBufferBuilder(DefaultBufferParameters())
	result, err := bb.BuildPolygonBuffer(PolygonInput{Shell: Ring(unitSquare())}, 1)
	if err != nil {
		t.Fatalf("BuildPolygonBuffer: %v", err)
	}
	if len(result.Polygons) != 1 {
		t.Fatalf("expected 1 result polygon, got %d", len(result.Polygons))
	}
	shell := result.Polygons[0].Shell
	env := NewEnvelopeFromCoordinates(shell...)
	orig := NewEnvelopeFromCoordinates(unitSquare()...)
	if env.MinX() >= orig.MinX() || env.MaxX() <= orig.MaxX() {
		t.Errorf("buffered polygon envelope %v should strictly exceed original %v", env, orig)
	}
	if !IsCCW(shell) {
		t.Errorf("result shell should be CCW")
	}
}

func TestBufferBuilderEmptyInputYieldsNoPolygons(t *testing.T) {
	bb := NewBufferBuilder(DefaultBufferParameters())
	result, err := bb.BuildLineBuffer(nil, 1)
	if err != nil {
		t.Fatalf("BuildLineBuffer: %v", err)
	}
	if len(result.Polygons) != 0 {
		t.Errorf("expected no polygons for an empty line, got %d", len(result.Polygons))
	}
}

func TestDepthDeltaOf(t *testing.T) {
	outward := NewLabel(LocationBoundary, LocationInterior, LocationExterior)
	inward := NewLabel(LocationBoundary, LocationExterior, LocationInterior)
	neither := NewLabel(LocationBoundary, LocationExterior, LocationExterior)

	if depthDeltaOf(outward) != 1 {
		t.Errorf("depthDeltaOf(left=Interior,right=Exterior) = %d, want 1", depthDeltaOf(outward))
	}
	if depthDeltaOf(inward) != -1 {
		t.Errorf("depthDeltaOf(left=Exterior,right=Interior) = %d, want -1", depthDeltaOf(inward))
	}
	if depthDeltaOf(neither) != 0 {
		t.Errorf("depthDeltaOf(left=Exterior,right=Exterior) = %d, want 0", depthDeltaOf(neither))
	}
}
