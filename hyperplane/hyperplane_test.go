package hyperplane

import (
	"testing"

	"github.com/rexbrahh/ndvis/buffer"
	"github.com/rexbrahh/ndvis/geometry"
)

func TestDistanceAndClassify(t *testing.T) {
	normal := []float32{1, 0, 0}
	point := []float32{2, 5, -3}
	d, err := Distance(buffer.NewView(point), buffer.NewView(normal), 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d != 1 {
		t.Fatalf("distance = %v; want 1", d)
	}
	if c := Classify(d); c != 1 {
		t.Errorf("Classify(%v) = %d; want 1", d, c)
	}
	if c := Classify(-1); c != -1 {
		t.Errorf("Classify(-1) = %d; want -1", c)
	}
	if c := Classify(1e-7); c != 0 {
		t.Errorf("Classify(1e-7) = %d; want 0", c)
	}
}

// Scenario 5 from spec.md §8: slicing the 3-cube with hyperplane
// normal (1,0,0), offset 0 yields exactly four edge intersections at
// (0, +-1, +-1), order-independent.
func TestSliceCubeFourIntersections(t *testing.T) {
	dim := 3
	wantV, wantE, _ := geometry.Counts(geometry.Cube, dim)
	verts := make([]float32, dim*wantV)
	edges := make([]uint32, 2*wantE)
	if _, _, err := geometry.GenerateCube(dim, buffer.NewMutView(verts), edges); err != nil {
		t.Fatal(err)
	}

	normal := []float32{1, 0, 0}
	outPoints := make([]float32, dim*8)
	outEdgeIdx := make([]uint32, 8)
	count, err := Slice(
		buffer.NewView(verts), wantV, dim,
		edges, wantE,
		buffer.NewView(normal), 0,
		buffer.NewMutView(outPoints), 8,
		outEdgeIdx,
	)
	if err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Fatalf("intersection count = %d; want 4", count)
	}

	seen := map[[2]float32]bool{}
	for i := 0; i < count; i++ {
		x := outPoints[0*8+i]
		y := outPoints[1*8+i]
		z := outPoints[2*8+i]
		if x > 1e-5 || x < -1e-5 {
			t.Errorf("intersection %d x=%v; want 0", i, x)
		}
		if (y != 1 && y != -1) || (z != 1 && z != -1) {
			t.Errorf("intersection %d (y,z)=(%v,%v); want +-1 each", i, y, z)
		}
		seen[[2]float32{y, z}] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct (y,z) corners, got %d: %v", len(seen), seen)
	}
}

func TestSliceStopsAtCapacity(t *testing.T) {
	dim := 3
	wantV, wantE, _ := geometry.Counts(geometry.Cube, dim)
	verts := make([]float32, dim*wantV)
	edges := make([]uint32, 2*wantE)
	_, _, _ = geometry.GenerateCube(dim, buffer.NewMutView(verts), edges)

	normal := []float32{1, 0, 0}
	outPoints := make([]float32, dim*2)
	outEdgeIdx := make([]uint32, 2)
	count, err := Slice(
		buffer.NewView(verts), wantV, dim,
		edges, wantE,
		buffer.NewView(normal), 0,
		buffer.NewMutView(outPoints), 2,
		outEdgeIdx,
	)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("count = %d; want 2 (capacity-limited)", count)
	}
}

func TestSliceSkipsDegenerateBothOnPlane(t *testing.T) {
	// A single edge lying exactly in the plane x=0.
	dim := 2
	verts := []float32{0, 0, 1, -1} // axis-major: x=[0,0], y=[1,-1]
	edges := []uint32{0, 1}
	normal := []float32{1, 0}
	outPoints := make([]float32, dim*4)
	outEdgeIdx := make([]uint32, 4)
	count, err := Slice(
		buffer.NewView(verts), 2, dim,
		edges, 1,
		buffer.NewView(normal), 0,
		buffer.NewMutView(outPoints), 4,
		outEdgeIdx,
	)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("count = %d; want 0 (degenerate edge skipped)", count)
	}
}

func TestNormalizeRejectsZeroVector(t *testing.T) {
	n := []float32{0, 0, 0}
	if err := Normalize(buffer.NewMutView(n), 3); err != ErrZeroNormal {
		t.Fatalf("err = %v; want ErrZeroNormal", err)
	}
}

func TestNormalizeUnitizes(t *testing.T) {
	n := []float32{3, 4, 0}
	if err := Normalize(buffer.NewMutView(n), 3); err != nil {
		t.Fatal(err)
	}
	if n[0] != 0.6 || n[1] != 0.8 {
		t.Fatalf("normalized = %v; want (0.6, 0.8, 0)", n)
	}
}
