package projection

import (
	"math"
	"testing"

	"github.com/rexbrahh/ndvis/buffer"
	"github.com/rexbrahh/ndvis/geometry"
)

func identityMatrix(dim int) []float32 {
	m := make([]float32, dim*dim)
	for i := 0; i < dim; i++ {
		m[i*dim+i] = 1
	}
	return m
}

func TestProjectIdentityRoundTrip(t *testing.T) {
	dim := 3
	wantV, wantE, _ := geometry.Counts(geometry.Cube, dim)
	verts := make([]float32, dim*wantV)
	edges := make([]uint32, 2*wantE)
	if _, _, err := geometry.GenerateCube(dim, buffer.NewMutView(verts), edges); err != nil {
		t.Fatal(err)
	}

	basis3 := make([]float32, 3*dim)
	if err := Canonical(buffer.NewMutView(basis3), dim); err != nil {
		t.Fatal(err)
	}

	out := make([]float32, wantV*3)
	n, err := Project(
		buffer.NewView(verts), dim, wantV,
		buffer.NewView(identityMatrix(dim)), dim,
		buffer.NewView(basis3),
		buffer.NewMutView(out),
	)
	if err != nil {
		t.Fatal(err)
	}
	if n != wantV*3 {
		t.Fatalf("written = %d; want %d", n, wantV*3)
	}

	for v := 0; v < wantV; v++ {
		for a := 0; a < 3; a++ {
			got := out[v*3+a]
			want := verts[a*wantV+v]
			if got != want {
				t.Errorf("vertex %d axis %d: got %v want %v", v, a, got, want)
			}
		}
	}
}

func TestOrthonormalizeIdempotentAndUnit(t *testing.T) {
	dim := 4
	b := []float32{
		1, 0.3, 0,
		0.2, 1, 0,
		0, 0.1, 1,
		0, 0, 0.05,
	}
	// b is stored row-major-by-axis above for readability; convert to
	// column-major-over-3 layout expected by the package.
	cm := make([]float32, 3*dim)
	for a := 0; a < dim; a++ {
		for c := 0; c < 3; c++ {
			cm[c*dim+a] = b[a*3+c]
		}
	}
	view := buffer.NewMutView(cm)
	if err := Orthonormalize(view, dim); err != nil {
		t.Fatal(err)
	}
	for c := 0; c < 3; c++ {
		var norm float64
		for a := 0; a < dim; a++ {
			x := float64(cm[c*dim+a])
			norm += x * x
		}
		if math.Abs(math.Sqrt(norm)-1) > 1e-3 {
			t.Errorf("column %d not unit length: norm=%v", c, math.Sqrt(norm))
		}
	}
	before := append([]float32(nil), cm...)
	if err := Orthonormalize(view, dim); err != nil {
		t.Fatal(err)
	}
	for i := range cm {
		if math.Abs(float64(cm[i]-before[i])) > 1e-3 {
			t.Fatalf("Orthonormalize not idempotent at %d", i)
		}
	}
}

func TestProjectShortOutputFails(t *testing.T) {
	dim := 2
	verts := make([]float32, dim*4)
	basis3 := make([]float32, 3*dim)
	_ = Canonical(buffer.NewMutView(basis3), dim)
	_, err := Project(
		buffer.NewView(verts), dim, 4,
		buffer.NewView(identityMatrix(dim)), dim,
		buffer.NewView(basis3),
		buffer.NewMutView(make([]float32, 2)),
	)
	if err != ErrShortOutputBuffer {
		t.Fatalf("err = %v; want ErrShortOutputBuffer", err)
	}
}
