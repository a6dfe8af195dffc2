package fd

import (
	"math"
	"testing"

	"github.com/rexbrahh/ndvis/calc/bytecode"
	"github.com/rexbrahh/ndvis/calc/compiler"
	"github.com/rexbrahh/ndvis/calc/parser"
)

func compileProg(t *testing.T, src string, vars []string) *bytecode.Program {
	t.Helper()
	node, err := parser.Parse(src, vars, parser.DefaultOptions())
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	prog, err := compiler.Compile(node, vars, src)
	if err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	return prog
}

func TestGradientMatchesAnalytic(t *testing.T) {
	prog := compileProg(t, "x^2 + y^2", []string{"x", "y"})
	g, err := Gradient(prog, []float64{3, 4}, DefaultStep)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g[0]-6) > 1e-3 || math.Abs(g[1]-8) > 1e-3 {
		t.Fatalf("gradient = %v; want ~(6,8)", g)
	}
}

func TestHessianSymmetrized(t *testing.T) {
	prog := compileProg(t, "x*y + sin(x)", []string{"x", "y"})
	h, err := Hessian(prog, []float64{0.4, 1.1}, 1e-4)
	if err != nil {
		t.Fatal(err)
	}
	if h[0][1] != h[1][0] {
		t.Fatalf("H[0][1]=%v H[1][0]=%v; symmetrization should make them equal", h[0][1], h[1][0])
	}
}

func TestEmptyInputsRejected(t *testing.T) {
	prog := compileProg(t, "1+1", nil)
	if _, err := Gradient(prog, nil, DefaultStep); err != ErrEmptyInputs {
		t.Fatalf("err = %v; want ErrEmptyInputs", err)
	}
}
