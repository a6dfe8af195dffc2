package ad

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

func TestGradientXPlusY(t *testing.T) {
	prog := compileProg(t, "x + y", []string{"x", "y"})
	g, err := Gradient(prog, []float64{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if g[0] != 1 || g[1] != 1 {
		t.Fatalf("gradient = %v; want (1,1)", g)
	}
}

func TestGradientXSquaredPlusYSquared(t *testing.T) {
	prog := compileProg(t, "x^2 + y^2", []string{"x", "y"})
	g, err := Gradient(prog, []float64{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if g[0] != 6 || g[1] != 8 {
		t.Fatalf("gradient = %v; want (6,8)", g)
	}
}

func TestHessianOfSumOfSquaresIsDiagonal(t *testing.T) {
	prog := compileProg(t, "x^2 + y^2", []string{"x", "y"})
	h, err := Hessian(prog, []float64{3, 4}, DefaultHessianStep)
	if err != nil {
		t.Fatal(err)
	}
	const tol = 1e-4
	if math.Abs(h[0][0]-2) > tol || math.Abs(h[1][1]-2) > tol {
		t.Fatalf("diagonal = (%v,%v); want (2,2) +-1e-4", h[0][0], h[1][1])
	}
	if math.Abs(h[0][1]) > tol || math.Abs(h[1][0]) > tol {
		t.Fatalf("off-diagonal = (%v,%v); want ~0", h[0][1], h[1][0])
	}
}

func TestHessianSymmetryWithinTolerance(t *testing.T) {
	prog := compileProg(t, "sin(x)*y + x*cos(y)", []string{"x", "y"})
	h, err := Hessian(prog, []float64{0.7, 1.3}, DefaultHessianStep)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(h[0][1]-h[1][0]) > 1e-4 {
		t.Fatalf("|H01 - H10| = %v; want <= 1e-4", math.Abs(h[0][1]-h[1][0]))
	}
}

func TestDualTrigIdentity(t *testing.T) {
	prog := compileProg(t, "sin(x)^2 + cos(x)^2", []string{"x"})
	for _, x := range []float64{0, 0.5, 1.2, 3.0} {
		v, err := eval(prog, []Dual{Constant(x)})
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(v.V-1) > 1e-10 {
			t.Errorf("sin^2+cos^2 at x=%v = %v; want 1", x, v.V)
		}
	}
}
