package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/rexbrahh/ndvis/calc/ast"
)

func TestPowerIsRightAssociative(t *testing.T) {
	node, err := Parse("2^3^2", nil, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	top, ok := node.(ast.Binary)
	if !ok || top.Op != ast.Pow {
		t.Fatalf("top node = %#v; want Binary Pow", node)
	}
	base, ok := top.X.(ast.Number)
	if !ok || base.Value != 2 {
		t.Fatalf("top.X = %#v; want Number 2", top.X)
	}
	rhs, ok := top.Y.(ast.Binary)
	if !ok || rhs.Op != ast.Pow {
		t.Fatalf("top.Y = %#v; want Binary Pow (3^2), 2^3^2 must parse as 2^(3^2)", top.Y)
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	// 2 + 3*4^2 should be Add(2, Mul(3, Pow(4,2))).
	node, err := Parse("2 + 3*4^2", nil, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	add, ok := node.(ast.Binary)
	if !ok || add.Op != ast.Add {
		t.Fatalf("node = %#v; want top-level Add", node)
	}
	mul, ok := add.Y.(ast.Binary)
	if !ok || mul.Op != ast.Mul {
		t.Fatalf("add.Y = %#v; want Mul", add.Y)
	}
	pow, ok := mul.Y.(ast.Binary)
	if !ok || pow.Op != ast.Pow {
		t.Fatalf("mul.Y = %#v; want Pow", mul.Y)
	}
}

func TestVariableResolution(t *testing.T) {
	node, err := Parse("x + y", []string{"x", "y"}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	add := node.(ast.Binary)
	x := add.X.(ast.Var)
	y := add.Y.(ast.Var)
	if x.Index != 0 || y.Index != 1 {
		t.Fatalf("indices = (%d,%d); want (0,1)", x.Index, y.Index)
	}
}

func TestFunctionCallArity(t *testing.T) {
	if _, err := Parse("sin(x)", []string{"x"}, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse("pow(x, 2)", []string{"x"}, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	_, err := Parse("sin(x, y)", []string{"x", "y"}, DefaultOptions())
	if !errors.Is(err, ErrBadArgCount) {
		t.Fatalf("err = %v; want ErrBadArgCount", err)
	}
}

func TestUnknownIdentifier(t *testing.T) {
	_, err := Parse("z + 1", []string{"x"}, DefaultOptions())
	if !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("err = %v; want ErrUnknownIdentifier", err)
	}
}

func TestMissingParen(t *testing.T) {
	_, err := Parse("(1 + 2", nil, DefaultOptions())
	if !errors.Is(err, ErrMissingParen) {
		t.Fatalf("err = %v; want ErrMissingParen", err)
	}
}

func TestTrailingInput(t *testing.T) {
	_, err := Parse("1 + 2)", nil, DefaultOptions())
	if !errors.Is(err, ErrTrailingInput) {
		t.Fatalf("err = %v; want ErrTrailingInput", err)
	}
}

func TestDepthCapTriggers(t *testing.T) {
	src := strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20)
	_, err := Parse(src, nil, Options{MaxDepth: 5})
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("err = %v; want ErrDepthExceeded", err)
	}
}

func TestUnaryNegation(t *testing.T) {
	node, err := Parse("-2^2", nil, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	// Unary minus binds looser than power, so -2^2 parses as
	// -(2^2) = -4, not (-2)^2 = 4.
	neg, ok := node.(ast.Neg)
	if !ok {
		t.Fatalf("node = %#v; want Neg", node)
	}
	if _, ok := neg.X.(ast.Binary); !ok {
		t.Fatalf("neg.X = %#v; want Binary Pow", neg.X)
	}
}
