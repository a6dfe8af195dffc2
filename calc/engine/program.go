package engine

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/rexbrahh/ndvis/calc/ad"
	"github.com/rexbrahh/ndvis/calc/bytecode"
	"github.com/rexbrahh/ndvis/calc/codes"
	"github.com/rexbrahh/ndvis/calc/fd"
	"github.com/rexbrahh/ndvis/calc/vm"
)

// Program is a compiled expression, immutable except for its own
// mode/epsilon setters. It is safe to read (Eval/Gradient/Hessian)
// from many goroutines concurrently, each call using its own VM
// instance; setters must not race with evaluations (spec.md §5).
type Program struct {
	bc        *bytecode.Program
	mode      Mode
	fdEpsilon float64
}

// Arity returns the number of declared variables.
func (p *Program) Arity() int { return p.bc.Arity() }

// Source returns the original expression text.
func (p *Program) Source() string { return p.bc.Source }

// SetMode reconfigures this already-compiled Program's differentiation mode.
func (p *Program) SetMode(m Mode) { p.mode = m }

// SetFDEpsilon reconfigures this already-compiled Program's
// finite-difference step.
func (p *Program) SetFDEpsilon(h float64) { p.fdEpsilon = h }

func (p *Program) checkArity(inputs []float64) error {
	if len(inputs) != p.Arity() {
		return codes.Wrap(codes.InvalidDimension, pkgerrors.Wrapf(
			ErrDimensionMismatch, "program %q: got %d inputs, want %d", p.Source(), len(inputs), p.Arity(),
		))
	}
	return nil
}

// Eval evaluates the program at a single point.
func (p *Program) Eval(inputs []float64) (float64, error) {
	if err := p.checkArity(inputs); err != nil {
		return 0, err
	}
	v, err := vm.New().Eval(p.bc, inputs)
	if err != nil {
		return 0, codes.Wrap(codes.Eval, pkgerrors.Wrapf(err, "program %q: eval failed", p.Source()))
	}
	return v, nil
}

// EvalBatch evaluates the program over a structure-of-arrays batch:
// vars[i] holds P values for variable i, out must have length P.
func (p *Program) EvalBatch(vars [][]float64, out []float64) error {
	if len(vars) != p.Arity() {
		return codes.Wrap(codes.InvalidDimension, pkgerrors.Wrapf(
			ErrDimensionMismatch, "program %q: got %d variable columns, want %d", p.Source(), len(vars), p.Arity(),
		))
	}
	if err := vm.New().EvalBatch(p.bc, vars, out); err != nil {
		return codes.Wrap(codes.Eval, pkgerrors.Wrapf(err, "program %q: batch eval failed", p.Source()))
	}
	return nil
}

// Gradient computes the gradient at inputs, following the Program's
// current Mode: Auto tries forward AD and falls back to finite
// differences if AD fails; Forward never falls back; FiniteDiff
// always uses finite differences.
func (p *Program) Gradient(inputs []float64) ([]float64, error) {
	if err := p.checkArity(inputs); err != nil {
		return nil, err
	}
	switch p.mode {
	case Forward:
		g, err := ad.Gradient(p.bc, inputs)
		if err != nil {
			return nil, codes.Wrap(codes.Eval, pkgerrors.Wrapf(err, "program %q: forward-mode gradient failed", p.Source()))
		}
		return g, nil
	case FiniteDiff:
		g, err := fd.Gradient(p.bc, inputs, p.fdEpsilon)
		if err != nil {
			return nil, codes.Wrap(codes.Eval, pkgerrors.Wrapf(err, "program %q: finite-difference gradient failed", p.Source()))
		}
		return g, nil
	default: // Auto
		g, err := ad.Gradient(p.bc, inputs)
		if err == nil {
			return g, nil
		}
		g, err = fd.Gradient(p.bc, inputs, p.fdEpsilon)
		if err != nil {
			return nil, codes.Wrap(codes.Eval, pkgerrors.Wrapf(err, "program %q: auto-mode gradient failed after AD fallback to finite differences", p.Source()))
		}
		return g, nil
	}
}

// Hessian computes the Hessian at inputs, following the same mode
// selection as Gradient; the AD path uses the hybrid
// finite-difference-on-AD-gradient method of spec.md §4.10.
func (p *Program) Hessian(inputs []float64) ([][]float64, error) {
	if err := p.checkArity(inputs); err != nil {
		return nil, err
	}
	switch p.mode {
	case Forward:
		h, err := ad.Hessian(p.bc, inputs, p.fdEpsilon)
		if err != nil {
			return nil, codes.Wrap(codes.Eval, pkgerrors.Wrapf(err, "program %q: forward-mode Hessian failed", p.Source()))
		}
		return h, nil
	case FiniteDiff:
		h, err := fd.Hessian(p.bc, inputs, p.fdEpsilon)
		if err != nil {
			return nil, codes.Wrap(codes.Eval, pkgerrors.Wrapf(err, "program %q: finite-difference Hessian failed", p.Source()))
		}
		return h, nil
	default: // Auto
		h, err := ad.Hessian(p.bc, inputs, p.fdEpsilon)
		if err == nil {
			return h, nil
		}
		h, err = fd.Hessian(p.bc, inputs, p.fdEpsilon)
		if err != nil {
			return nil, codes.Wrap(codes.Eval, pkgerrors.Wrapf(err, "program %q: auto-mode Hessian failed after AD fallback to finite differences", p.Source()))
		}
		return h, nil
	}
}
