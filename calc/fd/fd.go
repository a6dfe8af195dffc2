package fd

import (
	"github.com/rexbrahh/ndvis/calc/bytecode"
	"github.com/rexbrahh/ndvis/calc/vm"
)

// DefaultStep is the default central-difference step h (spec.md §4.11).
const DefaultStep = 1e-8

// Gradient computes df/dxi ~= (f(x+h*ei) - f(x-h*ei)) / (2h) for every
// declared variable, evaluating prog through a fresh VM.
func Gradient(prog *bytecode.Program, inputs []float64, h float64) ([]float64, error) {
	if h == 0 {
		h = DefaultStep
	}
	n := len(inputs)
	if n == 0 {
		return nil, ErrEmptyInputs
	}
	m := vm.New()
	grad := make([]float64, n)
	perturbed := make([]float64, n)
	for i := 0; i < n; i++ {
		copy(perturbed, inputs)
		perturbed[i] += h
		plus, err := m.Eval(prog, perturbed)
		if err != nil {
			return nil, err
		}
		copy(perturbed, inputs)
		perturbed[i] -= h
		minus, err := m.Eval(prog, perturbed)
		if err != nil {
			return nil, err
		}
		grad[i] = (plus - minus) / (2 * h)
	}
	return grad, nil
}

// Hessian computes second-order mixed partials by central-differencing
// Gradient itself, then symmetrizes by averaging H_ij and H_ji
// (spec.md §4.11: the raw finite-difference estimate need not be
// exactly symmetric).
func Hessian(prog *bytecode.Program, inputs []float64, h float64) ([][]float64, error) {
	if h == 0 {
		h = DefaultStep
	}
	n := len(inputs)
	if n == 0 {
		return nil, ErrEmptyInputs
	}
	raw := make([][]float64, n)
	perturbed := make([]float64, n)
	for i := 0; i < n; i++ {
		copy(perturbed, inputs)
		perturbed[i] += h
		gPlus, err := Gradient(prog, perturbed, h)
		if err != nil {
			return nil, err
		}
		copy(perturbed, inputs)
		perturbed[i] -= h
		gMinus, err := Gradient(prog, perturbed, h)
		if err != nil {
			return nil, err
		}
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j] = (gPlus[j] - gMinus[j]) / (2 * h)
		}
		raw[i] = row
	}

	hess := make([][]float64, n)
	for i := range hess {
		hess[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			hess[i][j] = (raw[i][j] + raw[j][i]) / 2
		}
	}
	return hess, nil
}
