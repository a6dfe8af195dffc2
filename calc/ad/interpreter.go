package ad

import "github.com/rexbrahh/ndvis/calc/bytecode"

// DefaultHessianStep is the default perturbation h used by Hessian
// (spec.md §4.10 default 1e-8).
const DefaultHessianStep = 1e-8

// eval runs prog over dual-number inputs and returns the final stack
// value (value and tangent together).
func eval(prog *bytecode.Program, inputs []Dual) (Dual, error) {
	var stack []Dual
	push := func(d Dual) { stack = append(stack, d) }
	pop := func() (Dual, error) {
		n := len(stack)
		if n == 0 {
			return Dual{}, ErrBadOp
		}
		v := stack[n-1]
		stack = stack[:n-1]
		return v, nil
	}

	for _, ins := range prog.Instructions {
		if ins.Op == bytecode.Return {
			break
		}
		switch ins.Op {
		case bytecode.PushConst:
			if ins.Arg < 0 || ins.Arg >= len(prog.Constants) {
				return Dual{}, ErrBadOp
			}
			push(Constant(prog.Constants[ins.Arg]))

		case bytecode.LoadVar:
			if ins.Arg < 0 || ins.Arg >= len(inputs) {
				return Dual{}, ErrVarIndex
			}
			push(inputs[ins.Arg])

		case bytecode.Add, bytecode.Sub, bytecode.Mul, bytecode.Div, bytecode.Pow:
			b, err := pop()
			if err != nil {
				return Dual{}, err
			}
			a, err := pop()
			if err != nil {
				return Dual{}, err
			}
			switch ins.Op {
			case bytecode.Add:
				push(addD(a, b))
			case bytecode.Sub:
				push(subD(a, b))
			case bytecode.Mul:
				push(mulD(a, b))
			case bytecode.Div:
				r, err := divD(a, b)
				if err != nil {
					return Dual{}, err
				}
				push(r)
			case bytecode.Pow:
				push(powD(a, b))
			}

		case bytecode.Neg, bytecode.Sin, bytecode.Cos, bytecode.Tan, bytecode.Exp, bytecode.Log, bytecode.Sqrt, bytecode.Abs:
			a, err := pop()
			if err != nil {
				return Dual{}, err
			}
			switch ins.Op {
			case bytecode.Neg:
				push(negD(a))
			case bytecode.Sin:
				push(sinD(a))
			case bytecode.Cos:
				push(cosD(a))
			case bytecode.Tan:
				push(tanD(a))
			case bytecode.Exp:
				push(expD(a))
			case bytecode.Log:
				r, err := logD(a)
				if err != nil {
					return Dual{}, err
				}
				push(r)
			case bytecode.Sqrt:
				r, err := sqrtD(a)
				if err != nil {
					return Dual{}, err
				}
				push(r)
			case bytecode.Abs:
				push(absD(a))
			}

		default:
			return Dual{}, ErrBadOp
		}
	}
	if len(stack) != 1 {
		return Dual{}, ErrBadOp
	}
	return stack[0], nil
}

// Gradient computes df/dxi for every declared variable by seed
// sweep: run prog once per variable with that variable's tangent set
// to 1 and all others to 0. Cost is O(n * program size).
func Gradient(prog *bytecode.Program, inputs []float64) ([]float64, error) {
	n := len(inputs)
	grad := make([]float64, n)
	duals := make([]Dual, n)
	for i := 0; i < n; i++ {
		for j := range duals {
			duals[j] = Constant(inputs[j])
		}
		duals[i] = Seed(inputs[i])
		result, err := eval(prog, duals)
		if err != nil {
			return nil, err
		}
		grad[i] = result.D
	}
	return grad, nil
}

// Hessian computes the hybrid finite-difference-on-AD-gradient Hessian
// (spec.md §4.10): row i is (gradient(x+h*e_i) - gradient(x)) / h.
// Symmetrization is the caller's responsibility (tests check symmetry
// within tolerance rather than enforcing it here).
func Hessian(prog *bytecode.Program, inputs []float64, h float64) ([][]float64, error) {
	if h == 0 {
		h = DefaultHessianStep
	}
	n := len(inputs)
	g0, err := Gradient(prog, inputs)
	if err != nil {
		return nil, err
	}
	hess := make([][]float64, n)
	perturbed := make([]float64, n)
	for i := 0; i < n; i++ {
		copy(perturbed, inputs)
		perturbed[i] += h
		gi, err := Gradient(prog, perturbed)
		if err != nil {
			return nil, err
		}
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j] = (gi[j] - g0[j]) / h
		}
		hess[i] = row
	}
	return hess, nil
}
