package vm

import (
	"math"

	pkgerrors "github.com/pkg/errors"

	"github.com/rexbrahh/ndvis/calc/bytecode"
)

// VM is a float64 stack interpreter with a reusable stack (one VM per
// goroutine; it is not safe for concurrent use).
type VM struct {
	stack []float64
}

// New returns a VM with an empty stack.
func New() *VM {
	return &VM{}
}

// Eval runs prog against a single point: inputs[i] is the value of
// prog.VarNames[i].
func (m *VM) Eval(prog *bytecode.Program, inputs []float64) (float64, error) {
	m.stack = m.stack[:0]
	for pc, ins := range prog.Instructions {
		if ins.Op == bytecode.Return {
			break
		}
		if err := m.step(ins, prog, inputs); err != nil {
			return 0, pkgerrors.Wrapf(err, "program %q: instruction %d (%s)", prog.Source, pc, ins.Op)
		}
	}
	if len(m.stack) != 1 {
		return 0, pkgerrors.Wrapf(ErrMalformedProgram, "program %q: stack holds %d values at return, want 1", prog.Source, len(m.stack))
	}
	return m.stack[0], nil
}

// EvalBatch evaluates prog once per point over a structure-of-arrays
// input: vars[i] holds P values for prog.VarNames[i]. out must have
// length P. Points are processed in index order; a single point's
// failure aborts the batch and returns the error, with out entries at
// or after the failing index left unspecified.
func (m *VM) EvalBatch(prog *bytecode.Program, vars [][]float64, out []float64) error {
	if len(vars) != prog.Arity() {
		return pkgerrors.Wrapf(ErrVarIndex, "program %q: got %d variable columns, want %d", prog.Source, len(vars), prog.Arity())
	}
	p := len(out)
	point := make([]float64, len(vars))
	for i := 0; i < p; i++ {
		for v := range vars {
			if len(vars[v]) <= i {
				return pkgerrors.Wrapf(ErrVarIndex, "program %q: variable column %d too short for batch point %d", prog.Source, v, i)
			}
			point[v] = vars[v][i]
		}
		val, err := m.Eval(prog, point)
		if err != nil {
			return pkgerrors.Wrapf(err, "batch point %d", i)
		}
		out[i] = val
	}
	return nil
}

func (m *VM) step(ins bytecode.Instruction, prog *bytecode.Program, inputs []float64) error {
	switch ins.Op {
	case bytecode.PushConst:
		if ins.Arg < 0 || ins.Arg >= len(prog.Constants) {
			return ErrMalformedProgram
		}
		m.push(prog.Constants[ins.Arg])
		return nil

	case bytecode.LoadVar:
		if ins.Arg < 0 || ins.Arg >= len(inputs) {
			return ErrVarIndex
		}
		m.push(inputs[ins.Arg])
		return nil

	case bytecode.Add, bytecode.Sub, bytecode.Mul, bytecode.Div, bytecode.Pow:
		b, err := m.pop()
		if err != nil {
			return err
		}
		a, err := m.pop()
		if err != nil {
			return err
		}
		switch ins.Op {
		case bytecode.Add:
			m.push(a + b)
		case bytecode.Sub:
			m.push(a - b)
		case bytecode.Mul:
			m.push(a * b)
		case bytecode.Div:
			if b == 0 {
				return ErrDivByZero
			}
			m.push(a / b)
		case bytecode.Pow:
			m.push(math.Pow(a, b))
		}
		return nil

	case bytecode.Neg, bytecode.Sin, bytecode.Cos, bytecode.Tan, bytecode.Exp, bytecode.Log, bytecode.Sqrt, bytecode.Abs:
		a, err := m.pop()
		if err != nil {
			return err
		}
		switch ins.Op {
		case bytecode.Neg:
			m.push(-a)
		case bytecode.Sin:
			m.push(math.Sin(a))
		case bytecode.Cos:
			m.push(math.Cos(a))
		case bytecode.Tan:
			m.push(math.Tan(a))
		case bytecode.Exp:
			m.push(math.Exp(a))
		case bytecode.Log:
			if a <= 0 {
				return ErrLogDomain
			}
			m.push(math.Log(a))
		case bytecode.Sqrt:
			if a < 0 {
				return ErrSqrtDomain
			}
			m.push(math.Sqrt(a))
		case bytecode.Abs:
			m.push(math.Abs(a))
		}
		return nil

	default:
		return ErrMalformedProgram
	}
}

func (m *VM) push(v float64) { m.stack = append(m.stack, v) }

func (m *VM) pop() (float64, error) {
	n := len(m.stack)
	if n == 0 {
		return 0, ErrStackUnderflow
	}
	v := m.stack[n-1]
	m.stack = m.stack[:n-1]
	return v, nil
}
