package vm

import "errors"

var (
	// ErrDivByZero indicates a Div instruction with a zero divisor.
	ErrDivByZero = errors.New("vm: division by zero")
	// ErrLogDomain indicates a Log instruction on a non-positive argument.
	ErrLogDomain = errors.New("vm: log of non-positive value")
	// ErrSqrtDomain indicates a Sqrt instruction on a negative argument.
	ErrSqrtDomain = errors.New("vm: sqrt of negative value")
	// ErrVarIndex indicates a LoadVar instruction whose index is out
	// of range for the supplied input.
	ErrVarIndex = errors.New("vm: variable index out of range")
	// ErrStackUnderflow indicates an opcode popped from an empty stack.
	ErrStackUnderflow = errors.New("vm: stack underflow")
	// ErrMalformedProgram indicates a well-formedness violation: the
	// stack did not hold exactly one value at Return.
	ErrMalformedProgram = errors.New("vm: malformed program")
)
