// Package codes holds the shared calculus error-code alphabet from
// spec.md §6/§7 (Ok, Parse, InvalidExpression, Eval, OutOfMemory,
// InvalidDimension, NullPointer) and a helper for recovering a Code
// from a wrapped Go error.
package codes

import "errors"

// Code is the calculus-side error alphabet exposed at the ABI boundary.
type Code int

const (
	Ok Code = iota
	Parse
	InvalidExpression
	Eval
	OutOfMemory
	InvalidDimension
	NullPointer
)

func (c Code) String() string {
	switch c {
	case Ok:
		return "Ok"
	case Parse:
		return "Parse"
	case InvalidExpression:
		return "InvalidExpression"
	case Eval:
		return "Eval"
	case OutOfMemory:
		return "OutOfMemory"
	case InvalidDimension:
		return "InvalidDimension"
	case NullPointer:
		return "NullPointer"
	default:
		return "Unknown"
	}
}

// Coded pairs an underlying error with the Code it should report at
// the ABI boundary. github.com/pkg/errors.Wrap/Wrapf add positional
// context on top of Coded without disturbing errors.Is/As, since
// Coded implements Unwrap.
type Coded struct {
	Code Code
	Err  error
}

func (c *Coded) Error() string { return c.Err.Error() }
func (c *Coded) Unwrap() error { return c.Err }

// Wrap tags err with code. If err is nil, Wrap returns nil.
func Wrap(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &Coded{Code: code, Err: err}
}

// Of recovers the Code attached to err via Wrap, or Ok if err is nil,
// or InvalidExpression if err carries no Coded in its chain.
func Of(err error) Code {
	if err == nil {
		return Ok
	}
	var c *Coded
	if errors.As(err, &c) {
		return c.Code
	}
	return InvalidExpression
}
