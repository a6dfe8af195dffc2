package engine

import "errors"

var (
	// ErrUnknownMode indicates a Mode value outside {Auto, Forward, FiniteDiff}.
	ErrUnknownMode = errors.New("engine: unknown evaluation mode")
	// ErrDimensionMismatch indicates an inputs slice whose length does
	// not match the program's declared variable arity.
	ErrDimensionMismatch = errors.New("engine: input length does not match program arity")
)
