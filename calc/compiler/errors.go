package compiler

import "errors"

var (
	// ErrUnknownFunction indicates an ast.Call naming a function the
	// compiler does not recognize. The parser rejects these before
	// they reach the compiler; this guards hand-built trees.
	ErrUnknownFunction = errors.New("compiler: unknown function")
	// ErrUnsupportedNode indicates an ast.Node of an unrecognized
	// concrete type.
	ErrUnsupportedNode = errors.New("compiler: unsupported expression node")
)
