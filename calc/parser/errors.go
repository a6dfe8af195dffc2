package parser

import "errors"

var (
	// ErrUnexpectedToken indicates a token the grammar did not expect
	// at that position.
	ErrUnexpectedToken = errors.New("parser: unexpected token")
	// ErrMissingParen indicates a `(` without a matching `)`.
	ErrMissingParen = errors.New("parser: missing closing parenthesis")
	// ErrUnknownIdentifier indicates an identifier that is neither a
	// reserved function name nor a declared variable.
	ErrUnknownIdentifier = errors.New("parser: unknown identifier")
	// ErrBadArgCount indicates a function call with the wrong number
	// of arguments for its reserved name.
	ErrBadArgCount = errors.New("parser: wrong argument count")
	// ErrDepthExceeded indicates the recursive-descent call depth
	// exceeded the configured maximum.
	ErrDepthExceeded = errors.New("parser: expression nesting too deep")
	// ErrTrailingInput indicates unconsumed tokens after a complete
	// expression.
	ErrTrailingInput = errors.New("parser: trailing input")
)
