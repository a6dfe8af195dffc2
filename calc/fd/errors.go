package fd

import "errors"

// ErrEmptyInputs indicates a Gradient/Hessian call with no variables.
var ErrEmptyInputs = errors.New("fd: no input variables")
