package ad

import "errors"

var (
	ErrDivByZero  = errors.New("ad: division by zero")
	ErrLogDomain  = errors.New("ad: log of non-positive value")
	ErrSqrtDomain = errors.New("ad: sqrt of negative value")
	ErrVarIndex   = errors.New("ad: variable index out of range")
	ErrBadOp      = errors.New("ad: malformed program")
)
