package eigen

import "errors"

var (
	// ErrInvalidOrder indicates a non-positive matrix order.
	ErrInvalidOrder = errors.New("eigen: order must be positive")
	// ErrShortMatrixBuffer indicates the matrix buffer cannot hold order*order float64s.
	ErrShortMatrixBuffer = errors.New("eigen: matrix buffer too small")
	// ErrShortVectorBuffer indicates the eigenvector buffer cannot hold order*order float64s.
	ErrShortVectorBuffer = errors.New("eigen: eigenvector buffer too small")
)
