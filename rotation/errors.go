package rotation

import "errors"

var (
	// ErrInvalidOrder indicates a non-positive matrix order.
	ErrInvalidOrder = errors.New("rotation: order must be positive")
	// ErrShortBuffer indicates mat cannot hold order*order floats.
	ErrShortBuffer = errors.New("rotation: matrix buffer too small")
	// ErrAxisOutOfRange indicates a plane's axis index is outside [0, order).
	ErrAxisOutOfRange = errors.New("rotation: plane axis out of range")
)
