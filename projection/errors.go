package projection

import "errors"

var (
	// ErrInvalidDimension indicates dim <= 0 or vertexCount < 0.
	ErrInvalidDimension = errors.New("projection: dimension must be positive")
	// ErrShortVertexBuffer indicates verts cannot hold dim*vertexCount floats.
	ErrShortVertexBuffer = errors.New("projection: vertex buffer too small")
	// ErrShortRotationBuffer indicates rotation cannot hold a dim x dim matrix at the given stride.
	ErrShortRotationBuffer = errors.New("projection: rotation buffer too small")
	// ErrShortBasis3Buffer indicates basis3 cannot hold 3*dim floats.
	ErrShortBasis3Buffer = errors.New("projection: basis3 buffer too small")
	// ErrShortOutputBuffer indicates out cannot hold vertexCount*3 floats.
	ErrShortOutputBuffer = errors.New("projection: output buffer too small")
)
