package geometry

import "errors"

var (
	// ErrInvalidDimension indicates dim is outside the supported [1, 31] range.
	ErrInvalidDimension = errors.New("geometry: dimension must be in [1, 31]")
	// ErrInvalidKind indicates an unrecognized polytope kind.
	ErrInvalidKind = errors.New("geometry: unrecognized polytope kind")
	// ErrShortVertexBuffer indicates the vertex view cannot hold dim*N floats.
	ErrShortVertexBuffer = errors.New("geometry: vertex buffer too small")
	// ErrShortEdgeBuffer indicates the edge slice cannot hold 2*edgeCount ids.
	ErrShortEdgeBuffer = errors.New("geometry: edge buffer too small")
)
