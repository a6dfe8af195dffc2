package hyperplane

import "errors"

var (
	// ErrInvalidDimension indicates dim <= 0.
	ErrInvalidDimension = errors.New("hyperplane: dimension must be positive")
	// ErrShortVertexBuffer indicates verts cannot hold dim*vertexCount
	// floats, or (in Slice) edges cannot hold 2*edgeCount vertex ids.
	ErrShortVertexBuffer = errors.New("hyperplane: vertex buffer too small")
	// ErrShortNormalBuffer indicates normal cannot hold dim floats.
	ErrShortNormalBuffer = errors.New("hyperplane: normal buffer too small")
	// ErrShortClassBuffer indicates out cannot hold vertexCount
	// classifications, or (in Slice) outPoints cannot hold
	// dim*outCapacity floats or outEdgeIndices outCapacity ids.
	ErrShortClassBuffer = errors.New("hyperplane: classification buffer too small")
	// ErrZeroNormal indicates a normal vector with (numerically) zero magnitude.
	ErrZeroNormal = errors.New("hyperplane: normal vector must be non-zero")
)
