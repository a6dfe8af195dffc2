package pca

import "errors"

var (
	// ErrInvalidDimension indicates dim <= 0.
	ErrInvalidDimension = errors.New("pca: dimension must be positive")
	// ErrShortVertexBuffer indicates verts cannot hold dim*vertexCount floats.
	ErrShortVertexBuffer = errors.New("pca: vertex buffer too small")
	// ErrShortBasis3Buffer indicates basis3 cannot hold 3*dim floats.
	ErrShortBasis3Buffer = errors.New("pca: basis3 buffer too small")
	// ErrShortEigenvalueBuffer indicates a non-empty eigenvalues view cannot hold dim float64s.
	ErrShortEigenvalueBuffer = errors.New("pca: eigenvalue buffer too small")
)
