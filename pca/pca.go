package pca

import (
	"github.com/rexbrahh/ndvis/buffer"
	"github.com/rexbrahh/ndvis/eigen"
)

// Compute runs PCA over vertexCount vertices of dimension dim stored
// SoA in verts, writing a 3*dim Basis3 table (top-3 eigenvectors,
// descending by eigenvalue) into basis3. If eigenvalues is non-empty
// it must hold dim float64s and receives the full sorted, non-negative
// eigenvalue list.
func Compute(verts buffer.F32View, vertexCount, dim int, basis3 buffer.MutF32View, eigenvalues buffer.MutF64View) error {
	if dim <= 0 {
		return ErrInvalidDimension
	}
	if !basis3.HasCapacity(3 * dim) {
		return ErrShortBasis3Buffer
	}
	if eigenvalues.Len() > 0 && !eigenvalues.HasCapacity(dim) {
		return ErrShortEigenvalueBuffer
	}
	if vertexCount > 0 && !verts.HasCapacity(dim*vertexCount) {
		return ErrShortVertexBuffer
	}

	if vertexCount == 0 {
		writeCanonicalBasis(basis3, dim)
		for a := 0; a < dim; a++ {
			if eigenvalues.Len() > 0 {
				eigenvalues.Set(a, 0)
			}
		}
		return nil
	}

	mean := make([]float64, dim)
	for a := 0; a < dim; a++ {
		var sum float64
		for v := 0; v < vertexCount; v++ {
			sum += float64(verts.At(a*vertexCount + v))
		}
		mean[a] = sum / float64(vertexCount)
	}

	denom := float64(vertexCount - 1)
	if vertexCount <= 1 {
		denom = 1
	}
	cov := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			var sum float64
			for v := 0; v < vertexCount; v++ {
				di := float64(verts.At(i*vertexCount+v)) - mean[i]
				dj := float64(verts.At(j*vertexCount+v)) - mean[j]
				sum += di * dj
			}
			c := sum / denom
			cov[i*dim+j] = c
			cov[j*dim+i] = c
		}
	}

	vectors := make([]float64, dim*dim)
	covView := buffer.NewMutView(cov)
	vecView := buffer.NewMutView(vectors)
	if _, err := eigen.Jacobi(covView, vecView, dim, eigen.DefaultOptions()); err != nil {
		return err
	}
	if err := eigen.SortDescending(covView, vecView, dim); err != nil {
		return err
	}

	for a := 0; a < dim; a++ {
		v := cov[a*dim+a]
		if v < 0 {
			v = 0
		}
		if eigenvalues.Len() > 0 {
			eigenvalues.Set(a, v)
		}
	}

	topCols := 3
	if dim < 3 {
		topCols = dim
	}
	for c := 0; c < topCols; c++ {
		for a := 0; a < dim; a++ {
			basis3.Set(c*dim+a, float32(vectors[a*dim+c]))
		}
	}
	for c := topCols; c < 3; c++ {
		for a := 0; a < dim; a++ {
			v := float32(0)
			if a == c {
				v = 1
			}
			basis3.Set(c*dim+a, v)
		}
	}
	return nil
}

func writeCanonicalBasis(basis3 buffer.MutF32View, dim int) {
	for c := 0; c < 3; c++ {
		for a := 0; a < dim; a++ {
			v := float32(0)
			if a == c {
				v = 1
			}
			basis3.Set(c*dim+a, v)
		}
	}
}
