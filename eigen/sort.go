package eigen

import (
	"sort"

	"github.com/rexbrahh/ndvis/buffer"
)

// SortDescending reorders the order eigenvalues on m's diagonal (and
// the matching columns of vectors) into descending order. Ties keep
// their original relative order (stable sort), matching spec.md §4.4.
func SortDescending(m, vectors buffer.MutF64View, order int) error {
	if order <= 0 {
		return ErrInvalidOrder
	}
	if !m.HasCapacity(order * order) {
		return ErrShortMatrixBuffer
	}
	if !vectors.HasCapacity(order * order) {
		return ErrShortVectorBuffer
	}

	eigenvalues := make([]float64, order)
	for i := 0; i < order; i++ {
		eigenvalues[i] = m.At(i*order + i)
	}

	perm := make([]int, order)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return eigenvalues[perm[a]] > eigenvalues[perm[b]]
	})

	newVectors := make([]float64, order*order)
	for newCol, oldCol := range perm {
		for row := 0; row < order; row++ {
			newVectors[row*order+newCol] = vectors.At(row*order + oldCol)
		}
	}
	for row := 0; row < order; row++ {
		for col := 0; col < order; col++ {
			vectors.Set(row*order+col, newVectors[row*order+col])
		}
	}

	for i := 0; i < order; i++ {
		for j := 0; j < order; j++ {
			v := 0.0
			if i == j {
				v = eigenvalues[perm[i]]
			}
			m.Set(i*order+j, v)
		}
	}
	return nil
}
