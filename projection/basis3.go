package projection

import (
	"math"

	"github.com/rexbrahh/ndvis/buffer"
)

const zeroColumnEpsilon = 1e-6

// Canonical fills a 3*dim Basis3 table with the first three standard
// basis vectors of R^dim (e_0, e_1, e_2), zero-padding or omitting
// columns beyond dim as appropriate. Used when dim < 3, per spec.md
// §4.5's degenerate-case handling.
func Canonical(basis3 buffer.MutF32View, dim int) error {
	if dim <= 0 {
		return ErrInvalidDimension
	}
	if !basis3.HasCapacity(3 * dim) {
		return ErrShortBasis3Buffer
	}
	for c := 0; c < 3; c++ {
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

// Orthonormalize re-orthonormalizes the three columns of basis3 in
// place via modified Gram-Schmidt, tolerating the small drift
// accumulated between on-demand corrections (spec.md §3). A column
// that collapses to numerical zero is replaced by the corresponding
// canonical axis vector e_c, preserving rank the same way
// rotation.Reorthonormalize does for full rotation matrices.
func Orthonormalize(basis3 buffer.MutF32View, dim int) error {
	if dim <= 0 {
		return ErrInvalidDimension
	}
	if !basis3.HasCapacity(3 * dim) {
		return ErrShortBasis3Buffer
	}

	col := make([]float32, dim)
	for c := 0; c < 3; c++ {
		for a := 0; a < dim; a++ {
			col[a] = basis3.At(c*dim + a)
		}

		for p := 0; p < c; p++ {
			var dot float32
			for a := 0; a < dim; a++ {
				dot += col[a] * basis3.At(p*dim+a)
			}
			for a := 0; a < dim; a++ {
				col[a] -= dot * basis3.At(p*dim+a)
			}
		}

		var sumSq float64
		for a := 0; a < dim; a++ {
			sumSq += float64(col[a]) * float64(col[a])
		}
		norm := math.Sqrt(sumSq)

		if norm < zeroColumnEpsilon {
			for a := 0; a < dim; a++ {
				v := float32(0)
				if a == c {
					v = 1
				}
				col[a] = v
			}
		} else {
			inv := float32(1 / norm)
			for a := range col {
				col[a] *= inv
			}
		}

		for a := 0; a < dim; a++ {
			basis3.Set(c*dim+a, col[a])
		}
	}
	return nil
}
