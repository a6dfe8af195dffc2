package rotation

import (
	"math"

	"github.com/rexbrahh/ndvis/buffer"
)

// zeroColumnEpsilon is the numeric-noise threshold below which a column
// norm during Gram-Schmidt is treated as a degenerate (rank-dropping)
// column rather than a very short but valid one.
const zeroColumnEpsilon = 1e-6

// Reorthonormalize re-orthonormalizes mat's columns in place via
// modified Gram-Schmidt: for each column k, subtract its projection
// onto the already-orthonormalized columns 0..k-1, then normalize. If a
// column collapses to (numerically) zero, it is replaced by the
// canonical unit vector e_k to preserve rank (spec.md §4.2).
//
// Calling Reorthonormalize twice in a row is idempotent within
// numerical tolerance: the second call's projections are all near-zero
// and normalization is a no-op.
func Reorthonormalize(mat buffer.MutF32View, order int) error {
	if order <= 0 {
		return ErrInvalidOrder
	}
	if !mat.HasCapacity(order * order) {
		return ErrShortBuffer
	}

	col := make([]float32, order)
	for k := 0; k < order; k++ {
		for r := 0; r < order; r++ {
			col[r] = mat.At(r*order + k)
		}

		for j := 0; j < k; j++ {
			var dot float32
			for r := 0; r < order; r++ {
				dot += col[r] * mat.At(r*order+j)
			}
			for r := 0; r < order; r++ {
				col[r] -= dot * mat.At(r*order+j)
			}
		}

		var sumSq float64
		for r := 0; r < order; r++ {
			sumSq += float64(col[r]) * float64(col[r])
		}
		norm := math.Sqrt(sumSq)

		if norm < zeroColumnEpsilon {
			for r := 0; r < order; r++ {
				if r == k {
					col[r] = 1
				} else {
					col[r] = 0
				}
			}
		} else {
			inv := float32(1 / norm)
			for r := range col {
				col[r] *= inv
			}
		}

		for r := 0; r < order; r++ {
			mat.Set(r*order+k, col[r])
		}
	}
	return nil
}
