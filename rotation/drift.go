package rotation

import (
	"math"

	"github.com/rexbrahh/ndvis/buffer"
)

// DefaultDriftThreshold is the default bound on Drift beyond which
// callers should invoke Reorthonormalize (spec.md §3).
const DefaultDriftThreshold = 0.01

// Drift computes the Frobenius norm ||M^T*M - I||_F of mat directly,
// without materializing M^T*M. It is the caller's measure of how far
// mat has wandered from orthonormality.
func Drift(mat buffer.F32View, order int) float32 {
	if order <= 0 || !mat.HasCapacity(order*order) {
		return 0
	}
	var sumSq float64
	for i := 0; i < order; i++ {
		for j := 0; j < order; j++ {
			var dot float32
			for r := 0; r < order; r++ {
				dot += mat.At(r*order+i) * mat.At(r*order+j)
			}
			if i == j {
				dot -= 1
			}
			sumSq += float64(dot) * float64(dot)
		}
	}
	return float32(math.Sqrt(sumSq))
}
