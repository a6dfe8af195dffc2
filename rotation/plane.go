package rotation

import (
	"math"

	"github.com/rexbrahh/ndvis/buffer"
)

// Plane is a single plane (Givens) rotation: rotate axes I and J by
// Theta radians.
type Plane struct {
	I, J  int
	Theta float64
}

// ApplyPlane rotates mat (an order x order row-major matrix) in place
// over columns p.I, p.J: for every row r,
//
//	(M[r,I], M[r,J]) <- (c*M[r,I] - s*M[r,J], s*M[r,I] + c*M[r,J])
//
// with c = cos(Theta), s = sin(Theta).
func ApplyPlane(mat buffer.MutF32View, order int, p Plane) error {
	if order <= 0 {
		return ErrInvalidOrder
	}
	if !mat.HasCapacity(order * order) {
		return ErrShortBuffer
	}
	if p.I < 0 || p.I >= order || p.J < 0 || p.J >= order {
		return ErrAxisOutOfRange
	}
	c := float32(math.Cos(p.Theta))
	s := float32(math.Sin(p.Theta))
	for r := 0; r < order; r++ {
		mi := mat.At(r*order + p.I)
		mj := mat.At(r*order + p.J)
		mat.Set(r*order+p.I, c*mi-s*mj)
		mat.Set(r*order+p.J, s*mi+c*mj)
	}
	return nil
}

// ApplyPlanes composes the given planes left-to-right, in the exact
// order supplied, into mat.
func ApplyPlanes(mat buffer.MutF32View, order int, planes []Plane) error {
	for _, p := range planes {
		if err := ApplyPlane(mat, order, p); err != nil {
			return err
		}
	}
	return nil
}
