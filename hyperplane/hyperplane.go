package hyperplane

import (
	"math"

	"github.com/rexbrahh/ndvis/buffer"
)

// ClassificationEpsilon is the |distance| band within which a point is
// considered to lie on the plane (spec.md §4.6).
const ClassificationEpsilon = 1e-5

// Distance returns the signed distance of point from the hyperplane
// defined by normal and offset: dot(normal, point) - offset.
func Distance(point, normal buffer.F32View, dim int, offset float32) (float32, error) {
	if dim <= 0 {
		return 0, ErrInvalidDimension
	}
	if !point.HasCapacity(dim) {
		return 0, ErrShortVertexBuffer
	}
	if !normal.HasCapacity(dim) {
		return 0, ErrShortNormalBuffer
	}
	var dot float32
	for a := 0; a < dim; a++ {
		dot += normal.At(a) * point.At(a)
	}
	return dot - offset, nil
}

// Classify returns +1 if d above the plane, -1 if below, 0 if |d| is
// within ClassificationEpsilon of the plane.
func Classify(d float32) int {
	if float32(math.Abs(float64(d))) < ClassificationEpsilon {
		return 0
	}
	if d > 0 {
		return 1
	}
	return -1
}

// ClassifyVertices classifies every one of vertexCount SoA vertices
// against the hyperplane, writing +1/-1/0 into out.
func ClassifyVertices(verts buffer.F32View, vertexCount, dim int, normal buffer.F32View, offset float32, out []int8) error {
	if dim <= 0 {
		return ErrInvalidDimension
	}
	if !verts.HasCapacity(dim * vertexCount) {
		return ErrShortVertexBuffer
	}
	if !normal.HasCapacity(dim) {
		return ErrShortNormalBuffer
	}
	if len(out) < vertexCount {
		return ErrShortClassBuffer
	}
	for v := 0; v < vertexCount; v++ {
		var dot float32
		for a := 0; a < dim; a++ {
			dot += normal.At(a) * verts.At(a*vertexCount+v)
		}
		out[v] = int8(Classify(dot - offset))
	}
	return nil
}

// Normalize scales normal in place to unit length. It fails with
// ErrZeroNormal if normal's magnitude is numerically zero.
func Normalize(normal buffer.MutF32View, dim int) error {
	if dim <= 0 {
		return ErrInvalidDimension
	}
	if !normal.HasCapacity(dim) {
		return ErrShortNormalBuffer
	}
	var sumSq float64
	for a := 0; a < dim; a++ {
		x := float64(normal.At(a))
		sumSq += x * x
	}
	norm := math.Sqrt(sumSq)
	if norm < 1e-12 {
		return ErrZeroNormal
	}
	inv := float32(1 / norm)
	for a := 0; a < dim; a++ {
		normal.Set(a, normal.At(a)*inv)
	}
	return nil
}
