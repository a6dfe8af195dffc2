package projection

import "github.com/rexbrahh/ndvis/buffer"

// Project writes vertexCount*3 interleaved float32 positions into out.
// For each vertex: load its dim coordinates from the axis-major SoA
// verts buffer, rotate by the dim x dim row-major rotation matrix
// (rows spaced rotationStride floats apart — pass dim for a tightly
// packed matrix), then dot the rotated vector against each of the
// three Basis3 columns to produce (x, y, z).
//
// On any invalid dimension or undersized buffer, out is left untouched
// and an error is returned.
func Project(
	verts buffer.F32View,
	dim, vertexCount int,
	rotation buffer.F32View,
	rotationStride int,
	basis3 buffer.F32View,
	out buffer.MutF32View,
) (written int, err error) {
	if dim <= 0 || vertexCount < 0 {
		return 0, ErrInvalidDimension
	}
	if rotationStride <= 0 {
		rotationStride = dim
	}
	if !verts.HasCapacity(dim * vertexCount) {
		return 0, ErrShortVertexBuffer
	}
	if dim > 0 && !rotation.HasCapacity((dim-1)*rotationStride+dim) {
		return 0, ErrShortRotationBuffer
	}
	if !basis3.HasCapacity(3 * dim) {
		return 0, ErrShortBasis3Buffer
	}
	if !out.HasCapacity(vertexCount * 3) {
		return 0, ErrShortOutputBuffer
	}

	scratch := make([]float32, dim)
	rotated := make([]float32, dim)

	for v := 0; v < vertexCount; v++ {
		for a := 0; a < dim; a++ {
			scratch[a] = verts.At(a*vertexCount + v)
		}
		for r := 0; r < dim; r++ {
			var sum float32
			rowBase := r * rotationStride
			for a := 0; a < dim; a++ {
				sum += rotation.At(rowBase+a) * scratch[a]
			}
			rotated[r] = sum
		}
		for c := 0; c < 3; c++ {
			var sum float32
			colBase := c * dim
			for a := 0; a < dim; a++ {
				sum += rotated[a] * basis3.At(colBase+a)
			}
			out.Set(v*3+c, sum)
		}
	}

	return vertexCount * 3, nil
}
