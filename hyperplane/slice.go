package hyperplane

import (
	"math"

	"github.com/rexbrahh/ndvis/buffer"
)

// InterpolationEpsilon guards the t = d0/(d0-d1) interpolation against
// division by a near-zero denominator (spec.md §4.6).
const InterpolationEpsilon = 1e-5

// Slice walks edgeCount polytope edges and, for each that crosses (or
// touches) the hyperplane, writes the interpolated dim-dimensional
// intersection point into outPoints (axis-major, strided by
// outCapacity — not by the number of intersections, so a partial fill
// stays readable) and the edge's index into outEdgeIndices. Edges are
// visited in index order; writing stops once outCapacity intersections
// have been emitted. An edge whose endpoints are both on the plane is
// degenerate and skipped.
func Slice(
	verts buffer.F32View, vertexCount, dim int,
	edges []uint32, edgeCount int,
	normal buffer.F32View, offset float32,
	outPoints buffer.MutF32View, outCapacity int,
	outEdgeIndices []uint32,
) (intersectionCount int, err error) {
	if dim <= 0 {
		return 0, ErrInvalidDimension
	}
	if !verts.HasCapacity(dim * vertexCount) {
		return 0, ErrShortVertexBuffer
	}
	if !normal.HasCapacity(dim) {
		return 0, ErrShortNormalBuffer
	}
	if len(edges) < 2*edgeCount {
		return 0, ErrShortVertexBuffer
	}
	if outCapacity <= 0 {
		return 0, nil
	}
	if !outPoints.HasCapacity(dim*outCapacity) || len(outEdgeIndices) < outCapacity {
		return 0, ErrShortClassBuffer
	}

	idx := 0
	for e := 0; e < edgeCount && idx < outCapacity; e++ {
		u, v := edges[2*e], edges[2*e+1]

		var d0, d1 float32
		for a := 0; a < dim; a++ {
			d0 += normal.At(a) * verts.At(a*vertexCount+int(u))
			d1 += normal.At(a) * verts.At(a*vertexCount+int(v))
		}
		d0 -= offset
		d1 -= offset

		onU := float32(math.Abs(float64(d0))) < ClassificationEpsilon
		onV := float32(math.Abs(float64(d1))) < ClassificationEpsilon

		crosses := d0*d1 < 0
		exactlyOneOn := onU != onV
		if !crosses && !exactlyOneOn {
			continue // no crossing, or both endpoints on-plane (degenerate)
		}

		var t float32
		if float32(math.Abs(float64(d0-d1))) > InterpolationEpsilon {
			t = d0 / (d0 - d1)
		} else if onU {
			t = 0
		} else if onV {
			t = 1
		} else {
			t = 0.5
		}
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}

		for a := 0; a < dim; a++ {
			pu := verts.At(a*vertexCount + int(u))
			pv := verts.At(a*vertexCount + int(v))
			outPoints.Set(a*outCapacity+idx, pu+(pv-pu)*t)
		}
		outEdgeIndices[idx] = uint32(e)
		idx++
	}

	return idx, nil
}
