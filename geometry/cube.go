package geometry

import "github.com/rexbrahh/ndvis/buffer"

// GenerateCube fills verts/edges with the 2^d-vertex, d*2^(d-1)-edge
// hypercube: axis a of vertex v is +1 if bit a of v is set, else -1.
// Edges connect vertex ids differing in exactly one bit, each reported
// once as (v, v^mask) with v < v^mask.
func GenerateCube(dim int, verts buffer.MutF32View, edges []uint32) (vertexCount, edgeCount int, err error) {
	if !validDimension(dim) {
		return 0, 0, ErrInvalidDimension
	}
	wantV, wantE, _ := Counts(Cube, dim)
	if !verts.HasCapacity(dim * wantV) {
		return 0, 0, ErrShortVertexBuffer
	}
	if len(edges) < 2*wantE {
		return 0, 0, ErrShortEdgeBuffer
	}

	n := wantV
	for v := 0; v < n; v++ {
		for a := 0; a < dim; a++ {
			coord := float32(-1)
			if v&(1<<uint(a)) != 0 {
				coord = 1
			}
			verts.Set(a*n+v, coord)
		}
	}

	edgeIdx := 0
	for v := 0; v < n; v++ {
		for a := 0; a < dim; a++ {
			mask := 1 << uint(a)
			neighbor := v ^ mask
			if v < neighbor {
				edges[2*edgeIdx] = uint32(v)
				edges[2*edgeIdx+1] = uint32(neighbor)
				edgeIdx++
			}
		}
	}

	return n, edgeIdx, nil
}
