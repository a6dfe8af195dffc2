package geometry

import "github.com/rexbrahh/ndvis/buffer"

// GenerateSimplex fills verts/edges with the (d+1)-vertex regular
// simplex: vertex 0 is the origin, vertex a+1 is the unit point along
// axis a. Every unordered pair of vertices is an edge (C(d+1,2) total).
func GenerateSimplex(dim int, verts buffer.MutF32View, edges []uint32) (vertexCount, edgeCount int, err error) {
	if !validDimension(dim) {
		return 0, 0, ErrInvalidDimension
	}
	wantV, wantE, _ := Counts(Simplex, dim)
	if !verts.HasCapacity(dim * wantV) {
		return 0, 0, ErrShortVertexBuffer
	}
	if len(edges) < 2*wantE {
		return 0, 0, ErrShortEdgeBuffer
	}

	n := wantV
	for a := 0; a < dim; a++ {
		for v := 0; v < n; v++ {
			coord := float32(0)
			if v == a+1 {
				coord = 1
			}
			verts.Set(a*n+v, coord)
		}
	}

	edgeIdx := 0
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges[2*edgeIdx] = uint32(u)
			edges[2*edgeIdx+1] = uint32(v)
			edgeIdx++
		}
	}

	return n, edgeIdx, nil
}
