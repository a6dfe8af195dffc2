package geometry

import "github.com/rexbrahh/ndvis/buffer"

// GenerateOrthoplex fills verts/edges with the 2d-vertex cross-polytope:
// for axis a, vertex 2a is +e_a and vertex 2a+1 is -e_a. Edges connect
// every pair of vertices on different axes; antipodal pairs (+-e_a) are
// not edges (2*d*(d-1) total).
func GenerateOrthoplex(dim int, verts buffer.MutF32View, edges []uint32) (vertexCount, edgeCount int, err error) {
	if !validDimension(dim) {
		return 0, 0, ErrInvalidDimension
	}
	wantV, wantE, _ := Counts(Orthoplex, dim)
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
			switch v {
			case 2 * a:
				coord = 1
			case 2*a + 1:
				coord = -1
			}
			verts.Set(a*n+v, coord)
		}
	}

	edgeIdx := 0
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if u/2 == v/2 {
				continue // antipodal pair on the same axis
			}
			edges[2*edgeIdx] = uint32(u)
			edges[2*edgeIdx+1] = uint32(v)
			edgeIdx++
		}
	}

	return n, edgeIdx, nil
}
