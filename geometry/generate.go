package geometry

import "github.com/rexbrahh/ndvis/buffer"

// Generate dispatches to the generator for kind and fills verts/edges.
// It is the entry point for callers whose polytope kind is a runtime
// value rather than a compile-time choice.
func Generate(kind Kind, dim int, verts buffer.MutF32View, edges []uint32) (vertexCount, edgeCount int, err error) {
	switch kind {
	case Cube:
		return GenerateCube(dim, verts, edges)
	case Simplex:
		return GenerateSimplex(dim, verts, edges)
	case Orthoplex:
		return GenerateOrthoplex(dim, verts, edges)
	default:
		return 0, 0, ErrInvalidKind
	}
}
