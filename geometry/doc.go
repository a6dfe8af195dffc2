// Package geometry generates n-dimensional polytopes directly into
// caller-owned, structure-of-arrays buffers.
//
// Supported kinds:
//
//	Cube      N = 2^d vertices, coordinates in {-1,+1}^d, edges connect
//	          vertex ids differing in exactly one bit (d*2^(d-1) edges).
//	Simplex   N = d+1 vertices (vertex 0 is the origin, vertex a+1 is the
//	          unit point along axis a), all C(d+1,2) unordered pairs are
//	          edges.
//	Orthoplex N = 2d vertices (+-e_a for each axis a), edges connect every
//	          pair of vertices whose positive axes differ — antipodal
//	          pairs are excluded (2*d*(d-1) edges).
//
// Generators never allocate: they fill the vertex/edge views the caller
// supplies and report the counts actually written. Given an invalid
// dimension or a buffer too small to hold the result, a generator writes
// nothing and returns a zero count alongside an error — never a partial,
// silently-truncated shape.
package geometry
