// Package projection maps n-dimensional structure-of-arrays vertices
// into packed 3D positions: rotate each vertex by a d x d rotation
// matrix, then dot the result against the three columns of a Basis3
// table (spec.md §4.3).
//
// Basis3 is stored as three contiguous, dim-long columns (column-major
// over exactly three columns): column c occupies basis3[c*dim : c*dim
// + dim]. This package also offers on-demand re-orthonormalization of a
// Basis3 table, since small drift is tolerated between corrections
// (spec.md §3).
package projection
