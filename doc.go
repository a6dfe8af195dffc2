// Package ndvis is the documentation root for a library of interactive
// n-dimensional geometric visualization and multivariable calculus.
//
// It is organized as two coupled numeric cores plus an orchestrator that
// runs them together for a single rendered frame:
//
//	buffer/      typed const/mutable views over contiguous float storage
//	geometry/    n-cube, n-simplex, n-orthoplex generators (SoA)
//	rotation/    plane (Givens) rotation composites, Frobenius drift, QR
//	projection/  SoA vertices x rotation x Basis3 -> packed 3D positions
//	eigen/       Jacobi symmetric eigensolver + sorted eigenpairs
//	pca/         principal component analysis over SoA vertex sets
//	hyperplane/  signed distance, vertex classification, edge slicing
//	calc/        expression lexer, parser, bytecode compiler, VM, AD, FD
//	overlay/     per-frame orchestrator: project + slice + calculus overlays
//
// Each package is independently importable; overlay composes the cores
// through buffer, projection, hyperplane and calc/engine. See SPEC_FULL.md and DESIGN.md for
// the full specification and the grounding ledger behind each package.
//
//	go get github.com/rexbrahh/ndvis
package ndvis
