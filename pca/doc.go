// Package pca computes principal component analysis over an SoA vertex
// set: an unbiased covariance matrix, its eigendecomposition (via
// eigen.Jacobi), and the top-3 eigenvectors cast to a float32 Basis3
// table for projection (spec.md §4.5).
//
// N = 0 is a degenerate case handled explicitly: Compute writes the
// canonical identity basis and zero eigenvalues rather than dividing by
// zero. Negative eigenvalues produced by floating-point error are
// clamped to zero before being reported.
package pca
