// Package eigen implements the classical (largest-pivot) Jacobi eigenvalue algorithm for
// dense, symmetric, float64 matrices (spec.md §4.4).
//
// Each sweep scans the upper triangle for the off-diagonal entry of
// largest magnitude and zeroes it with a single plane rotation,
// accumulating that rotation into a running eigenvector matrix. Sweeps
// stop early once the largest remaining off-diagonal magnitude drops
// below Options.Tolerance, or after Options.MaxSweeps sweeps — whichever
// comes first. Jacobi always converges for symmetric input; MaxSweeps
// exists as a budget, not a correctness requirement.
package eigen
