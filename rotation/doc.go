// Package rotation applies composite plane (Givens) rotations to a
// dense n x n row-major float32 matrix, measures its drift from
// orthonormality, and re-orthonormalizes it via modified Gram-Schmidt.
//
// Plane composition follows the exact order of the supplied plane list
// (SPEC_FULL.md §6, spec.md §4.2, §5) — this is part of the contract,
// not an implementation detail: callers that depend on commuted
// rotation order will observe a different matrix.
package rotation
