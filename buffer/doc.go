// Package buffer provides typed, bounds-checked views over contiguous
// numeric storage shared by the geometry and calculus cores.
//
// A View is a read-only window; a MutView additionally allows writes.
// Both are thin wrappers around a Go slice — they exist so that callers
// of the numeric kernels (geometry, rotation, projection, eigen, pca,
// hyperplane) can pass "a length-checked float32/float64 window" rather
// than a bare slice plus a separately-tracked length, matching the
// caller-owned, no-allocation contract of those kernels.
package buffer
