// Package hyperplane implements signed distance, three-way vertex
// classification, and edge-plane slicing against a hyperplane
// {x : normal . x = offset} in R^d (spec.md §4.6).
//
// Classification and slicing share a single epsilon (1e-5): a point is
// "on" the plane when its signed distance falls within that band, and
// an edge with exactly one on-plane endpoint still reports an
// intersection at that endpoint (t=0 or t=1) rather than being skipped.
// Only an edge with both endpoints on-plane is degenerate and skipped.
package hyperplane
