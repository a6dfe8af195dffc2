// Package fd implements the central-difference fallback gradient and
// Hessian over raw VM evaluation, used when automatic differentiation
// is unavailable or disabled (spec.md §4.11).
package fd
