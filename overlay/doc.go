// Package overlay is the per-frame orchestrator: given a geometry
// snapshot, an optional hyperplane, and an optional calculus
// descriptor, it projects vertices to 3D, slices the polytope against
// the hyperplane, and evaluates the requested calculus overlays
// (gradient arrow, tangent patch, level-set curves), composing
// geometry, hyperplane, and calc/engine behind one call that reports a
// single Status. Geometry/projection outputs remain valid even when an
// overlay-only stage fails; only that stage's counts are zeroed.
package overlay
