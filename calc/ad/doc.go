// Package ad implements forward-mode automatic differentiation by
// reinterpreting calc/bytecode over dual numbers (v, d): executing a
// program with the i-th input's tangent seeded to 1 and the rest to 0
// yields df/dxi as the result's tangent. Gradient sweeps the seed
// across all variables; Hessian is the hybrid finite-difference-on-
// AD-gradient method (not forward-over-forward AD).
package ad
