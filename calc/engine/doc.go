// Package engine exposes the public calculus surface: a Context
// (parser/AD/FD configuration shared by new compilations) and a
// compiled Program (parse -> compile once, evaluate/gradient/hessian
// many times). It ties together calc/parser, calc/compiler, calc/vm,
// calc/ad, and calc/fd behind the mode semantics of spec.md §4.12:
// Auto tries forward AD and falls back to finite differences on an AD
// failure, Forward never falls back, FiniteDiff always uses FD.
package engine
