// Package vm implements a float64 stack interpreter over a
// calc/bytecode.Program, evaluating either a single point or a
// batched structure-of-arrays input. A program is well-formed iff
// exactly one value remains on the stack at Return.
package vm
