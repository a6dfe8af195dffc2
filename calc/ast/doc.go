// Package ast defines the expression tree produced by calc/parser
// (spec.md §4.7 grammar): numeric literals, variable references, unary
// negation, left-associative binary operators, right-associative
// power, and function calls over the reserved name set.
package ast
