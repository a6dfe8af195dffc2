// Package parser implements a recursive-descent expression grammar:
// expression -> term -> factor -> unary -> power -> primary, with
// left-associative +, -, *, / and right-associative ^ (which binds
// tighter than unary minus, so -2^2 = -(2^2)). Recursion
// depth is capped (default 100) and every failure is a
// github.com/pkg/errors-wrapped sentinel carrying the offending
// source offset, matching google-gapid's parser error-reporting shape.
package parser
