// Package token defines the lexical tokens of ndvis expressions and a
// hand-rolled scanner producing them (spec.md §4.7): numbers (with an
// optional decimal point), identifiers, the single-character operators
// `+ - * / ^`, parentheses, comma, and end-of-input.
package token
