package engine

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/rexbrahh/ndvis/calc/codes"
	"github.com/rexbrahh/ndvis/calc/compiler"
	"github.com/rexbrahh/ndvis/calc/fd"
	"github.com/rexbrahh/ndvis/calc/parser"
)

// Context holds the configuration new compilations inherit: the
// differentiation Mode, the finite-difference step, and the parser's
// recursion depth cap. It also retains the latest error message,
// matching spec.md §7 ("the context retains the latest message until
// the next operation succeeds or clears it"). A Context is not safe
// for concurrent use from multiple threads (spec.md §5).
//
// Fields:
//
//	Mode           - Auto, Forward, or FiniteDiff; see mode.go.
//	FDEpsilon      - central-difference step h for new compilations.
//	ParserMaxDepth - recursive-descent nesting cap for new compilations.
type Context struct {
	Mode           Mode
	FDEpsilon      float64
	ParserMaxDepth int

	lastErr error
}

// DefaultContext returns a Context pre-populated with safe defaults.
//
//	Mode:           Auto
//	FDEpsilon:      1e-8
//	ParserMaxDepth: 100
func DefaultContext() *Context {
	return &Context{
		Mode:           Auto,
		FDEpsilon:      fd.DefaultStep,
		ParserMaxDepth: parser.DefaultOptions().MaxDepth,
	}
}

// Validate checks that the Context's fields hold a valid combination.
func (c *Context) Validate() error {
	if !c.Mode.valid() {
		return ErrUnknownMode
	}
	if c.FDEpsilon <= 0 {
		return ErrDimensionMismatch // reuse: a non-positive step is as invalid as a bad dimension
	}
	if c.ParserMaxDepth <= 0 {
		return ErrDimensionMismatch
	}
	return nil
}

// SetMode updates the differentiation mode new compilations inherit;
// programs already compiled from this Context are unaffected.
func (c *Context) SetMode(m Mode) { c.Mode = m }

// SetFDEpsilon updates the finite-difference step new compilations
// inherit; programs already compiled from this Context are unaffected.
func (c *Context) SetFDEpsilon(h float64) { c.FDEpsilon = h }

// LastError returns the message from the most recent failing
// operation, or "" if none is retained.
func (c *Context) LastError() string {
	if c.lastErr == nil {
		return ""
	}
	return c.lastErr.Error()
}

// ClearError discards the retained error message.
func (c *Context) ClearError() { c.lastErr = nil }

// Compile parses and compiles expr against varNames, inheriting the
// Context's current Mode, FDEpsilon, and ParserMaxDepth. On success
// the retained error is cleared; on failure it is set and the error
// (a github.com/pkg/errors-wrapped diagnostic, itself tagged with its
// codes.Code) is returned.
func (c *Context) Compile(expr string, varNames []string) (*Program, error) {
	node, err := parser.Parse(expr, varNames, parser.Options{MaxDepth: c.ParserMaxDepth})
	if err != nil {
		wrapped := codes.Wrap(codes.Parse, pkgerrors.Wrapf(err, "engine: parse of %q failed", expr))
		c.lastErr = wrapped
		return nil, wrapped
	}
	bc, err := compiler.Compile(node, varNames, expr)
	if err != nil {
		wrapped := codes.Wrap(codes.InvalidExpression, pkgerrors.Wrapf(err, "engine: compile of %q failed", expr))
		c.lastErr = wrapped
		return nil, wrapped
	}
	c.ClearError()
	return &Program{
		bc:        bc,
		mode:      c.Mode,
		fdEpsilon: c.FDEpsilon,
	}, nil
}
