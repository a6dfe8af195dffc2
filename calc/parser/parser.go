package parser

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/rexbrahh/ndvis/calc/ast"
	"github.com/rexbrahh/ndvis/calc/token"
)

// Options configures a Parse call, mirroring the defaulting-struct
// pattern used throughout this module's configuration types.
type Options struct {
	// MaxDepth bounds recursive-descent nesting; exceeding it fails
	// with ErrDepthExceeded.
	MaxDepth int
}

// DefaultOptions returns the default parser configuration (MaxDepth 100).
func DefaultOptions() Options {
	return Options{MaxDepth: 100}
}

var arity = map[string]int{
	"sin":  1,
	"cos":  1,
	"tan":  1,
	"exp":  1,
	"log":  1,
	"sqrt": 1,
	"abs":  1,
	"pow":  2,
}

// Parse parses src into an expression tree. varNames is the ordered,
// caller-declared variable list; identifiers matching a name in it
// (and not immediately followed by `(`) resolve to ast.Var with that
// name's index. Every failure is wrapped with github.com/pkg/errors,
// unwrap-compatible via errors.Is against the sentinels in errors.go.
func Parse(src string, varNames []string, opts Options) (ast.Node, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultOptions().MaxDepth
	}
	varIndex := make(map[string]int, len(varNames))
	for i, name := range varNames {
		varIndex[name] = i
	}
	p := &parser{
		lex:      token.NewLexer(src),
		varIndex: varIndex,
		maxDepth: opts.MaxDepth,
	}
	p.advance()

	node, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.EOF {
		return nil, pkgerrors.Wrapf(ErrTrailingInput, "at offset %d: unexpected %q after expression", p.cur.Pos, p.cur.Text)
	}
	return node, nil
}

type parser struct {
	lex      *token.Lexer
	cur      token.Token
	varIndex map[string]int
	maxDepth int
	depth    int
}

func (p *parser) advance() { p.cur = p.lex.Next() }

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return pkgerrors.Wrapf(ErrDepthExceeded, "at offset %d: exceeds max depth %d", p.cur.Pos, p.maxDepth)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// expression := term ((+|-) term)*
func (p *parser) expression() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Plus || p.cur.Kind == token.Minus {
		op := binOpFor(p.cur.Kind)
		p.advance()
		y, err := p.term()
		if err != nil {
			return nil, err
		}
		x = ast.Binary{Op: op, X: x, Y: y}
	}
	return x, nil
}

// term := factor ((*|/) factor)*
func (p *parser) term() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	x, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Star || p.cur.Kind == token.Slash {
		op := binOpFor(p.cur.Kind)
		p.advance()
		y, err := p.factor()
		if err != nil {
			return nil, err
		}
		x = ast.Binary{Op: op, X: x, Y: y}
	}
	return x, nil
}

// factor := unary (no '^' here: '-2^2' must parse as -(2^2), so unary
// minus binds looser than power -- see unary/power below).
func (p *parser) factor() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.unary()
}

// unary := (+|-) unary | power
func (p *parser) unary() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.cur.Kind {
	case token.Plus:
		p.advance()
		return p.unary()
	case token.Minus:
		p.advance()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.Neg{X: x}, nil
	default:
		return p.power()
	}
}

// power := primary (^ power)?  -- right-associative, binds tighter
// than unary minus: 2^3^2 = 2^(3^2) = 512, and -2^2 = -(2^2) = -4.
func (p *parser) power() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == token.Caret {
		p.advance()
		y, err := p.power()
		if err != nil {
			return nil, err
		}
		x = ast.Binary{Op: ast.Pow, X: x, Y: y}
	}
	return x, nil
}

// primary := number | variable | function '(' expr (',' expr)* ')' | '(' expr ')'
func (p *parser) primary() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.cur.Kind {
	case token.Number:
		n := ast.Number{Value: p.cur.Value}
		p.advance()
		return n, nil

	case token.LParen:
		p.advance()
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != token.RParen {
			return nil, pkgerrors.Wrapf(ErrMissingParen, "at offset %d: expected ')'", p.cur.Pos)
		}
		p.advance()
		return x, nil

	case token.Ident:
		name := p.cur.Text
		pos := p.cur.Pos
		p.advance()
		if p.cur.Kind == token.LParen {
			return p.call(name, pos)
		}
		if idx, ok := p.varIndex[name]; ok {
			return ast.Var{Name: name, Index: idx}, nil
		}
		return nil, pkgerrors.Wrapf(ErrUnknownIdentifier, "at offset %d: %q is not a declared variable or function", pos, name)

	default:
		return nil, pkgerrors.Wrapf(ErrUnexpectedToken, "at offset %d: unexpected %q", p.cur.Pos, p.cur.Text)
	}
}

func (p *parser) call(name string, pos int) (ast.Node, error) {
	want, ok := arity[name]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrUnknownIdentifier, "at offset %d: %q is not a reserved function", pos, name)
	}
	p.advance() // consume '('

	var args []ast.Node
	if p.cur.Kind != token.RParen {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Kind != token.Comma {
				break
			}
			p.advance()
		}
	}
	if p.cur.Kind != token.RParen {
		return nil, pkgerrors.Wrapf(ErrMissingParen, "at offset %d: expected ')' to close call to %q", p.cur.Pos, name)
	}
	p.advance()

	if len(args) != want {
		return nil, pkgerrors.Wrapf(ErrBadArgCount, "at offset %d: %q expects %d argument(s), got %d", pos, name, want, len(args))
	}
	return ast.Call{Func: name, Args: args}, nil
}

func binOpFor(k token.Kind) ast.BinOp {
	switch k {
	case token.Plus:
		return ast.Add
	case token.Minus:
		return ast.Sub
	case token.Star:
		return ast.Mul
	case token.Slash:
		return ast.Div
	default:
		panic(fmt.Sprintf("binOpFor: unexpected token kind %v", k))
	}
}
