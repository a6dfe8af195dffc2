package compiler

import (
	"fmt"

	"github.com/rexbrahh/ndvis/calc/ast"
	"github.com/rexbrahh/ndvis/calc/bytecode"
)

var binOpcode = map[ast.BinOp]bytecode.OpCode{
	ast.Add: bytecode.Add,
	ast.Sub: bytecode.Sub,
	ast.Mul: bytecode.Mul,
	ast.Div: bytecode.Div,
	ast.Pow: bytecode.Pow,
}

var unaryFuncOpcode = map[string]bytecode.OpCode{
	"sin":  bytecode.Sin,
	"cos":  bytecode.Cos,
	"tan":  bytecode.Tan,
	"exp":  bytecode.Exp,
	"log":  bytecode.Log,
	"sqrt": bytecode.Sqrt,
	"abs":  bytecode.Abs,
}

// Compile walks node and emits a bytecode.Program recording varNames
// as the program's declared variable arity and source verbatim for
// diagnostics.
func Compile(node ast.Node, varNames []string, source string) (*bytecode.Program, error) {
	c := &compiler{}
	if err := c.emit(node); err != nil {
		return nil, err
	}
	c.instr = append(c.instr, bytecode.Instruction{Op: bytecode.Return})
	return &bytecode.Program{
		Instructions: c.instr,
		Constants:    c.consts,
		VarNames:     append([]string(nil), varNames...),
		Source:       source,
	}, nil
}

type compiler struct {
	instr  []bytecode.Instruction
	consts []float64
}

func (c *compiler) emit(node ast.Node) error {
	switch n := node.(type) {
	case ast.Number:
		idx := len(c.consts)
		c.consts = append(c.consts, n.Value)
		c.instr = append(c.instr, bytecode.Instruction{Op: bytecode.PushConst, Arg: idx})
		return nil

	case ast.Var:
		c.instr = append(c.instr, bytecode.Instruction{Op: bytecode.LoadVar, Arg: n.Index})
		return nil

	case ast.Neg:
		if err := c.emit(n.X); err != nil {
			return err
		}
		c.instr = append(c.instr, bytecode.Instruction{Op: bytecode.Neg})
		return nil

	case ast.Binary:
		if err := c.emit(n.X); err != nil {
			return err
		}
		if err := c.emit(n.Y); err != nil {
			return err
		}
		op, ok := binOpcode[n.Op]
		if !ok {
			return fmt.Errorf("%w: binary op %v", ErrUnsupportedNode, n.Op)
		}
		c.instr = append(c.instr, bytecode.Instruction{Op: op})
		return nil

	case ast.Call:
		if n.Func == "pow" {
			if len(n.Args) != 2 {
				return fmt.Errorf("%w: pow requires 2 arguments, got %d", ErrUnsupportedNode, len(n.Args))
			}
			if err := c.emit(n.Args[0]); err != nil {
				return err
			}
			if err := c.emit(n.Args[1]); err != nil {
				return err
			}
			c.instr = append(c.instr, bytecode.Instruction{Op: bytecode.Pow})
			return nil
		}
		op, ok := unaryFuncOpcode[n.Func]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownFunction, n.Func)
		}
		if len(n.Args) != 1 {
			return fmt.Errorf("%w: %q requires 1 argument, got %d", ErrUnsupportedNode, n.Func, len(n.Args))
		}
		if err := c.emit(n.Args[0]); err != nil {
			return err
		}
		c.instr = append(c.instr, bytecode.Instruction{Op: op})
		return nil

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedNode, node)
	}
}
