package bytecode

import "testing"

func TestOpCodeString(t *testing.T) {
	if Add.String() != "Add" {
		t.Errorf("Add.String() = %q; want Add", Add.String())
	}
	if OpCode(255).String() != "Unknown" {
		t.Errorf("unknown opcode should stringify to Unknown")
	}
}

func TestProgramArity(t *testing.T) {
	p := &Program{VarNames: []string{"x", "y", "z"}}
	if p.Arity() != 3 {
		t.Errorf("Arity() = %d; want 3", p.Arity())
	}
}
