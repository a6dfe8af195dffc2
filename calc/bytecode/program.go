package bytecode

// Program is an immutable compiled expression: a flat instruction
// sequence, its constant pool, the declared variable names in order,
// and the original source text (kept for diagnostics).
type Program struct {
	Instructions []Instruction
	Constants    []float64
	VarNames     []string
	Source       string
}

// Arity returns the number of declared variables.
func (p *Program) Arity() int { return len(p.VarNames) }
