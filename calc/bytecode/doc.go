// Package bytecode defines the stack-machine instruction set that
// calc/compiler emits and calc/vm executes: a reverse-Polish opcode
// sequence plus constant pool, immutable once compiled.
package bytecode
