// Package compiler translates a calc/ast expression tree into a
// calc/bytecode.Program by a left-to-right reverse-Polish walk:
// literals become PushConst, variable references LoadVar, and every
// operator or function its corresponding opcode, followed by a
// trailing Return.
package compiler
