// Package rvm is the regex bytecode compiler and virtual machine: it lowers
// a rast.Expr to a linear instruction vector (Compiler) and executes that
// vector against an input string (VM), backtracking via an explicit
// alternative stack.
package rvm

import "fmt"

// Op identifies the operation an Instruction performs.
type Op uint8

const (
	OpChar Op = iota
	OpText
	OpMatch
	OpJmp
	OpSplit
	OpAny
	OpAnyWhitespace
	OpAnyNonWhitespace
	OpAnyDigit
	OpAnyNonDigit
	OpAnyWord
	OpAnyNonWord
)

// Instruction is a single bytecode operation. Only the fields relevant to
// Op are meaningful: a single struct reused across variants keeps the
// program a flat, allocation-free slice rather than a slice of interfaces.
type Instruction struct {
	Op   Op
	Char rune   // OpChar
	Text []rune // OpText
	X, Y int    // OpJmp: X is the target. OpSplit: X is tried before Y.
}

// String renders the instruction as the body of a disassembler line, e.g.
// "split 2 5"; Disassemble adds the index prefix.
func (ins Instruction) String() string {
	switch ins.Op {
	case OpChar:
		return fmt.Sprintf("char %c", ins.Char)
	case OpText:
		return fmt.Sprintf("text %s", string(ins.Text))
	case OpMatch:
		return "match"
	case OpJmp:
		return fmt.Sprintf("jmp %d", ins.X)
	case OpSplit:
		return fmt.Sprintf("split %d %d", ins.X, ins.Y)
	case OpAny:
		return "any"
	case OpAnyWhitespace:
		return "any ws"
	case OpAnyNonWhitespace:
		return "any non_ws"
	case OpAnyDigit:
		return "any digit"
	case OpAnyNonDigit:
		return "any non_digit"
	case OpAnyWord:
		return "any word"
	case OpAnyNonWord:
		return "any non_word"
	default:
		return fmt.Sprintf("unknown(%d)", ins.Op)
	}
}

// Program is an ordered, linear sequence of instructions. A facade-level
// program is always terminated by a trailing OpMatch.
type Program []Instruction

// Disassemble renders the whole program one instruction per line, prefixed
// with its index. Purely a diagnostic used by tests to pin exact patch
// targets; it has no effect on execution.
func (p Program) Disassemble() string {
	out := ""
	for i, ins := range p {
		out += fmt.Sprintf("%04d  %s\n", i, ins)
	}
	return out
}
