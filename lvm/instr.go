// Package lvm is the lexer bytecode compiler and virtual machine: it lowers
// a stmt.Statement to a linear lexer-instruction vector (Compile) and
// executes that vector against an input string (VM), producing a tree of
// named Tokens.
package lvm

import (
	"fmt"

	"github.com/coregx/corelex/regex"
)

// Op identifies the operation a lexer Instruction performs.
type Op uint8

const (
	OpMatch Op = iota
	OpSplit
	OpJmp
	OpJumpF
	OpStartCapture
	OpEndCapture
	OpSave
	OpFlag
	OpUnFlag
	OpCarry
	OpPush
	OpPop
)

// Instruction is a single lexer bytecode operation. Only the fields
// relevant to Op are meaningful.
type Instruction struct {
	Op    Op
	Regex *regex.Regex // OpMatch
	Name  string       // OpStartCapture, OpEndCapture, OpSave
	X, Y  int          // OpSplit: X tried before Y. OpJmp/OpJumpF/OpPush: X is the target.
}

func (ins Instruction) String() string {
	switch ins.Op {
	case OpMatch:
		return fmt.Sprintf("match %s", ins.Regex)
	case OpSplit:
		return fmt.Sprintf("split %d %d", ins.X, ins.Y)
	case OpJmp:
		return fmt.Sprintf("jmp %d", ins.X)
	case OpJumpF:
		return fmt.Sprintf("jumpf %d", ins.X)
	case OpStartCapture:
		return fmt.Sprintf("start_capture %s", ins.Name)
	case OpEndCapture:
		return fmt.Sprintf("end_capture %s", ins.Name)
	case OpSave:
		return fmt.Sprintf("save %s", ins.Name)
	case OpFlag:
		return "flag"
	case OpUnFlag:
		return "unflag"
	case OpCarry:
		return "carry"
	case OpPush:
		return fmt.Sprintf("push %d", ins.X)
	case OpPop:
		return "pop"
	default:
		return fmt.Sprintf("unknown(%d)", ins.Op)
	}
}

// Program is an ordered, linear sequence of lexer instructions.
type Program []Instruction

// Disassemble renders the whole program one instruction per line, prefixed
// with its index. A diagnostic only; has no effect on execution.
func (p Program) Disassemble() string {
	out := ""
	for i, ins := range p {
		out += fmt.Sprintf("%04d  %s\n", i, ins)
	}
	return out
}
