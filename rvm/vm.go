package rvm

import (
	"unicode"

	"github.com/coregx/corelex/internal/runeidx"
	"github.com/coregx/corelex/internal/simd"
	"github.com/coregx/corelex/internal/stack"
)

// thread is a single VM frame: a program counter and a text cursor. tc is a
// character (code-point) index, not a byte offset.
type thread struct {
	pc, tc int
}

// input is the decoded view a VM run executes against. When the input is
// pure ASCII, byte offset and rune offset coincide, so the run reads
// directly off the original string and skips the []rune decode entirely;
// otherwise it decodes once up front, exactly as the original
// implementation's Vec<char> does.
type input struct {
	ascii bool
	bytes string
	runes []rune
}

func newInput(s string, disableASCIIFastPath bool) input {
	if !disableASCIIFastPath && simd.IsASCII(s) {
		return input{ascii: true, bytes: s}
	}
	return input{runes: runeidx.Runes(s)}
}

func (in input) len() int {
	if in.ascii {
		return len(in.bytes)
	}
	return len(in.runes)
}

func (in input) at(i int) rune {
	if in.ascii {
		return rune(in.bytes[i])
	}
	return in.runes[i]
}

func (in input) text(start, end int) string {
	if in.ascii {
		if start < 0 {
			start = 0
		}
		if end > len(in.bytes) {
			end = len(in.bytes)
		}
		if start >= end {
			return ""
		}
		return in.bytes[start:end]
	}
	return runeidx.Text(in.runes, start, end)
}

// VM executes a compiled Program against an input string using depth-first
// backtracking with an explicit alternative stack.
//
// A VM is reusable across calls to Run but is not safe for concurrent use;
// callers needing concurrent matching should use separate VMs over the
// same Program, which is itself immutable and safe to share.
type VM struct {
	program Program
	alt     stack.Alt[thread]

	// MaxAltDepth bounds the alternative stack as a guard against
	// catastrophic backtracking. Zero (the default) means unbounded: once
	// a Split would grow the stack past MaxAltDepth, that alternative is
	// dropped instead of pushed, trading completeness on pathological
	// patterns for a bounded memory footprint.
	MaxAltDepth int

	// DisableASCIIFastPath forces every Run to decode its input to []rune
	// up front, even when the input is pure ASCII. False (the default)
	// lets newInput skip that decode and index the input's bytes
	// directly, via internal/simd.IsASCII.
	DisableASCIIFastPath bool
}

// New returns a VM ready to execute program.
func New(program Program) *VM {
	return &VM{program: program}
}

// Run attempts to match a prefix of s starting at character offset 0. It
// returns the matched prefix and true, or ("", false) if no alternative
// reaches Match.
func (vm *VM) Run(s string) (string, bool) {
	in := newInput(s, vm.DisableASCIIFastPath)

	vm.alt = stack.Alt[thread]{}
	vm.alt.Push(thread{pc: 0, tc: 0})

	for {
		th, ok := vm.alt.Pop()
		if !ok {
			return "", false
		}
		if end, matched := vm.runThread(th, in); matched {
			return in.text(0, end), true
		}
	}
}

// runThread drives a single thread until it matches, dies, or suspends an
// alternative (by pushing one onto vm.alt and continuing). It returns the
// text cursor at Match and true on success.
func (vm *VM) runThread(th thread, in input) (int, bool) {
	for {
		if th.pc < 0 || th.pc >= len(vm.program) || th.tc > in.len() {
			return 0, false
		}

		ins := vm.program[th.pc]
		switch ins.Op {
		case OpChar:
			if th.tc >= in.len() || in.at(th.tc) != ins.Char {
				return 0, false
			}
			th.pc++
			th.tc++

		case OpText:
			n := len(ins.Text)
			if th.tc+n > in.len() {
				return 0, false
			}
			for i := 0; i < n; i++ {
				if in.at(th.tc+i) != ins.Text[i] {
					return 0, false
				}
			}
			th.pc++
			th.tc += n

		case OpAny:
			if th.tc >= in.len() {
				return 0, false
			}
			th.pc++
			th.tc++

		case OpAnyWhitespace:
			if th.tc >= in.len() || !unicode.IsSpace(in.at(th.tc)) {
				return 0, false
			}
			th.pc++
			th.tc++

		case OpAnyNonWhitespace:
			if th.tc >= in.len() || unicode.IsSpace(in.at(th.tc)) {
				return 0, false
			}
			th.pc++
			th.tc++

		case OpAnyDigit:
			if th.tc >= in.len() || !unicode.IsDigit(in.at(th.tc)) {
				return 0, false
			}
			th.pc++
			th.tc++

		case OpAnyNonDigit:
			if th.tc >= in.len() || unicode.IsDigit(in.at(th.tc)) {
				return 0, false
			}
			th.pc++
			th.tc++

		case OpAnyWord:
			if th.tc >= in.len() || !unicode.IsLetter(in.at(th.tc)) {
				return 0, false
			}
			th.pc++
			th.tc++

		case OpAnyNonWord:
			if th.tc >= in.len() || unicode.IsLetter(in.at(th.tc)) {
				return 0, false
			}
			th.pc++
			th.tc++

		case OpMatch:
			return th.tc, true

		case OpJmp:
			th.pc = ins.X

		case OpSplit:
			if vm.MaxAltDepth == 0 || vm.alt.Len() < vm.MaxAltDepth {
				vm.alt.Push(thread{pc: ins.Y, tc: th.tc})
			}
			th.pc = ins.X

		default:
			return 0, false
		}
	}
}
