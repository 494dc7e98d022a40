// Package lexer is the public facade over stmt and lvm: it compiles a
// Statement tree to a lexer Program once, then runs that Program against
// any number of inputs, returning the resulting token Forest.
package lexer

import (
	"github.com/coregx/corelex/lvm"
	"github.com/coregx/corelex/stmt"
)

// Lexer is a compiled tokenizer, ready to run against input strings. The
// zero value is not usable; construct one with New.
type Lexer struct {
	program lvm.Program
	config  Config
}

// New compiles root using the default Config.
func New(root *stmt.Statement) (*Lexer, error) {
	return NewWithConfig(root, DefaultConfig())
}

// NewWithConfig compiles root, applying config.
func NewWithConfig(root *stmt.Statement, config Config) (*Lexer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Lexer{program: lvm.Compile(root), config: config}, nil
}

// Lex runs the compiled program against input, returning the ordered
// top-level token Forest. A structurally unsound program is returned as a
// *lvm.StructuralError alongside whatever tokens had already been emitted;
// it indicates a miscompiled Statement tree, never bad input.
func (l *Lexer) Lex(input string) (lvm.Forest, error) {
	vm := lvm.New(l.program)
	vm.MaxThreads = l.config.MaxThreads
	return vm.Run(input)
}

// Disassemble renders the compiled program, one instruction per line. A
// diagnostic only; has no effect on Lex.
func (l *Lexer) Disassemble() string {
	return l.program.Disassemble()
}
