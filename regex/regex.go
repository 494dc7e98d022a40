// Package regex is the public facade over rsyntax, rvm and the literal
// prefilter: it compiles a syntactic pattern string to a runnable program
// and exposes the single operation callers need, Matches.
package regex

import (
	"github.com/coregx/corelex/rast"
	"github.com/coregx/corelex/rsyntax"
	"github.com/coregx/corelex/rvm"
)

// Regex is a compiled regular expression, ready to match against input
// strings. The zero value is not usable; construct one with New.
type Regex struct {
	pattern   string
	program   rvm.Program
	prefilter *literalPrefilter
	config    Config
}

// New parses and compiles pattern using the default Config. It returns a
// *rsyntax.ParseError if pattern is not well-formed.
func New(pattern string) (*Regex, error) {
	return NewWithConfig(pattern, DefaultConfig())
}

// NewWithConfig parses and compiles pattern, applying config.
func NewWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	expr, err := rsyntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	return fromExpr(pattern, expr, config), nil
}

// fromExpr compiles an already-parsed Expr. NewWithConfig and NewFromExpr
// both build their Regex through it.
func fromExpr(pattern string, expr *rast.Expr, config Config) *Regex {
	program := rvm.Compile(expr)
	program = append(program, rvm.Instruction{Op: rvm.OpMatch})

	var pf *literalPrefilter
	if config.EnableLiteralPrefilter {
		pf = buildLiteralPrefilter(expr)
	}

	return &Regex{
		pattern:   pattern,
		program:   program,
		prefilter: pf,
		config:    config,
	}
}

// NewFromExpr compiles an already-parsed Expr with the default Config.
// Used by packages that build Expr trees programmatically rather than
// parsing a pattern string.
func NewFromExpr(expr *rast.Expr) *Regex {
	return fromExpr(expr.String(), expr, DefaultConfig())
}

// Matches attempts to match a prefix of input. It returns the matched
// prefix and true, or ("", false) if the program has no accepting path
// from the start of input.
//
// Matches never panics: the VM ends a thread whose pc falls outside the
// program or that reaches an unhandled opcode, instead of indexing past it.
func (r *Regex) Matches(input string) (string, bool) {
	if r.prefilter != nil && !r.prefilter.mayMatch(input) {
		return "", false
	}

	vm := rvm.New(r.program)
	vm.MaxAltDepth = r.config.MaxAltStackDepth
	vm.DisableASCIIFastPath = !r.config.EnableASCIIFastPath
	return vm.Run(input)
}

// String returns the source pattern the Regex was built from.
func (r *Regex) String() string {
	return r.pattern
}
