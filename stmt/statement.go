// Package stmt defines the lexer's Statement AST: the tree of composable
// atoms and combinators that lvm compiles to lexer bytecode. A Statement
// tree is the surface a caller builds by hand to describe what to
// tokenize.
package stmt

import "github.com/coregx/corelex/regex"

// Kind identifies which variant of Statement a node holds.
type Kind uint8

const (
	KindReader Kind = iota
	KindConcat
	KindAlternation
	KindZeroOrOne
	KindZeroOrMore
	KindOneOrMore
	KindCondition
	KindSave
)

// Statement is a node in the lexer AST. Like rast.Expr it is immutable
// once built.
type Statement struct {
	kind     Kind
	reader   *regex.Regex
	children []*Statement // Concat
	left     *Statement   // Alternation / unary combinators' operand
	right    *Statement   // Alternation's second branch
	cond     *Statement   // Condition
	inner    *Statement   // Condition / Save
	name     string       // Save
}

// Reader returns a Statement that matches whatever re matches, consuming
// that text as a raw span.
func Reader(re *regex.Regex) *Statement {
	return &Statement{kind: KindReader, reader: re}
}

// MustReader parses pattern and wraps it in a Reader, panicking if pattern
// does not compile. Follows the usual Must-prefix convention for callers
// building a Statement tree from literal patterns known to be valid.
func MustReader(pattern string) *Statement {
	re, err := regex.New(pattern)
	if err != nil {
		panic("stmt: MustReader(" + pattern + "): " + err.Error())
	}
	return Reader(re)
}

// Concat returns a Statement matching each child in order.
func Concat(children ...*Statement) *Statement {
	return &Statement{kind: KindConcat, children: children}
}

// Alternation returns a Statement matching l or r, trying l first. The
// lexer VM runs both branches, so when both accept, tokens from each are
// emitted (l's first).
func Alternation(l, r *Statement) *Statement {
	return &Statement{kind: KindAlternation, left: l, right: r}
}

// ZeroOrOne returns a Statement matching e zero or one times, preferring one.
func ZeroOrOne(e *Statement) *Statement {
	return &Statement{kind: KindZeroOrOne, left: e}
}

// ZeroOrMore returns a Statement matching e repeated zero or more times,
// greedily.
func ZeroOrMore(e *Statement) *Statement {
	return &Statement{kind: KindZeroOrMore, left: e}
}

// OneOrMore returns a Statement matching e repeated one or more times,
// greedily.
func OneOrMore(e *Statement) *Statement {
	return &Statement{kind: KindOneOrMore, left: e}
}

// Condition returns a Statement that speculatively executes cond without
// consuming input; inner runs only if cond would have matched.
func Condition(cond, inner *Statement) *Statement {
	return &Statement{kind: KindCondition, cond: cond, inner: inner}
}

// Save returns a Statement that labels the tokens produced by e with name,
// emitting them as a single top-level token when not nested inside another
// Save.
func Save(name string, e *Statement) *Statement {
	return &Statement{kind: KindSave, name: name, inner: e}
}

// Kind returns the node's variant tag.
func (s *Statement) Kind() Kind { return s.kind }

// RegexValue returns the compiled regex for a KindReader node.
func (s *Statement) RegexValue() *regex.Regex { return s.reader }

// Children returns the ordered operands of a KindConcat node.
func (s *Statement) Children() []*Statement { return s.children }

// Left returns the left (or sole, for unary combinators) operand.
func (s *Statement) Left() *Statement { return s.left }

// Right returns the second branch of a KindAlternation node.
func (s *Statement) Right() *Statement { return s.right }

// Cond returns the speculative condition of a KindCondition node.
func (s *Statement) Cond() *Statement { return s.cond }

// Inner returns the body of a KindCondition or KindSave node.
func (s *Statement) Inner() *Statement { return s.inner }

// Name returns the capture label of a KindSave node.
func (s *Statement) Name() string { return s.name }

// String renders a compact, human-readable form of the tree, used in test
// failure messages and %v formatting.
func (s *Statement) String() string {
	switch s.kind {
	case KindReader:
		return "Reader(" + s.reader.String() + ")"
	case KindConcat:
		out := "Concat("
		for i, c := range s.children {
			if i > 0 {
				out += " "
			}
			out += c.String()
		}
		return out + ")"
	case KindAlternation:
		return "Alternation(" + s.left.String() + " | " + s.right.String() + ")"
	case KindZeroOrOne:
		return s.left.String() + "?"
	case KindZeroOrMore:
		return s.left.String() + "*"
	case KindOneOrMore:
		return s.left.String() + "+"
	case KindCondition:
		return "Condition{" + s.cond.String() + " -> " + s.inner.String() + "}"
	case KindSave:
		return "Save(" + s.name + ", " + s.inner.String() + ")"
	default:
		return "Statement(unknown)"
	}
}
