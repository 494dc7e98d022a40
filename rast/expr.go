// Package rast defines the regex abstract syntax tree: the immutable,
// tagged tree of atoms and combinators that rsyntax parses strings into and
// rvm compiles to bytecode.
package rast

import "fmt"

// Kind identifies which variant of Expr a node holds.
type Kind uint8

const (
	KindChar Kind = iota
	KindText
	KindConcat
	KindAlternate
	KindZeroOrMore
	KindOneOrMore
	KindZeroOrOne
	KindAny
	KindAnyWhitespace
	KindAnyNonWhitespace
	KindAnyDigit
	KindAnyNonDigit
	KindAnyWord
	KindAnyNonWord
)

// Expr is a node in the regex AST. It is immutable once built: every
// constructor below returns a fully formed value, and no method mutates an
// Expr in place.
//
// Only the fields relevant to Kind are meaningful; see the accessor
// methods for which ones.
type Expr struct {
	kind        Kind
	char        rune
	text        string
	left, right *Expr
}

// Char returns an Expr matching exactly the single rune c.
func Char(c rune) *Expr { return &Expr{kind: KindChar, char: c} }

// Text returns an Expr matching the literal string s. rsyntax produces this
// when coalescing two or more consecutive literal characters; callers may
// also construct it directly for a single- or multi-rune literal.
func Text(s string) *Expr { return &Expr{kind: KindText, text: s} }

// Concat returns an Expr matching l immediately followed by r.
func Concat(l, r *Expr) *Expr { return &Expr{kind: KindConcat, left: l, right: r} }

// Alternate returns an Expr matching l, or r if l fails, preferring l.
func Alternate(l, r *Expr) *Expr { return &Expr{kind: KindAlternate, left: l, right: r} }

// ZeroOrMore returns an Expr matching e repeated zero or more times, greedily.
func ZeroOrMore(e *Expr) *Expr { return &Expr{kind: KindZeroOrMore, left: e} }

// OneOrMore returns an Expr matching e repeated one or more times, greedily.
func OneOrMore(e *Expr) *Expr { return &Expr{kind: KindOneOrMore, left: e} }

// ZeroOrOne returns an Expr matching e zero or one times, preferring one.
func ZeroOrOne(e *Expr) *Expr { return &Expr{kind: KindZeroOrOne, left: e} }

// Any returns an Expr matching any single rune.
func Any() *Expr { return &Expr{kind: KindAny} }

// AnyWhitespace returns an Expr matching a single whitespace rune (\s).
func AnyWhitespace() *Expr { return &Expr{kind: KindAnyWhitespace} }

// AnyNonWhitespace returns an Expr matching a single non-whitespace rune (\S).
func AnyNonWhitespace() *Expr { return &Expr{kind: KindAnyNonWhitespace} }

// AnyDigit returns an Expr matching a single decimal digit rune (\d).
func AnyDigit() *Expr { return &Expr{kind: KindAnyDigit} }

// AnyNonDigit returns an Expr matching a single non-digit rune (\D).
func AnyNonDigit() *Expr { return &Expr{kind: KindAnyNonDigit} }

// AnyWord returns an Expr matching a single alphabetic rune (\w).
func AnyWord() *Expr { return &Expr{kind: KindAnyWord} }

// AnyNonWord returns an Expr matching a single non-alphabetic rune (\W).
func AnyNonWord() *Expr { return &Expr{kind: KindAnyNonWord} }

// Kind returns the node's variant tag.
func (e *Expr) Kind() Kind { return e.kind }

// Rune returns the literal rune for a KindChar node.
func (e *Expr) Rune() rune { return e.char }

// Literal returns the literal string for a KindText node.
func (e *Expr) Literal() string { return e.text }

// Left returns the left (or sole, for unary combinators) child.
func (e *Expr) Left() *Expr { return e.left }

// Right returns the right child of a binary combinator.
func (e *Expr) Right() *Expr { return e.right }

// String renders e in a compact debug form (e.g. "Concat(Char(a) Char(b))",
// "Char(a)*", `\d`).
func (e *Expr) String() string {
	switch e.kind {
	case KindChar:
		return fmt.Sprintf("Char(%c)", e.char)
	case KindText:
		return fmt.Sprintf("Text(%s)", e.text)
	case KindConcat:
		return fmt.Sprintf("Concat(%s %s)", e.left, e.right)
	case KindAlternate:
		return fmt.Sprintf("Alternate(%s | %s)", e.left, e.right)
	case KindZeroOrMore:
		return e.left.String() + "*"
	case KindOneOrMore:
		return e.left.String() + "+"
	case KindZeroOrOne:
		return e.left.String() + "?"
	case KindAny:
		return "."
	case KindAnyWhitespace:
		return `\s`
	case KindAnyNonWhitespace:
		return `\S`
	case KindAnyDigit:
		return `\d`
	case KindAnyNonDigit:
		return `\D`
	case KindAnyWord:
		return `\w`
	case KindAnyNonWord:
		return `\W`
	default:
		return fmt.Sprintf("Expr(unknown kind %d)", e.kind)
	}
}
