package regex

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/corelex/rast"
)

// literalPrefilter is a fast accept/reject gate built from a pattern's
// literal alternatives. It never changes which match is reported — only
// whether the VM runs at all. It applies to the one shape this engine can
// extract literals from: a pure alternation of Text/Char leaves, the form
// every `kw1|kw2|...|kwN` Reader compiles to.
type literalPrefilter struct {
	automaton *ahocorasick.Automaton
}

// buildLiteralPrefilter returns a prefilter for expr, or nil if expr is not
// a pure alternation of literals (in which case the VM always runs).
func buildLiteralPrefilter(expr *rast.Expr) *literalPrefilter {
	lits, ok := collectLiterals(expr)
	if !ok || len(lits) == 0 {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		builder.AddPattern([]byte(lit))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &literalPrefilter{automaton: automaton}
}

// collectLiterals walks a tree of nested Alternate nodes and returns the
// literal text of every leaf, or ok=false if any leaf is not a pure
// Char/Text literal (e.g. a character class or quantifier).
func collectLiterals(expr *rast.Expr) (lits []string, ok bool) {
	switch expr.Kind() {
	case rast.KindChar:
		return []string{string(expr.Rune())}, true
	case rast.KindText:
		return []string{expr.Literal()}, true
	case rast.KindAlternate:
		left, ok := collectLiterals(expr.Left())
		if !ok {
			return nil, false
		}
		right, ok := collectLiterals(expr.Right())
		if !ok {
			return nil, false
		}
		return append(left, right...), true
	default:
		return nil, false
	}
}

// mayMatch reports whether s could possibly contain one of the prefilter's
// literals. A false return is conclusive: the VM is skipped. A true return
// only means the VM should be consulted to confirm.
func (pf *literalPrefilter) mayMatch(s string) bool {
	return pf.automaton.IsMatch([]byte(s))
}
