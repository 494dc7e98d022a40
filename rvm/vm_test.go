package rvm

import (
	"testing"

	"github.com/coregx/corelex/rast"
)

func run(t *testing.T, expr *rast.Expr, s string) (string, bool) {
	t.Helper()
	p := Compile(expr)
	p = append(p, Instruction{Op: OpMatch})
	if err := Validate(p); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	return New(p).Run(s)
}

func TestVMChar(t *testing.T) {
	if got, ok := run(t, rast.Char('a'), "abc"); !ok || got != "a" {
		t.Errorf("got (%q, %v), want (\"a\", true)", got, ok)
	}
	if _, ok := run(t, rast.Char('a'), "bcd"); ok {
		t.Error("expected no match")
	}
}

func TestVMConcatAndText(t *testing.T) {
	expr := rast.Concat(rast.Text("ab"), rast.Char('c'))
	if got, ok := run(t, expr, "abcd"); !ok || got != "abc" {
		t.Errorf("got (%q, %v), want (\"abc\", true)", got, ok)
	}
}

func TestVMGreedyZeroOrMore(t *testing.T) {
	// parse("a*").matches("aaab") = "aaa"
	if got, ok := run(t, rast.ZeroOrMore(rast.Char('a')), "aaab"); !ok || got != "aaa" {
		t.Errorf("got (%q, %v), want (\"aaa\", true)", got, ok)
	}
}

func TestVMAlternationPreference(t *testing.T) {
	// parse("a|ab").matches("ab") = "a" (first alternative wins)
	expr := rast.Alternate(rast.Char('a'), rast.Text("ab"))
	if got, ok := run(t, expr, "ab"); !ok || got != "a" {
		t.Errorf("got (%q, %v), want (\"a\", true)", got, ok)
	}
}

func TestVMOneOrMoreRequiresOne(t *testing.T) {
	if _, ok := run(t, rast.OneOrMore(rast.Char('a')), "bbb"); ok {
		t.Error("expected no match with zero occurrences")
	}
	if got, ok := run(t, rast.OneOrMore(rast.Char('a')), "aab"); !ok || got != "aa" {
		t.Errorf("got (%q, %v), want (\"aa\", true)", got, ok)
	}
}

func TestVMZeroOrOne(t *testing.T) {
	expr := rast.Concat(rast.ZeroOrOne(rast.Char('a')), rast.Char('b'))
	if got, ok := run(t, expr, "ab"); !ok || got != "ab" {
		t.Errorf("got (%q, %v), want (\"ab\", true)", got, ok)
	}
	if got, ok := run(t, expr, "b"); !ok || got != "b" {
		t.Errorf("got (%q, %v), want (\"b\", true)", got, ok)
	}
}

func TestVMCharacterClasses(t *testing.T) {
	tests := []struct {
		expr *rast.Expr
		in   string
		want string
	}{
		{rast.AnyDigit(), "5a", "5"},
		{rast.AnyNonDigit(), "a5", "a"},
		{rast.AnyWhitespace(), " a", " "},
		{rast.AnyNonWhitespace(), "a ", "a"},
		{rast.AnyWord(), "a5", "a"},
		{rast.AnyNonWord(), "5a", "5"},
		{rast.Any(), "xy", "x"},
	}
	for _, tt := range tests {
		if got, ok := run(t, tt.expr, tt.in); !ok || got != tt.want {
			t.Errorf("run(%s, %q) = (%q, %v), want (%q, true)", tt.expr, tt.in, got, ok, tt.want)
		}
	}
}

func TestVMPrefixOfMatch(t *testing.T) {
	// For all s and regex r, r.matches(s) returns either none or a prefix of s.
	expr := rast.OneOrMore(rast.AnyWord())
	s := "hello world"
	got, ok := run(t, expr, s)
	if !ok {
		t.Fatal("expected match")
	}
	if len(got) > len(s) || s[:len(got)] != got {
		t.Errorf("match %q is not a prefix of %q", got, s)
	}
}

func TestVMIdempotence(t *testing.T) {
	// r.matches(r.matches(s).unwrap()) == same prefix
	expr := rast.OneOrMore(rast.AnyDigit())
	s := "123abc"
	first, ok := run(t, expr, s)
	if !ok {
		t.Fatal("expected match")
	}
	second, ok := run(t, expr, first)
	if !ok || second != first {
		t.Errorf("idempotence failed: first=%q second=%q", first, second)
	}
}

func TestVMUnicode(t *testing.T) {
	expr := rast.OneOrMore(rast.Any())
	if got, ok := run(t, expr, "héllo"); !ok || got != "héllo" {
		t.Errorf("got (%q, %v), want (\"héllo\", true)", got, ok)
	}
}

func TestVMDisableASCIIFastPathDoesNotChangeResult(t *testing.T) {
	expr := rast.OneOrMore(rast.AnyWord())
	p := Compile(expr)
	p = append(p, Instruction{Op: OpMatch})

	for _, disable := range []bool{false, true} {
		vm := New(p)
		vm.DisableASCIIFastPath = disable
		if got, ok := vm.Run("hello world"); !ok || got != "hello" {
			t.Errorf("DisableASCIIFastPath=%v: got (%q, %v), want (\"hello\", true)", disable, got, ok)
		}
	}
}
