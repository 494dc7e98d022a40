package lvm

import (
	"testing"

	"github.com/coregx/corelex/stmt"
)

func TestCompileReader(t *testing.T) {
	s := stmt.MustReader("abc")
	p := Compile(s)
	if len(p) != 1 || p[0].Op != OpMatch {
		t.Fatalf("got %v, want single OpMatch", p)
	}
}

func TestCompileSaveWrapsStartEndSave(t *testing.T) {
	s := stmt.Save("word", stmt.MustReader(`\w+`))
	p := Compile(s)
	if len(p) != 4 {
		t.Fatalf("len(p) = %d, want 4", len(p))
	}
	if p[0].Op != OpStartCapture || p[0].Name != "word" {
		t.Fatalf("p[0] = %v, want StartCapture(word)", p[0])
	}
	if p[1].Op != OpMatch {
		t.Fatalf("p[1] = %v, want Match", p[1])
	}
	if p[2].Op != OpEndCapture || p[2].Name != "word" {
		t.Fatalf("p[2] = %v, want EndCapture(word)", p[2])
	}
	if p[3].Op != OpSave || p[3].Name != "word" {
		t.Fatalf("p[3] = %v, want Save(word)", p[3])
	}
}

func TestCompileConditionLayout(t *testing.T) {
	s := stmt.Condition(stmt.MustReader("@"), stmt.MustReader("foo"))
	p := Compile(s)

	// push(P), match(cond), pop, carry, jumpf(E), match(inner), unflag
	if len(p) != 7 {
		t.Fatalf("len(p) = %d, want 7: %s", len(p), p.Disassemble())
	}
	if p[0].Op != OpPush {
		t.Fatalf("p[0] = %v, want Push", p[0])
	}
	if p[2].Op != OpPop {
		t.Fatalf("p[2] = %v, want Pop", p[2])
	}
	if p[3].Op != OpCarry {
		t.Fatalf("p[3] = %v, want Carry", p[3])
	}
	if p[4].Op != OpJumpF {
		t.Fatalf("p[4] = %v, want JumpF", p[4])
	}
	if p[0].X != 3 {
		t.Fatalf("Push target = %d, want 3 (the Carry)", p[0].X)
	}
	if p[4].X != len(p)-1 {
		t.Fatalf("JumpF target = %d, want %d (the UnFlag)", p[4].X, len(p)-1)
	}
	if p[len(p)-1].Op != OpUnFlag {
		t.Fatalf("last instruction = %v, want UnFlag", p[len(p)-1])
	}
}

func TestCompileZeroOrOnePatchesBothOperands(t *testing.T) {
	s := stmt.ZeroOrOne(stmt.MustReader("a"))
	p := Compile(s)
	if p[0].Op != OpSplit {
		t.Fatalf("p[0] = %v, want Split", p[0])
	}
	if p[0].X != 1 || p[0].Y != len(p) {
		t.Fatalf("Split(%d,%d), want Split(1,%d)", p[0].X, p[0].Y, len(p))
	}
}

func TestCompileZeroOrMoreLoopsBack(t *testing.T) {
	s := stmt.ZeroOrMore(stmt.MustReader("a"))
	p := Compile(s)
	if p[0].Op != OpSplit {
		t.Fatalf("p[0] = %v, want Split", p[0])
	}
	last := p[len(p)-1]
	if last.Op != OpJmp || last.X != 0 {
		t.Fatalf("last = %v, want Jmp(0)", last)
	}
}

func TestCompileOneOrMoreSplitsBack(t *testing.T) {
	s := stmt.OneOrMore(stmt.MustReader("a"))
	p := Compile(s)
	last := p[len(p)-1]
	if last.Op != OpSplit || last.X != 0 || last.Y != len(p) {
		t.Fatalf("last = %v, want Split(0,%d)", last, len(p))
	}
}

func TestCompileNestedSaveWrapsOnce(t *testing.T) {
	s := stmt.Save("pair", stmt.Concat(
		stmt.Save("a", stmt.MustReader("a")),
		stmt.Save("b", stmt.MustReader("b")),
	))
	p := Compile(s)
	if p[0].Op != OpStartCapture || p[0].Name != "pair" {
		t.Fatalf("p[0] = %v, want StartCapture(pair)", p[0])
	}
	if p[len(p)-1].Op != OpSave || p[len(p)-1].Name != "pair" {
		t.Fatalf("last = %v, want Save(pair)", p[len(p)-1])
	}
}
