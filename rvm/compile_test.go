package rvm

import (
	"testing"

	"github.com/coregx/corelex/rast"
)

func TestCompileChar(t *testing.T) {
	p := Compile(rast.Char('a'))
	if len(p) != 1 || p[0].Op != OpChar || p[0].Char != 'a' {
		t.Fatalf("Compile(Char('a')) = %v", p)
	}
}

func TestCompileConcat(t *testing.T) {
	p := Compile(rast.Concat(rast.Char('a'), rast.Char('b')))
	if len(p) != 2 || p[0].Op != OpChar || p[1].Op != OpChar {
		t.Fatalf("Compile(Concat) = %v", p)
	}
}

func TestCompileAlternatePatching(t *testing.T) {
	// Alternate(Char('a'), Char('b')):
	// 0: split 1 3
	// 1: char a
	// 2: jmp 4
	// 3: char b
	// (program ends at 4, the Jmp target)
	p := Compile(rast.Alternate(rast.Char('a'), rast.Char('b')))
	if len(p) != 4 {
		t.Fatalf("len(p) = %d, want 4: %s", len(p), p.Disassemble())
	}
	if p[0].Op != OpSplit || p[0].X != 1 || p[0].Y != 3 {
		t.Errorf("p[0] = %v, want split 1 3", p[0])
	}
	if p[2].Op != OpJmp || p[2].X != 4 {
		t.Errorf("p[2] = %v, want jmp 4", p[2])
	}
	if err := Validate(p); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestCompileZeroOrMorePatching(t *testing.T) {
	// ZeroOrMore(Char('a')):
	// 0: split 1 3
	// 1: char a
	// 2: jmp 0
	p := Compile(rast.ZeroOrMore(rast.Char('a')))
	if len(p) != 3 {
		t.Fatalf("len(p) = %d, want 3: %s", len(p), p.Disassemble())
	}
	if p[0].Op != OpSplit || p[0].X != 1 || p[0].Y != 3 {
		t.Errorf("p[0] = %v, want split 1 3", p[0])
	}
	if p[2].Op != OpJmp || p[2].X != 0 {
		t.Errorf("p[2] = %v, want jmp 0", p[2])
	}
}

func TestCompileOneOrMorePatching(t *testing.T) {
	// OneOrMore(Char('a')):
	// 0: char a
	// 1: split 0 2
	p := Compile(rast.OneOrMore(rast.Char('a')))
	if len(p) != 2 {
		t.Fatalf("len(p) = %d, want 2: %s", len(p), p.Disassemble())
	}
	if p[1].Op != OpSplit || p[1].X != 0 || p[1].Y != 2 {
		t.Errorf("p[1] = %v, want split 0 2", p[1])
	}
}

func TestCompileZeroOrOnePatchesBothTargets(t *testing.T) {
	// ZeroOrOne(Char('a')):
	// 0: split 1 2
	// 1: char a
	//
	// Both operands of the Split are patched to Split(pc+1, end), so the
	// skip branch has an explicit target instead of relying on
	// zero-initialization.
	p := Compile(rast.ZeroOrOne(rast.Char('a')))
	if len(p) != 2 {
		t.Fatalf("len(p) = %d, want 2: %s", len(p), p.Disassemble())
	}
	if p[0].Op != OpSplit || p[0].X != 1 || p[0].Y != 2 {
		t.Errorf("p[0] = %v, want split 1 2", p[0])
	}
}

func TestValidateCatchesBadTarget(t *testing.T) {
	p := Program{{Op: OpJmp, X: 99}}
	if err := Validate(p); err == nil {
		t.Fatal("Validate() = nil, want error for out-of-range jump")
	}
}

func TestDisassemble(t *testing.T) {
	p := Compile(rast.Text("ab"))
	out := p.Disassemble()
	if out == "" {
		t.Fatal("Disassemble() returned empty string")
	}
}
