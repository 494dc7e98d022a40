package lvm

import "github.com/coregx/corelex/stmt"

// Compile lowers a Statement tree to a Program. The compositional
// operators (Alternation, ZeroOrOne, ZeroOrMore, OneOrMore) emit the
// identical Split/Jmp skeletons the regex compiler produces, over lexer
// instructions instead of regex ones.
func Compile(s *stmt.Statement) Program {
	var p Program
	compile(s, &p)
	return p
}

func compile(s *stmt.Statement, p *Program) {
	switch s.Kind() {
	case stmt.KindReader:
		*p = append(*p, Instruction{Op: OpMatch, Regex: s.RegexValue()})

	case stmt.KindConcat:
		for _, child := range s.Children() {
			compile(child, p)
		}

	case stmt.KindAlternation:
		sp := emit(p, Instruction{Op: OpSplit})
		compile(s.Left(), p)
		j := emit(p, Instruction{Op: OpJmp})
		afterJmp := len(*p)
		compile(s.Right(), p)
		end := len(*p)
		(*p)[sp].X, (*p)[sp].Y = sp+1, afterJmp
		(*p)[j].X = end

	case stmt.KindZeroOrOne:
		sp := emit(p, Instruction{Op: OpSplit})
		compile(s.Left(), p)
		end := len(*p)
		(*p)[sp].X, (*p)[sp].Y = sp+1, end

	case stmt.KindZeroOrMore:
		sp := emit(p, Instruction{Op: OpSplit})
		compile(s.Left(), p)
		*p = append(*p, Instruction{Op: OpJmp, X: sp})
		end := len(*p)
		(*p)[sp].X, (*p)[sp].Y = sp+1, end

	case stmt.KindOneOrMore:
		b := len(*p)
		compile(s.Left(), p)
		sp := emit(p, Instruction{Op: OpSplit})
		(*p)[sp].X, (*p)[sp].Y = b, sp+1

	case stmt.KindCondition:
		// push P; compile(cond); pop; carry; jumpF F; compile(inner); unflag
		// patch Push(C) where C = position of Carry; patch JumpF(E) where E = end.
		push := emit(p, Instruction{Op: OpPush})
		compile(s.Cond(), p)
		*p = append(*p, Instruction{Op: OpPop})
		carry := emit(p, Instruction{Op: OpCarry})
		jumpF := emit(p, Instruction{Op: OpJumpF})
		compile(s.Inner(), p)
		end := len(*p)
		(*p)[push].X = carry
		(*p)[jumpF].X = end
		*p = append(*p, Instruction{Op: OpUnFlag})

	case stmt.KindSave:
		*p = append(*p, Instruction{Op: OpStartCapture, Name: s.Name()})
		compile(s.Inner(), p)
		*p = append(*p, Instruction{Op: OpEndCapture, Name: s.Name()})
		*p = append(*p, Instruction{Op: OpSave, Name: s.Name()})
	}
}

func emit(p *Program, ins Instruction) int {
	idx := len(*p)
	*p = append(*p, ins)
	return idx
}
