package rvm

import "github.com/coregx/corelex/rast"

// Compile lowers expr to a Program using the Thompson NFA scheme with
// forward patching: a Split or Jmp instruction is appended with a
// placeholder target, and the placeholder is overwritten once the size of
// the code it jumps over is known.
//
// The returned program is NOT terminated with a Match; callers that need a
// runnable program must append one themselves, as the regex facade does.
func Compile(expr *rast.Expr) Program {
	var p Program
	compile(expr, &p)
	return p
}

func compile(expr *rast.Expr, p *Program) {
	switch expr.Kind() {
	case rast.KindChar:
		*p = append(*p, Instruction{Op: OpChar, Char: expr.Rune()})

	case rast.KindText:
		*p = append(*p, Instruction{Op: OpText, Text: []rune(expr.Literal())})

	case rast.KindConcat:
		compile(expr.Left(), p)
		compile(expr.Right(), p)

	case rast.KindAlternate:
		// split S; compile(l); jmp J; compile(r); patch S->(S+1, after J); patch J->end
		s := emit(p, Instruction{Op: OpSplit})
		compile(expr.Left(), p)
		j := emit(p, Instruction{Op: OpJmp})
		afterJmp := len(*p)
		compile(expr.Right(), p)
		end := len(*p)
		(*p)[s].X, (*p)[s].Y = s+1, afterJmp
		(*p)[j].X = end

	case rast.KindZeroOrMore:
		// split S; compile(e); jmp S; patch S->(S+1, end)
		s := emit(p, Instruction{Op: OpSplit})
		compile(expr.Left(), p)
		*p = append(*p, Instruction{Op: OpJmp, X: s})
		end := len(*p)
		(*p)[s].X, (*p)[s].Y = s+1, end

	case rast.KindOneOrMore:
		// compile(e); split B, S+1  (B = start of e, loops back greedily)
		b := len(*p)
		compile(expr.Left(), p)
		s := emit(p, Instruction{Op: OpSplit})
		(*p)[s].X, (*p)[s].Y = b, s+1

	case rast.KindZeroOrOne:
		// split S+1, end; compile(e)
		s := emit(p, Instruction{Op: OpSplit})
		compile(expr.Left(), p)
		end := len(*p)
		(*p)[s].X, (*p)[s].Y = s+1, end

	case rast.KindAny:
		*p = append(*p, Instruction{Op: OpAny})
	case rast.KindAnyWhitespace:
		*p = append(*p, Instruction{Op: OpAnyWhitespace})
	case rast.KindAnyNonWhitespace:
		*p = append(*p, Instruction{Op: OpAnyNonWhitespace})
	case rast.KindAnyDigit:
		*p = append(*p, Instruction{Op: OpAnyDigit})
	case rast.KindAnyNonDigit:
		*p = append(*p, Instruction{Op: OpAnyNonDigit})
	case rast.KindAnyWord:
		*p = append(*p, Instruction{Op: OpAnyWord})
	case rast.KindAnyNonWord:
		*p = append(*p, Instruction{Op: OpAnyNonWord})
	}
}

// emit appends a placeholder instruction and returns its index, for later
// patching once its true jump targets are known.
func emit(p *Program, ins Instruction) int {
	idx := len(*p)
	*p = append(*p, ins)
	return idx
}
