package lvm

import "fmt"

// StructuralError reports a miscompiled-program fault detected at run
// time: the state stack or flag-carry invariant was violated in a way that
// cannot be attributed to the input. A correctly compiled Program (one
// produced by Compile from a well-formed Statement) never triggers this.
type StructuralError struct {
	Op      string
	PC      int
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("lvm: structural error at pc=%d (%s): %s", e.PC, e.Op, e.Message)
}

func structuralf(op string, pc int, format string, args ...any) error {
	return &StructuralError{Op: op, PC: pc, Message: fmt.Sprintf(format, args...)}
}
