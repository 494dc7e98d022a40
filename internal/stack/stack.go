// Package stack provides the explicit LIFO alternative stack shared by the
// regex VM and the lexer VM.
//
// Both VMs are depth-first backtrackers: a Split (or, in the lexer, a Push)
// suspends one branch and continues the other; when the active thread dies
// the most recently suspended branch resumes. Similar NFA engines in this
// corpus model the analogous notion with a growable slice of saved threads
// (nfa.PikeVM's queue/nextQueue); here the two ends of the sequence are not
// equivalent, so an explicit push/pop-from-back type makes the LIFO
// discipline a property of the type instead of a convention callers must
// maintain by hand.
package stack

// Alt is a LIFO stack of suspended VM threads of type T. The zero value is
// an empty, usable stack.
type Alt[T any] struct {
	frames []T
}

// Push suspends a thread, to be resumed by a later Pop.
func (a *Alt[T]) Push(t T) {
	a.frames = append(a.frames, t)
}

// Pop resumes the most recently suspended thread. ok is false when the
// stack is empty, meaning every alternative has been exhausted.
func (a *Alt[T]) Pop() (t T, ok bool) {
	n := len(a.frames)
	if n == 0 {
		return t, false
	}
	t = a.frames[n-1]
	var zero T
	a.frames[n-1] = zero // avoid retaining a stale reference through the backing array
	a.frames = a.frames[:n-1]
	return t, true
}

// Len returns the number of currently suspended threads.
func (a *Alt[T]) Len() int {
	return len(a.frames)
}
