package lvm

import (
	"github.com/coregx/corelex/internal/runeidx"
	"github.com/coregx/corelex/internal/stack"
)

// thread is the lexer VM's execution frame: pc/tc as in the regex VM, plus
// flag (the speculation-failed carry bit), push (true while executing
// speculatively under a Push), and depth (open-capture nesting).
type thread struct {
	pc, tc int
	flag   bool
	push   bool
	depth  int
}

// VM executes a compiled lexer Program against an input string, maintaining
// a capture-frame state stack and emitting a token Forest.
//
// A VM is reusable across calls to Run but is not safe for concurrent use.
type VM struct {
	program Program

	// MaxThreads bounds the alternative stack, mirroring rvm.VM.MaxAltDepth.
	// Zero means unbounded.
	MaxThreads int

	alt    stack.Alt[thread]
	state  []frame
	forest Forest

	// old caches the most recently Pop-ed thread, consulted by Carry.
	// Reset at the start of every Run.
	old   thread
	oldOK bool
}

// New returns a VM ready to execute program.
func New(program Program) *VM {
	return &VM{program: program}
}

// Run executes the program against input to completion and returns the
// token forest: the ordered sequence of top-level tokens Save emitted
// while depth == 0. A structurally unsound program aborts the run and
// returns the forest emitted so far alongside the error.
func (vm *VM) Run(input string) (Forest, error) {
	runes := runeidx.Runes(input)

	vm.alt = stack.Alt[thread]{}
	vm.state = nil
	vm.forest = nil
	vm.old = thread{}
	vm.oldOK = false

	vm.alt.Push(thread{})

	for {
		th, ok := vm.alt.Pop()
		if !ok {
			return vm.forest, nil
		}
		if err := vm.runThread(th, runes); err != nil {
			return vm.forest, err
		}
	}
}

// runThread drives a single thread until it suspends (by exhausting its
// instructions, a non-speculative Match failure, or an explicit Push/Pop
// suspend) or hits a structural error.
func (vm *VM) runThread(th thread, runes []rune) error {
	for {
		if th.pc < 0 || th.pc >= len(vm.program) || th.tc > len(runes) {
			return nil
		}

		prevPC := th.pc
		ins := vm.program[th.pc]

		switch ins.Op {
		case OpMatch:
			text, matched := ins.Regex.Matches(runeidx.Text(runes, th.tc, len(runes)))
			if matched {
				n := runeidx.Runes(text)
				if !th.push {
					vm.state = append(vm.state, frame{
						kind: frameText, text: text, start: th.tc, end: th.tc + len(n),
					})
				}
				th.pc++
				th.tc += len(n)
			} else if th.push {
				th.flag = true
				th.pc++
			} else {
				return nil
			}

		case OpSplit:
			if vm.MaxThreads == 0 || vm.alt.Len() < vm.MaxThreads {
				vm.alt.Push(thread{pc: ins.Y, tc: th.tc, flag: th.flag, push: false, depth: th.depth})
			}
			th.pc = ins.X

		case OpJmp:
			th.pc = ins.X

		case OpJumpF:
			th.pc++
			if th.flag {
				th.pc = ins.X
			}

		case OpStartCapture:
			th.depth++
			vm.state = append(vm.state, frame{kind: frameStartCapture, name: ins.Name, tcAtOpen: th.tc})
			th.pc++

		case OpEndCapture:
			if err := vm.endCapture(th.pc); err != nil {
				return err
			}
			th.depth--
			th.pc++

		case OpSave:
			if err := vm.save(ins.Name, th.depth, th.pc); err != nil {
				return err
			}
			th.pc++

		case OpFlag:
			th.flag = true
			th.pc++

		case OpUnFlag:
			th.flag = false
			th.pc++

		case OpCarry:
			if !vm.oldOK {
				return structuralf("carry", th.pc, "no prior Pop to carry a flag from")
			}
			th.flag = vm.old.flag
			th.pc++

		case OpPush:
			th.pc++
			vm.alt.Push(thread{pc: ins.X, tc: th.tc, flag: th.flag, push: false, depth: th.depth})
			vm.alt.Push(thread{pc: th.pc, tc: th.tc, flag: th.flag, push: true, depth: th.depth})
			return nil

		case OpPop:
			vm.old = th
			vm.oldOK = true
			th.pc++
			return nil

		default:
			return nil
		}

		if th.pc == prevPC {
			return nil
		}
	}
}

// endCapture scans the state stack from the top downward for the innermost
// StartCapture, gathers everything above it (preserving original order)
// into a List frame, and discards the StartCapture marker.
func (vm *VM) endCapture(pc int) error {
	i := len(vm.state) - 1
	for i >= 0 && vm.state[i].kind != frameStartCapture {
		i--
	}
	if i < 0 {
		return structuralf("end_capture", pc, "no matching StartCapture on the state stack")
	}

	children := make([]frame, len(vm.state)-(i+1))
	copy(children, vm.state[i+1:])
	vm.state = append(vm.state[:i], frame{kind: frameList, children: children})
	return nil
}

// save inspects the top state frame and either emits a token (depth == 0)
// or renames the list in place to carry name (depth > 0).
func (vm *VM) save(name string, depth int, pc int) error {
	if len(vm.state) == 0 {
		return nil
	}
	top := &vm.state[len(vm.state)-1]

	switch top.kind {
	case frameStartCapture:
		return structuralf("save", pc, "state stack top is an unterminated StartCapture")

	case frameText:
		if depth == 0 {
			vm.forest = append(vm.forest, Token{Name: name, Text: top.text, Start: top.start, End: top.end})
			vm.state = vm.state[:len(vm.state)-1]
		}

	case frameList:
		if depth == 0 {
			if t, ok := top.toToken(); ok {
				t.Name = name
				vm.forest = append(vm.forest, t)
			}
			vm.state = vm.state[:len(vm.state)-1]
		} else {
			top.name = name
		}
	}
	return nil
}
