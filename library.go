package turing_machine

import (
	"fmt"
)

// A MachineSpec bundles a program with its start state under a name, so
// tools can run library machines against arbitrary inputs. Specs are built
// fresh per call: states are compared by pointer, so two specs never share
// states even if the names coincide.
type MachineSpec struct {
	Name    string
	Start   *State
	Program Program
}

func (ms *MachineSpec) NewMachine(tape *Tape) *Machine {
	return NewMachine(ms.Start, tape, ms.Program)
}

// LookupSpec builds the named library machine. The library holds the two
// reference machines: "reverse" and "anbncn".
func LookupSpec(name string) (*MachineSpec, error) {
	switch name {
	case "reverse":
		return NewReverseSpec(), nil
	case "anbncn":
		return NewABCAcceptorSpec(), nil
	default:
		return nil, fmt.Errorf("No library machine named [%s]. Known machines: reverse, anbncn", name)
	}
}

// NewReverseSpec builds the input-reversal machine over the alphabet
// {a, b}. It walks to the right end, drops a '|' marker, then repeatedly
// swaps the outermost unconsumed symbols inward, and finally clears the
// markers back to the copied letters. Wildcard rules for each state come
// after the specific ones; the matcher will not reorder them.
func NewReverseSpec() *MachineSpec {
	putRightMarker := NewState("put_right_marker")
	rewind := NewState("rewind")
	goRightA := NewState("go_right_a")
	goRightB := NewState("go_right_b")
	goLeftA := NewState("go_left_a")
	goLeftB := NewState("go_left_b")
	takeLeft := NewState("take_left")
	takeRight := NewState("take_right")
	clear := NewState("clear")
	clearA := NewState("clear_a")
	clearB := NewState("clear_b")
	clearLast := NewState("clear_last")
	end := NewFinalState("end")

	program := NewProgram(
		NewInstruction(putRightMarker, '#', rewind, '|', MOVE_LEFT),
		NewInstruction(putRightMarker, '?', putRightMarker, '?', MOVE_RIGHT),

		NewInstruction(rewind, '#', takeLeft, '#', MOVE_RIGHT),
		NewInstruction(rewind, '?', rewind, '?', MOVE_LEFT),

		NewInstruction(takeLeft, 'a', goRightA, '|', MOVE_RIGHT),
		NewInstruction(takeLeft, 'b', goRightB, '|', MOVE_RIGHT),
		NewInstruction(takeLeft, '|', clear, '|', MOVE_RIGHT),

		NewInstruction(goRightA, '|', takeRight, 'a', MOVE_LEFT),
		NewInstruction(goRightB, '|', takeRight, 'b', MOVE_LEFT),
		NewInstruction(goRightA, '?', goRightA, '?', MOVE_RIGHT),
		NewInstruction(goRightB, '?', goRightB, '?', MOVE_RIGHT),

		NewInstruction(takeRight, 'a', goLeftA, '|', MOVE_LEFT),
		NewInstruction(takeRight, 'b', goLeftB, '|', MOVE_LEFT),
		NewInstruction(takeRight, '|', clear, '|', MOVE_RIGHT),

		NewInstruction(goLeftA, '|', takeLeft, 'a', MOVE_RIGHT),
		NewInstruction(goLeftB, '|', takeLeft, 'b', MOVE_RIGHT),
		NewInstruction(goLeftA, '?', goLeftA, '?', MOVE_LEFT),
		NewInstruction(goLeftB, '?', goLeftB, '?', MOVE_LEFT),

		NewInstruction(clear, 'a', clearA, '|', MOVE_LEFT),
		NewInstruction(clear, 'b', clearB, '|', MOVE_LEFT),
		NewInstruction(clear, '|', clear, '|', MOVE_RIGHT),
		NewInstruction(clear, '#', clearLast, '#', MOVE_LEFT),
		NewInstruction(clearA, '|', clear, 'a', MOVE_RIGHT),
		NewInstruction(clearB, '|', clear, 'b', MOVE_RIGHT),
		NewInstruction(clearLast, '|', end, '#', MOVE_STAY),
	)

	return &MachineSpec{Name: "reverse", Start: putRightMarker, Program: program}
}

// NewABCAcceptorSpec builds the acceptor of { a^n b^n c^n : n >= 0 }. Each
// pass crosses off one 'a', one 'b' and one 'c' with 'x', rewinds, and
// accepts once only crossed-off symbols remain. Inputs outside the language
// strand the machine in the rule-less "fail" state, where it gets stuck.
func NewABCAcceptorSpec() *MachineSpec {
	checkA := NewState("check_a")
	checkB := NewState("check_b")
	checkC := NewState("check_c")
	findEnd := NewState("find_end")
	rewind := NewState("rewind")
	accept := NewFinalState("accept")
	fail := NewState("fail")

	program := NewProgram(
		NewInstruction(checkA, 'x', checkA, 'x', MOVE_RIGHT),
		NewInstruction(checkA, 'a', checkB, 'x', MOVE_RIGHT),
		NewInstruction(checkA, '#', accept, '#', MOVE_STAY),
		NewInstruction(checkB, 'b', checkC, 'x', MOVE_RIGHT),
		NewInstruction(checkB, '#', fail, '#', MOVE_STAY),
		NewInstruction(checkB, '?', checkB, '?', MOVE_RIGHT),
		NewInstruction(checkC, 'c', findEnd, 'x', MOVE_RIGHT),
		NewInstruction(checkC, '#', fail, '#', MOVE_STAY),
		NewInstruction(checkC, '?', checkC, '?', MOVE_RIGHT),
		NewInstruction(findEnd, 'c', findEnd, 'c', MOVE_RIGHT),
		NewInstruction(findEnd, '#', rewind, '#', MOVE_LEFT),
		NewInstruction(rewind, '#', checkA, '#', MOVE_RIGHT),
		NewInstruction(rewind, '?', rewind, '?', MOVE_LEFT),
	)

	return &MachineSpec{Name: "anbncn", Start: checkA, Program: program}
}
