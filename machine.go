package turing_machine

import (
	cp "github.com/jinzhu/copier"
)

// Outcome is the interpreter's own status, distinct from the machine states
// a program defines. A machine is RUNNING until it halts, and halting is
// never an error: ACCEPTED means a final state was reached, STUCK means no
// instruction matched in a non-final state. Divergence is the third
// possibility and by design the core does not detect it -- callers that want
// bounded execution impose a budget between steps (see Harness).
type Outcome byte

const (
	RUNNING Outcome = iota
	ACCEPTED
	STUCK
)

func (o Outcome) String() string {
	switch o {
	case RUNNING:
		return "running"
	case ACCEPTED:
		return "accepted"
	case STUCK:
		return "stuck"
	default:
		return "unknown"
	}
}

// A Machine is one configuration of a run: the current control state, the
// tape (exclusively owned; never shared between machines), and the immutable
// program being executed. Steps counts applied instructions.
type Machine struct {
	State   *State
	Tape    *Tape
	Program Program
	Steps   uint
	Outcome Outcome
}

func NewMachine(start *State, tape *Tape, program Program) *Machine {
	return &Machine{
		State:   start,
		Tape:    tape,
		Program: program,
		Outcome: RUNNING,
	}
}

// Step performs one transition:
//
//  1. A final state halts the machine as ACCEPTED immediately, before any
//     instruction lookup. This precedence is observable and deliberate: a
//     final state is terminal even if an instruction for it exists.
//  2. Otherwise the program is consulted for (state, head symbol). No match
//     halts the machine as STUCK with the tape untouched.
//  3. Otherwise the matched instruction is applied: write (WILDCARD writes
//     nothing), move, transition.
//
// Once halted, further calls are no-ops and return the halting outcome.
func (m *Machine) Step() Outcome {
	if m.Outcome != RUNNING {
		return m.Outcome
	}

	if m.State.Final {
		m.Outcome = ACCEPTED
		return m.Outcome
	}

	instr, ok := m.Program.Match(m.State, m.Tape.Read())
	if !ok {
		m.Outcome = STUCK
		return m.Outcome
	}

	m.Tape.Write(instr.Write)
	m.Tape.Move(instr.Move)
	m.State = instr.To
	m.Steps = m.Steps + 1

	return RUNNING
}

// Run steps the machine until it halts. There is no internal step bound; a
// program that never reaches a final state and always matches will loop
// forever, which is a defined behavior of the model, not an error.
func (m *Machine) Run() Outcome {
	for m.Step() == RUNNING {
	}
	return m.Outcome
}

func (m *Machine) Halted() bool {
	return m.Outcome != RUNNING
}

// Accepted reports whether the machine halted in a final state.
func (m *Machine) Accepted() bool {
	return m.Outcome == ACCEPTED
}

// Clone deep-copies the configuration so a snapshot can be kept or a run
// forked. The program reference is shared; programs are immutable.
func (m *Machine) Clone() *Machine {
	clone := &Machine{}
	cp.Copy(clone, m)
	clone.Tape = m.Tape.Clone()
	return clone
}
