package turing_machine

import (
	"testing"
)

func TestFinalStateHaltsBeforeLookup(t *testing.T) {
	final := NewFinalState("done")
	// A matching instruction exists, but a final state is terminal before
	// the program is ever consulted.
	program := NewProgram(NewInstruction(final, WILDCARD, final, 'z', MOVE_RIGHT))

	tape := NewTapeFromString("abc")
	machine := NewMachine(final, tape, program)

	if outcome := machine.Step(); outcome != ACCEPTED {
		t.Errorf("Step from a final state returned [%s], expected [accepted]", outcome)
	}
	if machine.Steps != 0 {
		t.Errorf("Machine applied [%d] instructions from a final state, expected [0]", machine.Steps)
	}
	if !tape.Equal(NewTapeFromString("abc")) {
		t.Errorf("Halting from a final state disturbed the tape |%s|", tape)
	}
}

func TestStuckLeavesTapeIntact(t *testing.T) {
	s := NewState("s")
	program := NewProgram(NewInstruction(s, 'z', s, 'z', MOVE_RIGHT))

	tape := NewTapeFromString("abc")
	machine := NewMachine(s, tape, program)

	if outcome := machine.Run(); outcome != STUCK {
		t.Errorf("Run returned [%s], expected [stuck]", outcome)
	}
	if machine.Steps != 0 {
		t.Errorf("Machine applied [%d] instructions before getting stuck, expected [0]", machine.Steps)
	}
	if !tape.Equal(NewTapeFromString("abc")) {
		t.Errorf("Getting stuck disturbed the tape |%s|", tape)
	}
	if machine.State != s {
		t.Errorf("Stuck machine is in state [%s], expected [s]", machine.State)
	}
}

func TestStepAppliesInstruction(t *testing.T) {
	s := NewState("s")
	next := NewState("next")
	program := NewProgram(NewInstruction(s, 'a', next, 'x', MOVE_RIGHT))

	machine := NewMachine(s, NewTapeFromString("ab"), program)

	if outcome := machine.Step(); outcome != RUNNING {
		t.Fatalf("Step returned [%s], expected [running]", outcome)
	}
	if machine.State != next {
		t.Errorf("Machine is in state [%s], expected [next]", machine.State)
	}
	if machine.Tape.String() != "x [b]" {
		t.Errorf("Tape after step |%s| doesn't match expected |x [b]|", machine.Tape)
	}
	if machine.Steps != 1 {
		t.Errorf("Step count [%d] isn't [1]", machine.Steps)
	}
}

func TestWildcardWritePreservesSymbol(t *testing.T) {
	s := NewState("s")
	done := NewFinalState("done")
	program := NewProgram(NewInstruction(s, WILDCARD, done, WILDCARD, MOVE_STAY))

	machine := NewMachine(s, NewTapeFromString("q"), program)
	machine.Run()

	if machine.Tape.Read() != Symbol('q') {
		t.Errorf("Wildcard write changed the head symbol to [%s], expected [q]", machine.Tape.Read())
	}
}

func TestHaltedMachineStaysHalted(t *testing.T) {
	final := NewFinalState("done")
	machine := NewMachine(final, NewTapeFromString(""), NewProgram())

	machine.Run()
	if outcome := machine.Step(); outcome != ACCEPTED {
		t.Errorf("Step on a halted machine returned [%s], expected [accepted]", outcome)
	}
	if !machine.Halted() || !machine.Accepted() {
		t.Errorf("Halted accepted machine reports Halted [%v] Accepted [%v]", machine.Halted(), machine.Accepted())
	}
}

// The single-instruction spinner (S, '#', S, '#', Stay) with S non-final
// never halts. Divergence is a defined behavior; we only verify it survives
// an externally imposed budget without terminating.
func TestDivergenceUnderExternalBudget(t *testing.T) {
	s := NewState("s")
	program := NewProgram(NewInstruction(s, '#', s, '#', MOVE_STAY))

	machine := NewMachine(s, NewTapeFromString(""), program)

	const budget = 10000
	for machine.Step() == RUNNING {
		if machine.Steps >= budget {
			break
		}
	}

	if machine.Halted() {
		t.Errorf("Spinner halted as [%s] after [%d] steps, expected it to still be running", machine.Outcome, machine.Steps)
	}
	if machine.Steps != budget {
		t.Errorf("Spinner executed [%d] steps, expected the full budget [%d]", machine.Steps, budget)
	}
}

func TestMachineClone(t *testing.T) {
	s := NewState("s")
	done := NewFinalState("done")
	program := NewProgram(NewInstruction(s, 'a', done, 'x', MOVE_RIGHT))

	machine := NewMachine(s, NewTapeFromString("ab"), program)
	snapshot := machine.Clone()

	machine.Run()

	if snapshot.State != s {
		t.Errorf("Snapshot state [%s] changed with the original, expected [s]", snapshot.State)
	}
	if snapshot.Tape.Read() != Symbol('a') {
		t.Errorf("Snapshot tape head [%s] changed with the original, expected [a]", snapshot.Tape.Read())
	}
}
