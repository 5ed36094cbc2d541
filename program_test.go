package turing_machine

import (
	"testing"
)

func TestMatchFirstWins(t *testing.T) {
	s := NewState("s")
	other := NewState("other")

	first := NewInstruction(s, 'a', s, 'b', MOVE_RIGHT)
	second := NewInstruction(s, 'a', other, 'c', MOVE_LEFT)
	program := NewProgram(first, second)

	instr, ok := program.Match(s, 'a')
	if !ok {
		t.Fatalf("Match found no instruction for (s, a)")
	}
	if instr != first {
		t.Errorf("Match returned %s, expected the first-declared %s", instr, first)
	}
}

func TestMatchWildcardRead(t *testing.T) {
	s := NewState("s")
	wild := NewInstruction(s, WILDCARD, s, WILDCARD, MOVE_RIGHT)
	program := NewProgram(wild)

	for _, head := range []Symbol{'a', 'b', BLANK, '|', WILDCARD} {
		instr, ok := program.Match(s, head)
		if !ok {
			t.Errorf("Wildcard rule didn't match head symbol [%s]", head)
		} else if instr != wild {
			t.Errorf("Match returned %s for head [%s], expected the wildcard rule", instr, head)
		}
	}
}

// A wildcard rule declared before a specific rule for the same state shadows
// it. The matcher is pure linear precedence; ordering is the author's
// problem.
func TestMatchWildcardShadowsLaterSpecific(t *testing.T) {
	s := NewState("s")
	wild := NewInstruction(s, WILDCARD, s, WILDCARD, MOVE_RIGHT)
	specific := NewInstruction(s, 'a', s, 'b', MOVE_LEFT)
	program := NewProgram(wild, specific)

	instr, _ := program.Match(s, 'a')
	if instr != wild {
		t.Errorf("Match returned %s, expected the earlier wildcard rule to shadow the specific one", instr)
	}
}

func TestMatchWrongState(t *testing.T) {
	s := NewState("s")
	other := NewState("other")
	program := NewProgram(NewInstruction(s, WILDCARD, s, WILDCARD, MOVE_STAY))

	if _, ok := program.Match(other, 'a'); ok {
		t.Errorf("Match found an instruction for a state with no rules")
	}
}

// States compare by identity, not by name: two states built with the same
// name are distinct.
func TestMatchStateIdentity(t *testing.T) {
	s1 := NewState("s")
	s2 := NewState("s")
	program := NewProgram(NewInstruction(s1, WILDCARD, s1, WILDCARD, MOVE_STAY))

	if _, ok := program.Match(s2, 'a'); ok {
		t.Errorf("Match treated two same-named states as one")
	}
}

func TestMatchNoMatch(t *testing.T) {
	s := NewState("s")
	program := NewProgram(NewInstruction(s, 'a', s, 'a', MOVE_RIGHT))

	if instr, ok := program.Match(s, 'b'); ok {
		t.Errorf("Match returned %s for (s, b), expected no match", instr)
	}
}

func TestProgramStates(t *testing.T) {
	a := NewState("a")
	b := NewState("b")
	program := NewProgram(
		NewInstruction(a, 'x', b, 'x', MOVE_RIGHT),
		NewInstruction(b, 'x', a, 'x', MOVE_LEFT),
	)

	states := program.States()
	if len(states) != 2 {
		t.Fatalf("States returned [%d] states, expected [2]", len(states))
	}
	if states[0] != a || states[1] != b {
		t.Errorf("States returned [%s, %s], expected first-appearance order [a, b]", states[0], states[1])
	}
}
