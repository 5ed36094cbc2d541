package turing_machine

// A Program is an ordered list of instructions. Order is semantics: lookup
// is a linear scan and the first matching instruction wins. The matcher does
// not prioritize specific reads over wildcards -- an author who puts a
// wildcard rule for a state before a specific rule for the same state has
// shadowed the specific rule, and the program will faithfully do the wrong
// thing. Put specific rules first.
type Program []*Instruction

func NewProgram(instructions ...*Instruction) Program {
	return Program(instructions)
}

// Match returns the first instruction in declaration order that applies to
// (state, head), or (nil, false) if no instruction matches. A failed match
// is not an error; it is how the machine gets stuck.
func (p Program) Match(state *State, head Symbol) (*Instruction, bool) {
	for _, instr := range p {
		if instr.Matches(state, head) {
			return instr, true
		}
	}
	return nil, false
}

// States returns every state referenced by the program, in first-appearance
// order. Diagnostics only.
func (p Program) States() []*State {
	seen := make(map[*State]bool)
	var states []*State
	for _, instr := range p {
		if !seen[instr.From] {
			seen[instr.From] = true
			states = append(states, instr.From)
		}
		if !seen[instr.To] {
			seen[instr.To] = true
			states = append(states, instr.To)
		}
	}
	return states
}
