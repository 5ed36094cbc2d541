package turing_machine

// A State is one of the machine's control states. States are defined once
// when a program is built and referenced by pointer everywhere after, so
// identity comparison is state equality. Final marks a terminal state:
// reaching one halts the machine as accepted before any instruction lookup
// happens.
type State struct {
	Name  string
	Final bool
}

func NewState(name string) *State {
	return &State{Name: name}
}

func NewFinalState(name string) *State {
	return &State{Name: name, Final: true}
}

func (s *State) String() string {
	return s.Name
}
