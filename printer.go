package turing_machine

import (
	"fmt"
	"io"
)

// Printer renders tapes and run results for humans. It is a collaborator of
// the machine, not part of it: it only ever sees configurations between
// steps or after halting, so it can never observe a half-applied
// instruction.
type Printer struct {
	Out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{Out: out}
}

func (p *Printer) PrintTape(t *Tape) {
	fmt.Fprintf(p.Out, "%s\n", t)
}

// PrintResult reports a halted machine: the accept/reject line, the halting
// state, and the final tape.
func (p *Printer) PrintResult(m *Machine) {
	if m.State.Final {
		fmt.Fprintf(p.Out, "Input accepted.\n")
	} else {
		fmt.Fprintf(p.Out, "Input not accepted.\n")
	}
	fmt.Fprintf(p.Out, "Machine halted in state %s\n", m.State)
	fmt.Fprintf(p.Out, "Final tape configuration:\n")
	p.PrintTape(m.Tape)
}

// Execute prints the initial tape, runs the machine to completion, and
// prints the result. Unbounded, like Machine.Run; demo use only.
func (p *Printer) Execute(m *Machine) {
	fmt.Fprintf(p.Out, "-------------\n")
	fmt.Fprintf(p.Out, "Initial tape:\n")
	p.PrintTape(m.Tape)
	m.Run()
	p.PrintResult(m)
}
