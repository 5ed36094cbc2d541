package turing_machine

import (
	str "strings"
	"testing"
)

func TestPrintTape(t *testing.T) {
	var sb str.Builder
	printer := NewPrinter(&sb)

	tape := NewTapeFromString("abc")
	tape.MoveRight()
	printer.PrintTape(tape)

	if sb.String() != "a [b] c\n" {
		t.Errorf("PrintTape wrote |%s|, expected |a [b] c\\n|", sb.String())
	}
}

func TestPrintResultAccepted(t *testing.T) {
	var sb str.Builder
	printer := NewPrinter(&sb)

	done := NewFinalState("done")
	machine := NewMachine(done, NewTapeFromString("ok"), NewProgram())
	machine.Run()
	printer.PrintResult(machine)

	expected := "Input accepted.\nMachine halted in state done\nFinal tape configuration:\n[o] k\n"
	if sb.String() != expected {
		t.Errorf("PrintResult wrote |%s|, expected |%s|", sb.String(), expected)
	}
}

func TestPrintResultNotAccepted(t *testing.T) {
	var sb str.Builder
	printer := NewPrinter(&sb)

	s := NewState("wedged")
	machine := NewMachine(s, NewTapeFromString(""), NewProgram())
	machine.Run()
	printer.PrintResult(machine)

	expected := "Input not accepted.\nMachine halted in state wedged\nFinal tape configuration:\n[#]\n"
	if sb.String() != expected {
		t.Errorf("PrintResult wrote |%s|, expected |%s|", sb.String(), expected)
	}
}

func TestExecutePrintsInitialAndFinal(t *testing.T) {
	var sb str.Builder
	printer := NewPrinter(&sb)

	spec := NewReverseSpec()
	printer.Execute(spec.NewMachine(NewTapeFromString("ab")))

	out := sb.String()
	if !str.HasPrefix(out, "-------------\nInitial tape:\n[a] b\n") {
		t.Errorf("Execute output |%s| doesn't start with the initial tape block", out)
	}
	if !str.Contains(out, "Input accepted.\n") {
		t.Errorf("Execute output |%s| is missing the accept line", out)
	}
}
