package main

import (
	"fmt"
	"os"

	tm "nickandperla.net/turing_machine"
)

// Runs the two library machines over the reference inputs and prints each
// run's initial tape, verdict, halting state and final tape.

func main() {
	printer := tm.NewPrinter(os.Stdout)

	fmt.Println("Input reversal machine:")
	fmt.Println("=======================")

	reverse := tm.NewReverseSpec()
	for _, input := range []string{"abaabba", "a", "ab", ""} {
		printer.Execute(reverse.NewMachine(tm.NewTapeFromString(input)))
	}

	fmt.Println()
	fmt.Println("Acceptor of { a^n b^n c^n : n >= 0 }:")
	fmt.Println("=====================================")

	acceptor := tm.NewABCAcceptorSpec()
	for _, input := range []string{"aaabbbccc", "abc", "", "aabcc", "aabbccc", "aabbc", "abcabc"} {
		printer.Execute(acceptor.NewMachine(tm.NewTapeFromString(input)))
	}
}
