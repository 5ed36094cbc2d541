package turing_machine

import (
	sm "github.com/xrash/smetrics"
)

// A RunRequest is one tape to execute, with an optional expected final tape
// text for scoring.
type RunRequest struct {
	Input    string
	Expected string
}

// A RunRecord is the archived result of one run: what went in, what came
// out, how the machine halted and how long it took. Output and Expected are
// tape contents with the outer blanks stripped. Distance is the
// Wagner-Fischer edit distance between Output and Expected (0 when no
// expectation was given). CheckFail is the Checker's verdict, 0 for pass.
type RunRecord struct {
	ID           uint
	ProgramName  string
	Input        string
	Output       string
	HaltState    string
	Accepted     bool
	Steps        uint
	StepLimitHit bool
	Expected     string
	Distance     uint
	CheckFail    CheckFailReason
}

type HarnessConfig struct {
	// MaxSteps bounds a single run. The machine itself has no internal
	// bound; the harness imposes this one between steps. 0 means unbounded
	// -- a diverging program will then never return.
	MaxSteps uint `toml:"max_steps"`
}

// A Harness runs tapes through one machine spec and produces RunRecords.
// The spec's program is immutable and may be shared by any number of
// harnesses and machines; every run gets its own fresh tape.
type Harness struct {
	Spec   *MachineSpec
	Config *HarnessConfig
}

func NewHarness(spec *MachineSpec, config *HarnessConfig) *Harness {
	return &Harness{Spec: spec, Config: config}
}

// Execute runs one request to completion or to the step budget.
func (h *Harness) Execute(req *RunRequest) *RunRecord {

	machine := h.Spec.NewMachine(NewTapeFromString(req.Input))

	record := &RunRecord{
		ProgramName: h.Spec.Name,
		Input:       req.Input,
		Expected:    req.Expected,
	}

	for machine.Step() == RUNNING {
		if h.Config.MaxSteps > 0 && machine.Steps >= h.Config.MaxSteps {
			record.StepLimitHit = true
			break
		}
	}

	record.Steps = machine.Steps
	record.HaltState = machine.State.Name
	record.Accepted = machine.Accepted()
	record.Output = machine.Tape.Contents()
	if len(req.Expected) > 0 {
		record.Distance = uint(sm.WagnerFischer(record.Output, req.Expected, 1, 1, 2))
	}

	return record
}
