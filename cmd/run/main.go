package main

import (
	"context"
	"flag"
	"os"
	"sync"

	tm "nickandperla.net/turing_machine"

	"github.com/BurntSushi/toml"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

/*
	Read config file (TOML)

	From unmarshaled config:
		Connect/Initialize run archive
		Build the named library machine
		Run every input tape through the engine
		Archive and report the results
*/

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for turing_machine tools to use. Defaults to './config.toml'")
var programName *string = flag.String("program", "reverse", "The library machine to run. One of: reverse, anbncn")
var expected *string = flag.String("expect", "", "Expected final tape contents for every input. Optional")
var profiling *bool = flag.Bool("profile", false, "Write a CPU profile to the current directory")

func main() {
	flag.Parse()

	if *profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	conffile, err := os.Open(*toolConfigPath)

	if err != nil {
		log.Fatalf("Unable to load turing_machine config: %v", err)
	}

	confDecoder := toml.NewDecoder(conffile)
	var toolConfig tm.ToolConfig
	if _, err = confDecoder.Decode(&toolConfig); err != nil {
		log.Fatalf("Failed to unmarshal tool config: %v", err)
	}
	conffile.Close()

	inputs := flag.Args()
	if len(inputs) == 0 {
		log.Fatalf("No input tapes given. Pass tape contents as trailing arguments.")
	}

	spec, err := tm.LookupSpec(*programName)
	if err != nil {
		log.Fatalf("Unknown program: %v", err)
	}

	persist, err := tm.NewPersistence(toolConfig.Persistence)
	if err != nil {
		log.Fatalf("Failed to create or initialize Persistence: %v", err)
	}
	defer persist.Shutdown()

	requests := make([]*tm.RunRequest, len(inputs))
	for i, input := range inputs {
		requests[i] = &tm.RunRequest{Input: input, Expected: *expected}
	}

	harness := tm.NewHarness(spec, toolConfig.Harness)
	checker := tm.NewChecker(toolConfig.Check)
	loaders := tm.NewSliceLoaders(requests, toolConfig.Workers, toolConfig.BatchSize)

	var mu sync.Mutex
	var results []*tm.RunRecord
	collect := tm.CollectRecords(&results, &mu)
	archive := persist.GetRecordPersistor()

	engine := tm.NewRunEngine(loaders, func(records *[]*tm.RunRecord) {
		archive(records)
		collect(records)
	}, harness, checker)

	engine.Run(context.Background())

	for _, r := range results {
		if r.CheckFail != 0 {
			log.Printf("FAIL [%s] input [%s]: %s. Halted %s in state [%s] after %d steps, output [%s]",
				r.ProgramName, r.Input, r.CheckFail, outcome(r), r.HaltState, r.Steps, r.Output)
		} else {
			log.Printf("PASS [%s] input [%s]: halted %s in state [%s] after %d steps, output [%s]",
				r.ProgramName, r.Input, outcome(r), r.HaltState, r.Steps, r.Output)
		}
	}
}

func outcome(r *tm.RunRecord) string {
	switch {
	case r.StepLimitHit:
		return "over budget"
	case r.Accepted:
		return "accepted"
	default:
		return "stuck"
	}
}
