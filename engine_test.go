package turing_machine

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestRunEngineParallelRuns(t *testing.T) {
	// Many independent inputs against one shared immutable program; no
	// coordination beyond the engine's own.
	var requests []*RunRequest
	for i := 1; i <= 25; i++ {
		input := ""
		for _, sym := range []string{"a", "b", "c"} {
			for j := 0; j < i; j++ {
				input += sym
			}
		}
		requests = append(requests, &RunRequest{Input: input})
	}

	harness := NewHarness(NewABCAcceptorSpec(), &HarnessConfig{MaxSteps: 1000000})
	checker := NewChecker(&CheckConfig{WantAccepted: true})
	loaders := NewSliceLoaders(requests, 4, 3)

	var mu sync.Mutex
	var results []*RunRecord
	engine := NewRunEngine(loaders, CollectRecords(&results, &mu), harness, checker)
	engine.Run(context.Background())

	if len(results) != len(requests) {
		t.Fatalf("Engine produced [%d] records for [%d] requests", len(results), len(requests))
	}

	for _, record := range results {
		if !record.Accepted {
			t.Errorf("Run of [%s] wasn't accepted, halted in state [%s]", record.Input, record.HaltState)
		}
		if record.CheckFail != 0 {
			t.Errorf("Run of [%s] failed check with reason [%s]", record.Input, record.CheckFail)
		}
	}
}

func TestRunEngineChecksFailures(t *testing.T) {
	requests := []*RunRequest{
		{Input: "abc"},
		{Input: "abcabc"},
	}

	harness := NewHarness(NewABCAcceptorSpec(), &HarnessConfig{MaxSteps: 100000})
	checker := NewChecker(&CheckConfig{WantAccepted: true})
	loaders := NewSliceLoaders(requests, 2, 1)

	var mu sync.Mutex
	var results []*RunRecord
	engine := NewRunEngine(loaders, CollectRecords(&results, &mu), harness, checker)
	engine.Run(context.Background())

	if len(results) != 2 {
		t.Fatalf("Engine produced [%d] records for [2] requests", len(results))
	}

	byInput := make(map[string]*RunRecord)
	for _, record := range results {
		byInput[record.Input] = record
	}

	if record := byInput["abc"]; record.CheckFail != 0 {
		t.Errorf("Run of [abc] failed check with reason [%s]", record.CheckFail)
	}
	if record := byInput["abcabc"]; record.CheckFail != FailedOutcome {
		t.Errorf("Run of [abcabc] got check reason [%s], expected [outcome mismatch]", record.CheckFail)
	}
}

func TestNewSliceLoadersCoverEveryRequest(t *testing.T) {
	var requests []*RunRequest
	for i := 0; i < 10; i++ {
		requests = append(requests, &RunRequest{Input: fmt.Sprintf("input-%d", i)})
	}

	loaders := NewSliceLoaders(requests, 3, 2)
	if len(loaders) != 3 {
		t.Fatalf("NewSliceLoaders returned [%d] loaders, expected [3]", len(loaders))
	}

	seen := make(map[string]uint)
	for id, loader := range loaders {
		for batch := range loader(uint(id), 3) {
			if uint(len(batch)) > 2 {
				t.Errorf("Loader %d produced a batch of [%d], batch size is [2]", id, len(batch))
			}
			for _, req := range batch {
				seen[req.Input]++
			}
		}
	}

	if len(seen) != len(requests) {
		t.Errorf("Loaders covered [%d] distinct requests, expected [%d]", len(seen), len(requests))
	}
	for input, count := range seen {
		if count != 1 {
			t.Errorf("Request [%s] was loaded [%d] times, expected once", input, count)
		}
	}
}
