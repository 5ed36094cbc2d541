package turing_machine

import (
	"context"
	"sync"
)

// A RunEngine fans a workload of run requests out over parallel processors.
// Safe because runs are fully independent: each owns its tape and
// configuration chain, and the shared program is never mutated.
type RunEngine struct {
	Processors []*Processor
}

func NewRunEngine(loaders []RequestLoader, persistor RecordPersistor, harness *Harness, checker *Checker) *RunEngine {
	processors := make([]*Processor, len(loaders))
	for i, loader := range loaders {
		processors[i] = NewProcessor(loader, persistor, harness, checker)
	}
	return &RunEngine{
		Processors: processors,
	}
}

func (re *RunEngine) Run(ctx context.Context) {
	var wg sync.WaitGroup
	count := uint(len(re.Processors))
	for i, processor := range re.Processors {
		wg.Add(1)
		go func(p *Processor, id, total uint) {
			defer wg.Done()
			p.Run(ctx, id, total)
		}(processor, uint(i), count)
	}

	wg.Wait()
}

// NewSliceLoaders partitions an in-memory request list among workers, each
// loader handing out batches of at most batchSize requests.
func NewSliceLoaders(requests []*RunRequest, workers, batchSize uint) []RequestLoader {
	if workers == 0 {
		workers = 1
	}
	if batchSize == 0 {
		batchSize = 1
	}
	loaders := make([]RequestLoader, workers)
	for i := range loaders {
		loaders[i] = func(id, total uint) <-chan []*RunRequest {
			out := make(chan []*RunRequest)
			go func() {
				defer close(out)
				batch := make([]*RunRequest, 0, batchSize)
				for q := uint(0); q < uint(len(requests)); q++ {
					if q%total != id {
						continue
					}
					batch = append(batch, requests[q])
					if uint(len(batch)) == batchSize {
						out <- batch
						batch = make([]*RunRequest, 0, batchSize)
					}
				}
				if len(batch) > 0 {
					out <- batch
				}
			}()
			return out
		}
	}
	return loaders
}

// CollectRecords is a RecordPersistor that appends into a shared slice, for
// callers that want results in memory instead of the archive.
func CollectRecords(sink *[]*RunRecord, mu *sync.Mutex) RecordPersistor {
	return func(records *[]*RunRecord) {
		mu.Lock()
		*sink = append(*sink, *records...)
		mu.Unlock()
	}
}
