package turing_machine

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// A RequestLoader feeds batches of run requests to one processor. It is
// called with the processor's id and the total processor count so loaders
// backed by a shared source can partition it. A nil batch (or a closed
// channel) means the source is drained.
type RequestLoader func(id, total uint) <-chan []*RunRequest

// A RecordPersistor takes a batch of finished records off a processor's
// hands, typically into the archive.
type RecordPersistor func(*[]*RunRecord)

// A Processor drains one loader, executing and checking every request.
// Independent runs share nothing but the immutable program, so processors
// need no coordination beyond the context.
type Processor struct {
	Input     RequestLoader
	Persistor RecordPersistor
	Harness   *Harness
	Checker   *Checker
}

func NewProcessor(loader RequestLoader, persistor RecordPersistor, harness *Harness, checker *Checker) *Processor {
	return &Processor{
		Input:     loader,
		Persistor: persistor,
		Harness:   harness,
		Checker:   checker,
	}
}

func (p *Processor) Run(ctx context.Context, id, total uint) {
	input := p.Input(id, total)
FOR:
	for {
		select {
		case requests := <-input:
			if requests == nil {
				if DEBUG {
					log.Printf("Closing processor %d", id)
				}
				break FOR
			}
			records := make([]*RunRecord, 0, len(requests))
			for _, request := range requests {
				record := p.Harness.Execute(request)
				record.CheckFail = p.Checker.Check(record)
				records = append(records, record)
			}
			p.Persistor(&records)
		case <-ctx.Done():
			break FOR
		}
	}
}
