package group

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Group is the per-rank descriptor described in spec.md §3: group
// size, own rank, the topology predicate, and a handle to the shared
// channel matrix. It is created by Run and is private to the goroutine
// it was handed to — nothing about it is safe to share across ranks
// except through the matrix itself.
type Group struct {
	P        int
	Rank     int
	topology Predicate
	m        *matrix
	runID    uuid.UUID
}

// Run is the process-group bootstrap (spec.md §4.3), reimplemented per
// SPEC_FULL.md's process-model decision as p goroutines sharing one
// channel matrix instead of p-1 forked child processes. fn is executed
// once per rank, each with its own Group descriptor; Run blocks until
// every rank's fn has returned, the goroutine analogue of a parent
// forking children and then waiting for all of them to exit.
//
// fn must be the same program text for every rank (SPMD, spec.md §4.3);
// it differentiates its behavior by reading g.Rank.
func Run(p int, topology Predicate, fn func(g *Group)) error {
	if p <= 0 {
		return &BootstrapError{Err: ErrInvalidSize}
	}

	runID := uuid.New()
	m := newMatrix(p)

	var wg sync.WaitGroup
	wg.Add(p)
	for rank := 0; rank < p; rank++ {
		g := &Group{
			P:        p,
			Rank:     rank,
			topology: topology,
			m:        m,
			runID:    runID,
		}
		go func(g *Group) {
			defer wg.Done()
			log.Printf("group[%s]: rank %d starting (p=%d)", shortID(g.runID), g.Rank, g.P)
			fn(g)
			log.Printf("group[%s]: rank %d done", shortID(g.runID), g.Rank)
		}(g)
	}
	wg.Wait()
	return nil
}

func shortID(id uuid.UUID) string {
	s := id.String()
	return s[:8]
}
