package engine

import (
	"sync"
	"time"

	"github.com/blitzforge/blitzforge/internal/candidate"
	"github.com/blitzforge/blitzforge/internal/hashdispatch"
	"github.com/blitzforge/blitzforge/internal/target"
)

// processBucket fans a batch out across e.workers goroutines, each owning a
// disjoint contiguous slice of the batch, hashing every candidate in its
// slice against every target in the bucket.
//
// guessesTriedSoFar and startTime are the pre-batch snapshot values that get
// stamped onto any Match found in this batch; they are read once by the
// caller, never touched from inside a worker.
func (e *Engine) processBucket(
	hasher hashdispatch.Hasher,
	targets []*target.Target,
	batch candidate.Batch,
	guessesTriedSoFar uint64,
	startTime time.Time,
) ([]target.Match, error) {
	n := len(batch)
	if n == 0 || len(targets) == 0 {
		return nil, nil
	}

	workers := e.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	resultsCh := make(chan []target.Match, workers)
	panicCh := make(chan any, workers)

	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}

		wg.Add(1)
		go func(slice candidate.Batch) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicCh <- r
				}
			}()

			var local []target.Match
			for _, password := range slice {
				for _, t := range targets {
					var digest []byte
					if len(t.Salt) > 0 {
						digest = hasher.DigestSalted(password, t.Salt)
					} else {
						digest = hasher.Digest(password)
					}
					if digest == nil {
						continue
					}
					if t.Matches(digest) {
						local = append(local, target.Match{
							TargetID:          t.ID,
							Username:          t.Username,
							Password:          append([]byte(nil), password...),
							Algorithm:         t.Algorithm,
							GuessesTriedSoFar: guessesTriedSoFar,
							SecondsSinceStart: time.Since(startTime).Seconds(),
						})
					}
				}
			}
			resultsCh <- local
		}(batch[lo:hi])
	}

	wg.Wait()
	close(resultsCh)
	close(panicCh)

	if r, crashed := <-panicCh; crashed {
		return nil, &WorkerCrashedError{Recovered: r}
	}

	var matches []target.Match
	for local := range resultsCh {
		matches = append(matches, local...)
	}
	return matches, nil
}
