// Package engine drives N worker goroutines through a candidate generator,
// checking each batch against every unsolved target under every requested
// hash algorithm, until all targets are found or the keyspace is exhausted.
//
// Targets are grouped into per-algorithm buckets sharing one Hasher, and
// each batch is split into disjoint slices handed to a fixed worker pool;
// shared counters are updated once per batch from the caller, never from
// inside a worker.
package engine

import (
	"fmt"
	"sync"

	"github.com/blitzforge/blitzforge/internal/candidate"
	"github.com/blitzforge/blitzforge/internal/hashdispatch"
	"github.com/blitzforge/blitzforge/internal/target"
)

// Observer is invoked once per batch completion with a value-copy snapshot
// of Statistics. It must not call back into the engine and is expected to
// be non-blocking; a long-running observer starves the engine between
// batches.
type Observer func(Statistics)

// CrackingResult is returned by Run: every match recorded during the run,
// the final statistics snapshot, and the total wall-clock time.
type CrackingResult struct {
	Matches    []target.Match
	Statistics Statistics
	TotalTime  float64
}

// Engine owns the targets and generator for the duration of one run.
type Engine struct {
	targets   []target.Target
	generator candidate.Generator
	workers   int
	batchSize int

	mu    sync.Mutex
	stats Statistics
}

// New builds an Engine. workers must be >= 1 (WorkerPoolFailedError
// otherwise) and batchSize must be >= 1 (ConfigError otherwise).
func New(targets []target.Target, generator candidate.Generator, workers, batchSize int) (*Engine, error) {
	if workers < 1 {
		return nil, &WorkerPoolFailedError{Reason: fmt.Sprintf("workers must be >= 1, got %d", workers)}
	}
	if batchSize < 1 {
		return nil, &ConfigError{Reason: fmt.Sprintf("batch_size must be >= 1, got %d", batchSize)}
	}

	return &Engine{
		targets:   targets,
		generator: generator,
		workers:   workers,
		batchSize: batchSize,
		stats:     NewStatistics(len(targets)),
	}, nil
}

// Stats returns a value-copy snapshot of the engine's current statistics.
func (e *Engine) Stats() Statistics {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// targetBucket is one algorithm's slice of targets, with a shared hasher.
type targetBucket struct {
	algorithm hashdispatch.Algorithm
	hasher    hashdispatch.Hasher
	targets   []*target.Target
}

// Run drives the cracking loop and returns once every target is found or
// the generator is exhausted.
func (e *Engine) Run(observer Observer) (CrackingResult, error) {
	e.mu.Lock()
	e.stats = NewStatistics(len(e.targets))
	startTime := e.stats.StartTime
	e.mu.Unlock()

	found := make(map[string]struct{}, len(e.targets))
	var matches []target.Match

	buckets := e.bucketTargets()

	if len(e.targets) == 0 {
		final := e.Stats()
		return CrackingResult{Matches: matches, Statistics: final, TotalTime: final.Elapsed()}, nil
	}

	for {
		if len(found) >= len(e.targets) {
			break
		}

		batch, ok, err := e.generator.NextBatch(e.batchSize)
		if err != nil {
			return CrackingResult{}, &GeneratorFailedError{Err: err}
		}
		if !ok {
			break
		}
		batchActual := uint64(len(batch))

		// snapshot the values match records are stamped with; reading
		// them here (not from inside the parallel region) keeps the
		// hot loop free of shared-counter access.
		statsBefore := e.Stats()

		activeBuckets := 0
		for _, bucket := range buckets {
			unsolved := unsolvedTargets(bucket.targets, found)
			if len(unsolved) == 0 {
				continue
			}
			activeBuckets++

			bucketMatches, err := e.processBucket(bucket.hasher, unsolved, batch, statsBefore.GuessesTried, startTime)
			if err != nil {
				return CrackingResult{}, err
			}

			for _, m := range bucketMatches {
				if _, already := found[m.TargetID]; already {
					continue
				}
				found[m.TargetID] = struct{}{}
				matches = append(matches, m)
			}
		}

		e.mu.Lock()
		e.stats.GuessesTried += batchActual
		e.stats.HashesComputed += batchActual * uint64(activeBuckets)
		e.stats.TargetsFound = len(found)
		e.stats.UpdateThroughput()
		snapshot := e.stats
		e.mu.Unlock()

		if observer != nil {
			observer(snapshot)
		}
	}

	final := e.Stats()
	return CrackingResult{Matches: matches, Statistics: final, TotalTime: final.Elapsed()}, nil
}

// bucketTargets partitions targets by algorithm, preserving first-seen
// order. target.New accepts an Algorithm outside the known set (it skips
// the digest-length check for one), so such a target still gets its own
// bucket, backed by hashdispatch's unknownHasher, which never matches;
// hashdispatch.New never returns nil.
func (e *Engine) bucketTargets() []targetBucket {
	order := make([]hashdispatch.Algorithm, 0)
	byAlgo := make(map[hashdispatch.Algorithm][]*target.Target)

	for i := range e.targets {
		t := &e.targets[i]
		if _, seen := byAlgo[t.Algorithm]; !seen {
			order = append(order, t.Algorithm)
		}
		byAlgo[t.Algorithm] = append(byAlgo[t.Algorithm], t)
	}

	buckets := make([]targetBucket, 0, len(order))
	for _, algo := range order {
		buckets = append(buckets, targetBucket{
			algorithm: algo,
			hasher:    hashdispatch.New(algo),
			targets:   byAlgo[algo],
		})
	}
	return buckets
}

func unsolvedTargets(targets []*target.Target, found map[string]struct{}) []*target.Target {
	unsolved := make([]*target.Target, 0, len(targets))
	for _, t := range targets {
		if _, done := found[t.ID]; !done {
			unsolved = append(unsolved, t)
		}
	}
	return unsolved
}
