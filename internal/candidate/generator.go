// Package candidate implements lazy, restartable candidate generators:
// dictionary, mask, and brute force. All three satisfy the same Generator
// capability so the engine can drive any of them identically.
package candidate

// Batch is an ordered, bounded sequence of candidate byte strings. An empty
// batch is never returned by a Generator; exhaustion is signalled by ok ==
// false instead.
type Batch [][]byte

// Generator is a lazy, restartable sequence of candidate byte strings.
// NextBatch returns ok == false once the keyspace is exhausted; subsequent
// calls must keep returning ok == false until Reset is called. Generators
// are safe to move between goroutines but are not required to tolerate
// concurrent NextBatch calls — the engine holds exclusive access for the
// duration of one call.
type Generator interface {
	// NextBatch returns up to size candidates. ok is false once the
	// keyspace is exhausted or a non-nil err terminates the run; a
	// non-nil err always means batch is nil and ok is false.
	NextBatch(size int) (batch Batch, ok bool, err error)

	// EstimatedSize reports the total keyspace size if known. The second
	// return value is false when the size cannot be determined ahead of
	// time (e.g. a dictionary file whose line count hasn't been scanned).
	EstimatedSize() (size uint64, known bool)

	// Reset rewinds the generator to the start of its keyspace.
	Reset() error
}
