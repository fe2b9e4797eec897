package engine

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/blitzforge/blitzforge/internal/candidate"
	"github.com/blitzforge/blitzforge/internal/hashdispatch"
	"github.com/blitzforge/blitzforge/internal/target"
	"github.com/stretchr/testify/require"
)

func md5Target(t *testing.T, id, password string) target.Target {
	t.Helper()
	digest := hashdispatch.New(hashdispatch.Md5).Digest([]byte(password))
	tgt, err := target.New(id, id, hashdispatch.Md5, hex.EncodeToString(digest), "")
	require.NoError(t, err)
	return tgt
}

// A brute-force search over a tiny keyspace containing the target password
// must find it and report exactly one Match.
func TestRunFindsSingleMatch(t *testing.T) {
	tgt := md5Target(t, "t1", "ab")
	gen := candidate.NewBruteForceGenerator(candidate.FromString("ab"), 1, 2)

	e, err := New([]target.Target{tgt}, gen, 2, 4)
	require.NoError(t, err)

	result, err := e.Run(nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	require.Equal(t, "t1", result.Matches[0].TargetID)
	require.Equal(t, "ab", result.Matches[0].PasswordString())
	require.Equal(t, 1, result.Statistics.TargetsFound)
}

func TestRunStopsWhenGeneratorExhausted(t *testing.T) {
	// target password "zzz" is outside the "ab" 2-char keyspace, so the
	// generator must exhaust without ever matching.
	tgt := md5Target(t, "t1", "zzz")
	gen := candidate.NewBruteForceGenerator(candidate.FromString("ab"), 1, 2)

	e, err := New([]target.Target{tgt}, gen, 2, 4)
	require.NoError(t, err)

	result, err := e.Run(nil)
	require.NoError(t, err)
	require.Empty(t, result.Matches)
	require.Equal(t, 0, result.Statistics.TargetsFound)
}

func TestRunReportsAtMostOneMatchPerTarget(t *testing.T) {
	// A dictionary containing the same password twice must still yield
	// exactly one Match for the target it solves.
	tgt := md5Target(t, "t1", "password")
	gen := &sliceGenerator{batches: [][]byte{
		[]byte("password"), []byte("password"),
	}}

	e, err := New([]target.Target{tgt}, gen, 2, 10)
	require.NoError(t, err)

	result, err := e.Run(nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
}

func TestRunGroupsTargetsByAlgorithm(t *testing.T) {
	md5Tgt := md5Target(t, "t1", "ab")

	sha1Digest := hashdispatch.New(hashdispatch.Sha1).Digest([]byte("ab"))
	sha1Tgt, err := target.New("t2", "t2", hashdispatch.Sha1, hex.EncodeToString(sha1Digest), "")
	require.NoError(t, err)

	gen := candidate.NewBruteForceGenerator(candidate.FromString("ab"), 2, 2)

	e, err := New([]target.Target{md5Tgt, sha1Tgt}, gen, 2, 4)
	require.NoError(t, err)

	result, err := e.Run(nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 2)
	require.Equal(t, 2, result.Statistics.TargetsFound)
}

func TestNewRejectsInvalidWorkerCount(t *testing.T) {
	_, err := New(nil, &sliceGenerator{}, 0, 10)
	require.Error(t, err)
	var wpErr *WorkerPoolFailedError
	require.ErrorAs(t, err, &wpErr)
}

func TestNewRejectsInvalidBatchSize(t *testing.T) {
	_, err := New(nil, &sliceGenerator{}, 2, 0)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestRunWithNoTargetsReturnsImmediately(t *testing.T) {
	e, err := New(nil, &sliceGenerator{batches: [][]byte{[]byte("a")}}, 2, 10)
	require.NoError(t, err)

	result, err := e.Run(nil)
	require.NoError(t, err)
	require.Empty(t, result.Matches)
}

func TestRunWrapsGeneratorFailure(t *testing.T) {
	tgt := md5Target(t, "t1", "ab")
	gen := &sliceGenerator{failErr: errBoom}

	e, err := New([]target.Target{tgt}, gen, 2, 10)
	require.NoError(t, err)

	_, err = e.Run(nil)
	require.Error(t, err)
	var genErr *GeneratorFailedError
	require.ErrorAs(t, err, &genErr)
	require.ErrorIs(t, genErr.Unwrap(), errBoom)
}

var errBoom = errors.New("boom")

// sliceGenerator is a minimal test double implementing candidate.Generator
// over a fixed, in-memory list of candidates.
type sliceGenerator struct {
	batches [][]byte
	offset  int
	failErr error
}

func (s *sliceGenerator) NextBatch(size int) (candidate.Batch, bool, error) {
	if s.failErr != nil {
		return nil, false, s.failErr
	}
	if s.offset >= len(s.batches) {
		return nil, false, nil
	}
	end := s.offset + size
	if end > len(s.batches) {
		end = len(s.batches)
	}
	out := candidate.Batch(s.batches[s.offset:end])
	s.offset = end
	return out, true, nil
}

func (s *sliceGenerator) EstimatedSize() (uint64, bool) { return uint64(len(s.batches)), true }

func (s *sliceGenerator) Reset() error {
	s.offset = 0
	return nil
}
