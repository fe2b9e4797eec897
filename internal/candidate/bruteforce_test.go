package candidate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Charset "ab" with min=max=2 must enumerate exactly aa, ab, ba, bb.
func TestBruteForceTwoCharAllFour(t *testing.T) {
	g := NewBruteForceGenerator(FromString("ab"), 2, 2)

	batch, ok, err := g.NextBatch(100)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Batch{
		[]byte("aa"), []byte("ab"), []byte("ba"), []byte("bb"),
	}, batch)

	_, ok, err = g.NextBatch(1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBruteForceShortestFirstAcrossLengths(t *testing.T) {
	g := NewBruteForceGenerator(FromString("ab"), 1, 2)

	batch, ok, err := g.NextBatch(100)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Batch{
		[]byte("a"), []byte("b"),
		[]byte("aa"), []byte("ab"), []byte("ba"), []byte("bb"),
	}, batch)
}

func TestBruteForceMinGreaterThanMaxIsExhaustedImmediately(t *testing.T) {
	g := NewBruteForceGenerator(FromString("ab"), 3, 1)

	_, ok, err := g.NextBatch(10)
	require.NoError(t, err)
	require.False(t, ok)

	size, known := g.EstimatedSize()
	require.True(t, known)
	require.Equal(t, uint64(0), size)
}

func TestBruteForceEmptyCharsetIsExhaustedImmediately(t *testing.T) {
	g := NewBruteForceGenerator(CharSet{}, 1, 2)

	_, ok, err := g.NextBatch(10)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBruteForceEstimatedSizeSum(t *testing.T) {
	g := NewBruteForceGenerator(FromString("ab"), 1, 3)

	size, known := g.EstimatedSize()
	require.True(t, known)
	require.Equal(t, uint64(2+4+8), size)
}

func TestBruteForceResetReplaysSameSequence(t *testing.T) {
	g := NewBruteForceGenerator(FromString("abc"), 1, 2)

	first, _, err := g.NextBatch(5)
	require.NoError(t, err)
	require.NoError(t, g.Reset())
	second, _, err := g.NextBatch(5)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
