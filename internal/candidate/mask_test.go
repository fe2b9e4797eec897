package candidate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Mask "?d?d" must enumerate 00, 01, 02, 03, 04 as its first five
// candidates.
func TestMaskDigitDigitFirstFive(t *testing.T) {
	g, err := NewMaskGenerator("?d?d")
	require.NoError(t, err)

	batch, ok, err := g.NextBatch(5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Batch{
		[]byte("00"), []byte("01"), []byte("02"), []byte("03"), []byte("04"),
	}, batch)
}

func TestMaskLiteralPositionsPreserved(t *testing.T) {
	g, err := NewMaskGenerator("?l-?d")
	require.NoError(t, err)

	batch, ok, err := g.NextBatch(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a-0", string(batch[0]))
}

func TestMaskUnknownClass(t *testing.T) {
	_, err := NewMaskGenerator("?d?x")
	require.Error(t, err)
	var unknown *UnknownMaskClassError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, byte('x'), unknown.Class)
}

func TestMaskExhaustion(t *testing.T) {
	g, err := NewMaskGenerator("?d")
	require.NoError(t, err)

	batch, ok, err := g.NextBatch(100)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, batch, 10)

	_, ok, err = g.NextBatch(1)
	require.NoError(t, err)
	require.False(t, ok, "generator must report exhaustion once all 10 digits are emitted")
}

func TestMaskEstimatedSize(t *testing.T) {
	g, err := NewMaskGenerator("?d?d?l")
	require.NoError(t, err)

	size, known := g.EstimatedSize()
	require.True(t, known)
	require.Equal(t, uint64(10*10*26), size)
}

func TestMaskResetReplaysSameSequence(t *testing.T) {
	g, err := NewMaskGenerator("?d?d")
	require.NoError(t, err)

	first, _, err := g.NextBatch(3)
	require.NoError(t, err)
	require.NoError(t, g.Reset())
	second, _, err := g.NextBatch(3)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
