package candidate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaturatingMulClampsOnOverflow(t *testing.T) {
	require.Equal(t, uint64(math.MaxUint64), saturatingMul(math.MaxUint64, 2))
	require.Equal(t, uint64(6), saturatingMul(2, 3))
	require.Equal(t, uint64(0), saturatingMul(0, 5))
}

func TestSaturatingPowClampsOnOverflow(t *testing.T) {
	require.Equal(t, uint64(math.MaxUint64), saturatingPow(95, 64))
	require.Equal(t, uint64(8), saturatingPow(2, 3))
	require.Equal(t, uint64(1), saturatingPow(5, 0))
}

func TestSaturatingAddClampsOnOverflow(t *testing.T) {
	require.Equal(t, uint64(math.MaxUint64), saturatingAdd(math.MaxUint64, 1))
	require.Equal(t, uint64(5), saturatingAdd(2, 3))
}
