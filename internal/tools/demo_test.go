package tools

import (
	"context"
	"testing"

	"github.com/blitzforge/blitzforge/internal/hashdispatch"
	"github.com/stretchr/testify/require"
)

func TestGenerateDemoTargetsOneTargetPerPair(t *testing.T) {
	passwords := []string{"password", "hunter2", "letmein"}
	algorithms := []hashdispatch.Algorithm{hashdispatch.Md5, hashdispatch.Sha1}

	targets, err := GenerateDemoTargets(context.Background(), passwords, algorithms)
	require.NoError(t, err)
	require.Len(t, targets, len(passwords)*len(algorithms))

	seen := make(map[string]bool)
	for _, tgt := range targets {
		require.False(t, seen[tgt.ID], "target IDs must be unique")
		seen[tgt.ID] = true
		require.Len(t, tgt.Digest, hashdispatch.DigestSize(tgt.Algorithm))
	}
}

func TestGenerateDemoTargetsDigestsAreVerifiable(t *testing.T) {
	targets, err := GenerateDemoTargets(context.Background(), []string{"password"}, []hashdispatch.Algorithm{hashdispatch.Md5})
	require.NoError(t, err)
	require.Len(t, targets, 1)

	tgt := targets[0]
	hasher := hashdispatch.New(hashdispatch.Md5)

	var computed []byte
	if len(tgt.Salt) > 0 {
		computed = hasher.DigestSalted([]byte("password"), tgt.Salt)
	} else {
		computed = hasher.Digest([]byte("password"))
	}
	require.True(t, tgt.Matches(computed))
}

func TestGenerateDemoTargetsEmptyInput(t *testing.T) {
	targets, err := GenerateDemoTargets(context.Background(), nil, []hashdispatch.Algorithm{hashdispatch.Md5})
	require.NoError(t, err)
	require.Empty(t, targets)
}
