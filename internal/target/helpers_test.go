package target

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/blitzforge/blitzforge/internal/hashdispatch"
)

func algoMd5(t *testing.T) hashdispatch.Algorithm {
	t.Helper()
	return hashdispatch.Md5
}

func mustDigest(t *testing.T, hexStr string) []byte {
	t.Helper()
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		t.Fatalf("mustDigest: %v", err)
	}
	return b
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
