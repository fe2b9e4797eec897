package target

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/blitzforge/blitzforge/internal/hashdispatch"
)

// manifestEntry is the on-disk shape of one targets-manifest element.
type manifestEntry struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Algorithm string `json:"hash_algo"`
	HashHex   string `json:"hash_hex"`
	Salt      string `json:"salt"`
}

// LoadManifest reads a JSON targets manifest from path and validates every
// entry. Load fails on malformed JSON, an unknown algorithm string, or an
// odd-length/non-hex hash_hex.
func LoadManifest(path string) ([]Target, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading targets manifest %s: %w", path, err)
	}

	var entries []manifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing targets manifest %s: %w", path, err)
	}

	targets := make([]Target, 0, len(entries))
	for _, e := range entries {
		algo, err := hashdispatch.ParseAlgorithm(e.Algorithm)
		if err != nil {
			return nil, &InvalidTargetError{TargetID: e.ID, Reason: err.Error()}
		}

		t, err := New(e.ID, e.Username, algo, e.HashHex, e.Salt)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	return targets, nil
}

// SaveManifest writes targets out in the same JSON shape LoadManifest reads,
// using hex-encoded digests so a save/load round-trip is lossless.
func SaveManifest(path string, targets []Target) error {
	entries := make([]manifestEntry, 0, len(targets))
	for _, t := range targets {
		entries = append(entries, manifestEntry{
			ID:        t.ID,
			Username:  t.Username,
			Algorithm: t.Algorithm.String(),
			HashHex:   hex.EncodeToString(t.Digest),
			Salt:      string(t.Salt),
		})
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding targets manifest: %w", err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing targets manifest %s: %w", path, err)
	}
	return nil
}
