// Package target models the immutable description of a single hash to
// recover and the Match record produced when a candidate pre-images it.
package target

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/blitzforge/blitzforge/internal/hashdispatch"
)

// InvalidTargetError is returned when a target manifest entry fails to load:
// an unknown algorithm, malformed hex, or a digest length mismatch for its
// algorithm.
type InvalidTargetError struct {
	TargetID string
	Reason   string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target %q: %s", e.TargetID, e.Reason)
}

// Target is an immutable record describing one hash to recover. Once
// constructed it is shared read-only with every worker.
type Target struct {
	ID        string
	Username  string
	Algorithm hashdispatch.Algorithm
	Digest    []byte
	Salt      []byte
}

// New builds a Target from its manifest fields, decoding hashHex and
// validating its length against the algorithm's digest size.
func New(id, username string, algo hashdispatch.Algorithm, hashHex string, salt string) (Target, error) {
	digest, err := hex.DecodeString(hashHex)
	if err != nil {
		return Target{}, &InvalidTargetError{TargetID: id, Reason: fmt.Sprintf("malformed hex: %v", err)}
	}

	if want := hashdispatch.DigestSize(algo); want > 0 && len(digest) != want {
		return Target{}, &InvalidTargetError{
			TargetID: id,
			Reason:   fmt.Sprintf("digest length %d does not match %s output length %d", len(digest), algo, want),
		}
	}

	var saltBytes []byte
	if salt != "" {
		saltBytes = []byte(salt)
	}

	return Target{
		ID:        id,
		Username:  username,
		Algorithm: algo,
		Digest:    digest,
		Salt:      saltBytes,
	}, nil
}

// Matches reports whether computed equals this target's expected digest.
func (t Target) Matches(computed []byte) bool {
	return bytes.Equal(computed, t.Digest)
}

// SaltBytes returns the raw salt (empty, non-nil, if unset).
func (t Target) SaltBytes() []byte {
	if t.Salt == nil {
		return []byte{}
	}
	return t.Salt
}

// Match is produced when a candidate's digest equals a target's expected
// digest.
type Match struct {
	TargetID          string
	Username          string
	Password          []byte
	Algorithm         hashdispatch.Algorithm
	GuessesTriedSoFar uint64
	SecondsSinceStart float64
}

// PasswordString renders the matched password as a string, tolerating
// non-UTF-8 bytes the same way the candidate generators may produce them.
func (m Match) PasswordString() string {
	return string(m.Password)
}
