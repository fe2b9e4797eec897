// Package tools synthesizes demo target manifests from known passwords, for
// exercising the engine without a real leaked-hash corpus on hand. Target
// IDs are google/uuid values, and golang.org/x/sync/errgroup hashes each
// password concurrently across every requested algorithm.
package tools

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/blitzforge/blitzforge/internal/hashdispatch"
	"github.com/blitzforge/blitzforge/internal/target"
)

// saltedFraction is the probability a demo target gets a synthetic salt.
const saltedFraction = 0.3

// GenerateDemoTargets builds one target per (password, algorithm) pair.
// Roughly saltedFraction of targets are salted with a per-password synthetic
// salt; the rest are unsalted. Hashing for distinct passwords runs
// concurrently via an errgroup, each goroutine owning its own slice of the
// output so no locking is needed on the hot hash path.
func GenerateDemoTargets(ctx context.Context, passwords []string, algorithms []hashdispatch.Algorithm) ([]target.Target, error) {
	results := make([][]target.Target, len(passwords))

	g, ctx := errgroup.WithContext(ctx)
	for idx, password := range passwords {
		idx, password := idx, password
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			perPassword := make([]target.Target, 0, len(algorithms))
			useSalt := rand.Float64() < saltedFraction
			salt := ""
			if useSalt {
				salt = fmt.Sprintf("salt%d", idx)
			}

			for _, algo := range algorithms {
				hasher := hashdispatch.New(algo)

				var digest []byte
				if salt != "" {
					digest = hasher.DigestSalted([]byte(password), []byte(salt))
				} else {
					digest = hasher.Digest([]byte(password))
				}

				id := uuid.NewString()
				tgt, err := target.New(id, fmt.Sprintf("user%d", idx), algo, hex.EncodeToString(digest), salt)
				if err != nil {
					return fmt.Errorf("synthesizing demo target for password index %d: %w", idx, err)
				}
				perPassword = append(perPassword, tgt)
			}

			results[idx] = perPassword
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var targets []target.Target
	for _, perPassword := range results {
		targets = append(targets, perPassword...)
	}
	return targets, nil
}
