package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blitzforge/blitzforge/internal/candidate"
	"github.com/blitzforge/blitzforge/internal/engine"
	"github.com/blitzforge/blitzforge/internal/hashdispatch"
	"github.com/blitzforge/blitzforge/internal/target"
)

// newSelftestCmd runs known-answer hash checks, generator sanity checks,
// and a tiny end-to-end crack as a quick install/build sanity check.
func newSelftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run built-in sanity checks against known-answer vectors",
		RunE:  runSelftest,
	}
}

func runSelftest(cmd *cobra.Command, args []string) error {
	fmt.Println("Running BlitzForge self-tests...")

	fmt.Println("\nTest 1: Hash algorithms")
	if err := selftestHashAlgorithms(); err != nil {
		return err
	}
	fmt.Println("   All hash algorithms OK")

	fmt.Println("\nTest 2: Candidate generators")
	if err := selftestGenerators(); err != nil {
		return err
	}
	fmt.Println("   All generators OK")

	fmt.Println("\nTest 3: Simple crack")
	if err := selftestSimpleCrack(); err != nil {
		return err
	}
	fmt.Println("   Engine successfully cracked the test password")

	fmt.Println("\nAll self-tests passed.")
	return nil
}

func selftestHashAlgorithms() error {
	input := []byte("password")

	fastMixDigest := hashdispatch.New(hashdispatch.FastMix).Digest(input)
	if len(fastMixDigest) != 32 {
		return fmt.Errorf("fastmix: expected 32-byte digest, got %d", len(fastMixDigest))
	}
	fmt.Println("   FastMix: OK (custom algorithm)")

	if err := expectDigestHex(hashdispatch.Md5, input, "5f4dcc3b5aa765d61d8327deb882cf99"); err != nil {
		return err
	}
	fmt.Println("   MD5: OK")

	if err := expectDigestHex(hashdispatch.Sha1, input, "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"); err != nil {
		return err
	}
	fmt.Println("   SHA1: OK")

	if err := expectDigestHex(hashdispatch.Sha256, input, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"); err != nil {
		return err
	}
	fmt.Println("   SHA256: OK")

	return nil
}

func expectDigestHex(algo hashdispatch.Algorithm, input []byte, want string) error {
	got := hex.EncodeToString(hashdispatch.New(algo).Digest(input))
	if got != want {
		return fmt.Errorf("%s: expected %s, got %s", algo, want, got)
	}
	return nil
}

func selftestGenerators() error {
	maskGen, err := candidate.NewMaskGenerator("?d?d")
	if err != nil {
		return err
	}
	batch, ok, err := maskGen.NextBatch(5)
	if err != nil {
		return err
	}
	if !ok || len(batch) != 5 {
		return fmt.Errorf("mask generator: expected a 5-candidate batch")
	}
	if string(batch[0]) != "00" || string(batch[1]) != "01" {
		return fmt.Errorf("mask generator: expected candidates 00, 01 first, got %s, %s", batch[0], batch[1])
	}
	fmt.Println("   Mask generator: OK")

	bruteGen := candidate.NewBruteForceGenerator(candidate.FromString("ab"), 2, 2)
	batch, ok, err = bruteGen.NextBatch(10)
	if err != nil {
		return err
	}
	if !ok || len(batch) != 4 {
		return fmt.Errorf("brute force generator: expected 4 candidates (aa, ab, ba, bb)")
	}
	fmt.Println("   Brute force generator: OK")

	return nil
}

func selftestSimpleCrack() error {
	password := []byte("password")
	digest := hashdispatch.New(hashdispatch.FastMix).Digest(password)

	tgt, err := target.New("test", "testuser", hashdispatch.FastMix, hex.EncodeToString(digest), "")
	if err != nil {
		return err
	}

	gen := candidate.NewBruteForceGenerator(candidate.FromString("password"), 8, 8)

	e, err := engine.New([]target.Target{tgt}, gen, 2, 100)
	if err != nil {
		return err
	}

	result, err := e.Run(nil)
	if err != nil {
		return err
	}

	if len(result.Matches) != 1 {
		return fmt.Errorf("expected exactly one match, got %d", len(result.Matches))
	}
	if result.Matches[0].PasswordString() != "password" {
		return fmt.Errorf("expected recovered password %q, got %q", "password", result.Matches[0].PasswordString())
	}

	return nil
}
