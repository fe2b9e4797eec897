package hashdispatch

import (
	"crypto/md5"
	"crypto/sha1"

	"golang.org/x/crypto/md4"

	sha256simd "github.com/minio/sha256-simd"
)

// Hasher is a pure, stateless capability: digest and digest_salted over an
// algorithm. A value returned by New has no interior mutable state and is
// safe to share across concurrently running workers.
type Hasher interface {
	Digest(input []byte) []byte
	DigestSalted(password, salt []byte) []byte
	Algorithm() Algorithm
}

// New returns a Hasher for the given algorithm. Every variant is a stateless
// value type; none carry per-call mutable buffers, so a single Hasher may be
// shared across every worker in a batch.
func New(a Algorithm) Hasher {
	switch a {
	case FastMix:
		return fastMixHasher{}
	case Md5:
		return md5Hasher{}
	case Sha1:
		return sha1Hasher{}
	case Sha256:
		return sha256Hasher{}
	case Md4:
		return md4Hasher{}
	default:
		return unknownHasher{algo: a}
	}
}

type fastMixHasher struct{}

func (fastMixHasher) Digest(input []byte) []byte {
	d := fastMix(0, input)
	return d[:]
}

func (fastMixHasher) DigestSalted(password, salt []byte) []byte {
	combined := make([]byte, 0, len(salt)+len(password))
	combined = append(combined, salt...)
	combined = append(combined, password...)
	d := fastMix(0, combined)
	return d[:]
}

func (fastMixHasher) Algorithm() Algorithm { return FastMix }

type md5Hasher struct{}

func (md5Hasher) Digest(input []byte) []byte {
	sum := md5.Sum(input)
	return sum[:]
}

func (md5Hasher) DigestSalted(password, salt []byte) []byte {
	h := md5.New()
	h.Write(salt)
	h.Write(password)
	return h.Sum(nil)
}

func (md5Hasher) Algorithm() Algorithm { return Md5 }

type sha1Hasher struct{}

func (sha1Hasher) Digest(input []byte) []byte {
	sum := sha1.Sum(input)
	return sum[:]
}

func (sha1Hasher) DigestSalted(password, salt []byte) []byte {
	h := sha1.New()
	h.Write(salt)
	h.Write(password)
	return h.Sum(nil)
}

func (sha1Hasher) Algorithm() Algorithm { return Sha1 }

// sha256Hasher uses minio/sha256-simd, a SIMD-accelerated, drop-in
// replacement for crypto/sha256 that auto-detects AVX2/AVX/SSE/NEON at
// runtime and falls back to the portable implementation otherwise.
type sha256Hasher struct{}

func (sha256Hasher) Digest(input []byte) []byte {
	sum := sha256simd.Sum256(input)
	return sum[:]
}

func (sha256Hasher) DigestSalted(password, salt []byte) []byte {
	h := sha256simd.New()
	h.Write(salt)
	h.Write(password)
	return h.Sum(nil)
}

func (sha256Hasher) Algorithm() Algorithm { return Sha256 }

// md4Hasher backs the Md4 variant with golang.org/x/crypto/md4, a real MD4
// implementation (NTLM hashes are MD4 over UTF-16LE password bytes upstream
// of this package; this package only computes the MD4 digest itself).
type md4Hasher struct{}

func (md4Hasher) Digest(input []byte) []byte {
	h := md4.New()
	h.Write(input)
	return h.Sum(nil)
}

func (md4Hasher) DigestSalted(password, salt []byte) []byte {
	h := md4.New()
	h.Write(salt)
	h.Write(password)
	return h.Sum(nil)
}

func (md4Hasher) Algorithm() Algorithm { return Md4 }

// unknownHasher backs a target bucket whose algorithm tag didn't parse to a
// known Algorithm. Its bucket is still grouped and processed, but since it
// never computes a real digest it never matches anything.
type unknownHasher struct{ algo Algorithm }

func (u unknownHasher) Digest([]byte) []byte               { return nil }
func (u unknownHasher) DigestSalted([]byte, []byte) []byte { return nil }
func (u unknownHasher) Algorithm() Algorithm               { return u.algo }
