package hashdispatch

import "encoding/binary"

// fastMix is BlitzForge's repository-defined non-cryptographic mixing
// function. It is deterministic and stable (same input always produces the
// same 32-byte output, on any run or platform) but makes no collision-
// resistance claim whatsoever: it exists purely as a cheap, fast algorithm
// for benchmarking and self-test, not a security primitive.
//
// It runs four 64-bit lanes seeded from distinct odd constants, absorbs the
// input eight bytes at a time with a multiply/rotate/xor round (the same
// family of operations xxhash and FNV use), and finishes with an avalanche
// step per lane before serialising all four lanes little-endian.
const (
	fastMixPrime1 = 0x9E3779B185EBCA87
	fastMixPrime2 = 0xC2B2AE3D27D4EB4F
	fastMixPrime3 = 0x165667B19E3779F9
	fastMixPrime4 = 0x27D4EB2F165667C5
)

func fastMix(seed uint64, input []byte) [32]byte {
	lanes := [4]uint64{
		seed ^ fastMixPrime1,
		seed + fastMixPrime2,
		seed ^ fastMixPrime3,
		seed + fastMixPrime4,
	}

	buf := input
	lane := 0
	for len(buf) >= 8 {
		word := binary.LittleEndian.Uint64(buf[:8])
		lanes[lane] = mixRound(lanes[lane], word)
		buf = buf[8:]
		lane = (lane + 1) % 4
	}

	if len(buf) > 0 {
		var tail [8]byte
		copy(tail[:], buf)
		word := binary.LittleEndian.Uint64(tail[:])
		lanes[lane] = mixRound(lanes[lane], word)
	}

	// fold the input length into every lane so that inputs differing only
	// in trailing zero bytes ("a" vs "a\x00"), whose zero-padded tail words
	// are identical, never collide trivially
	length := uint64(len(input))
	for i := range lanes {
		lanes[i] = mixRound(lanes[i], length)
		lanes[i] = avalanche(lanes[i])
	}

	var out [32]byte
	for i, l := range lanes {
		binary.LittleEndian.PutUint64(out[i*8:(i+1)*8], l)
	}
	return out
}

func mixRound(acc, input uint64) uint64 {
	acc ^= input * fastMixPrime1
	acc = rotl64(acc, 31)
	acc *= fastMixPrime2
	return acc
}

func avalanche(x uint64) uint64 {
	x ^= x >> 33
	x *= fastMixPrime3
	x ^= x >> 29
	x *= fastMixPrime4
	x ^= x >> 32
	return x
}

func rotl64(x uint64, r uint) uint64 {
	return (x << r) | (x >> (64 - r))
}
