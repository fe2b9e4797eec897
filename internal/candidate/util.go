package candidate

import "math"

// saturatingMul multiplies a and b, clamping to math.MaxUint64 on overflow
// instead of wrapping.
func saturatingMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}

// saturatingPow raises base to exp, clamping to math.MaxUint64 on overflow.
func saturatingPow(base uint64, exp int) uint64 {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		result = saturatingMul(result, base)
		if result == math.MaxUint64 {
			return result
		}
	}
	return result
}

// saturatingAdd adds a and b, clamping to math.MaxUint64 on overflow.
func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
