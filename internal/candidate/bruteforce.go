package candidate

// BruteForceGenerator exhaustively enumerates every string over charset
// with length in [minLen, maxLen], shortest first, odometer order (rightmost
// position varies fastest) within each length.
type BruteForceGenerator struct {
	charset    CharSet
	minLen     int
	maxLen     int
	currentLen int
	current    []int
	exhausted  bool
}

// NewBruteForceGenerator builds a generator over charset for lengths
// [minLen, maxLen] inclusive. If minLen > maxLen the generator is exhausted
// from birth.
func NewBruteForceGenerator(charset CharSet, minLen, maxLen int) *BruteForceGenerator {
	g := &BruteForceGenerator{
		charset:    charset,
		minLen:     minLen,
		maxLen:     maxLen,
		currentLen: minLen,
	}

	if minLen > maxLen || charset.Len() == 0 {
		g.exhausted = true
		return g
	}

	g.current = make([]int, minLen)
	return g
}

// incrementCurrent advances the odometer by one; returns false if it
// overflowed (every position wrapped back to zero).
func (g *BruteForceGenerator) incrementCurrent() bool {
	for i := len(g.current) - 1; i >= 0; i-- {
		g.current[i]++
		if g.current[i] < g.charset.Len() {
			return true
		}
		g.current[i] = 0
	}
	return false
}

// NextBatch implements Generator.
func (g *BruteForceGenerator) NextBatch(size int) (Batch, bool, error) {
	if g.exhausted {
		return nil, false, nil
	}

	batch := make(Batch, 0, size)
	for len(batch) < size {
		if g.currentLen > g.maxLen {
			g.exhausted = true
			break
		}

		candidate := make([]byte, g.currentLen)
		for i, idx := range g.current {
			candidate[i] = g.charset.At(idx)
		}
		batch = append(batch, candidate)

		if !g.incrementCurrent() {
			g.currentLen++
			if g.currentLen <= g.maxLen {
				g.current = make([]int, g.currentLen)
			}
		}
	}

	if len(batch) == 0 {
		return nil, false, nil
	}
	return batch, true, nil
}

// EstimatedSize implements Generator: Σ |charset|^k for k in
// [minLen..=maxLen], saturating at math.MaxUint64.
func (g *BruteForceGenerator) EstimatedSize() (uint64, bool) {
	if g.minLen > g.maxLen {
		return 0, true
	}

	base := uint64(g.charset.Len())
	total := uint64(0)
	for length := g.minLen; length <= g.maxLen; length++ {
		total = saturatingAdd(total, saturatingPow(base, length))
	}
	return total, true
}

// Reset implements Generator.
func (g *BruteForceGenerator) Reset() error {
	g.currentLen = g.minLen
	if g.minLen > g.maxLen || g.charset.Len() == 0 {
		g.exhausted = true
		return nil
	}
	g.current = make([]int, g.minLen)
	g.exhausted = false
	return nil
}
