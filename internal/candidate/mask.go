package candidate

import "fmt"

// UnknownMaskClassError is returned when a mask pattern contains "?X" with X
// not one of l/u/d/s.
type UnknownMaskClassError struct {
	Class byte
}

func (e *UnknownMaskClassError) Error() string {
	return fmt.Sprintf("unknown mask class: ?%c", e.Class)
}

// MaskGenerator enumerates the Cartesian product of a mask pattern's
// per-position character classes in odometer order (rightmost position
// varies fastest).
type MaskGenerator struct {
	positions []CharSet
	current   []int
	exhausted bool
}

// ParseMask parses a mask pattern into its ordered sequence of per-position
// CharSets. Each "?c" token selects a built-in class (?d digits, ?l lower,
// ?u upper, ?s symbols); any other byte is a literal held fixed at that
// position.
func ParseMask(mask string) ([]CharSet, error) {
	var positions []CharSet
	bytes := []byte(mask)

	for i := 0; i < len(bytes); i++ {
		if bytes[i] == '?' && i+1 < len(bytes) {
			class := bytes[i+1]
			var cs CharSet
			switch class {
			case 'l':
				cs = Lowercase()
			case 'u':
				cs = Uppercase()
			case 'd':
				cs = Digits()
			case 's':
				cs = Special()
			default:
				return nil, &UnknownMaskClassError{Class: class}
			}
			positions = append(positions, cs)
			i++
		} else {
			positions = append(positions, FromString(string(bytes[i])))
		}
	}

	return positions, nil
}

// NewMaskGenerator parses mask and builds a generator over it.
func NewMaskGenerator(mask string) (*MaskGenerator, error) {
	positions, err := ParseMask(mask)
	if err != nil {
		return nil, err
	}

	return &MaskGenerator{
		positions: positions,
		current:   make([]int, len(positions)),
	}, nil
}

func (m *MaskGenerator) increment() {
	for i := len(m.current) - 1; i >= 0; i-- {
		m.current[i]++
		if m.current[i] < m.positions[i].Len() {
			return
		}
		m.current[i] = 0
	}
	m.exhausted = true
}

// NextBatch implements Generator.
func (m *MaskGenerator) NextBatch(size int) (Batch, bool, error) {
	if m.exhausted || len(m.positions) == 0 {
		return nil, false, nil
	}

	batch := make(Batch, 0, size)
	for len(batch) < size && !m.exhausted {
		candidate := make([]byte, len(m.positions))
		for i, cs := range m.positions {
			candidate[i] = cs.At(m.current[i])
		}
		batch = append(batch, candidate)
		m.increment()
	}

	if len(batch) == 0 {
		return nil, false, nil
	}
	return batch, true, nil
}

// EstimatedSize implements Generator: the product of every position's
// CharSet size, saturating at math.MaxUint64.
func (m *MaskGenerator) EstimatedSize() (uint64, bool) {
	total := uint64(1)
	for _, cs := range m.positions {
		total = saturatingMul(total, uint64(cs.Len()))
	}
	return total, true
}

// Reset implements Generator.
func (m *MaskGenerator) Reset() error {
	m.current = make([]int, len(m.positions))
	m.exhausted = false
	return nil
}
