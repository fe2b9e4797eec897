package candidate

// CharSet is an ordered sequence of bytes used by the mask and brute-force
// generators.
type CharSet struct {
	Bytes []byte
}

// Len returns the number of bytes in the set.
func (c CharSet) Len() int { return len(c.Bytes) }

// At returns the byte at the given odometer index.
func (c CharSet) At(i int) byte { return c.Bytes[i] }

// Lowercase returns a-z.
func Lowercase() CharSet {
	return rangeCharSet('a', 'z')
}

// Uppercase returns A-Z.
func Uppercase() CharSet {
	return rangeCharSet('A', 'Z')
}

// Digits returns 0-9.
func Digits() CharSet {
	return rangeCharSet('0', '9')
}

// Special returns the fixed special-character set used by the "?s" mask
// class.
func Special() CharSet {
	return FromString(`!@#$%^&*()_+-=[]{}|;:,.<>?`)
}

// FromString builds a CharSet from an explicit byte string, preserving
// order and duplicates (a literal mask position is a one-byte CharSet built
// this way).
func FromString(s string) CharSet {
	return CharSet{Bytes: []byte(s)}
}

func rangeCharSet(lo, hi byte) CharSet {
	bytes := make([]byte, 0, int(hi-lo)+1)
	for b := lo; b <= hi; b++ {
		bytes = append(bytes, b)
	}
	return CharSet{Bytes: bytes}
}
