package ascii

// CharSet represents a precomputed character set for fast IndexAny lookups.
// Build once with MakeCharSet, then reuse.
type CharSet struct {
	bitset [4]uint64
}

// MakeCharSet creates a CharSet from the given characters.
func MakeCharSet(chars string) CharSet {
	var cs CharSet
	for i := 0; i < len(chars); i++ {
		cs.add(chars[i])
	}
	return cs
}

// CharSetOf creates a CharSet holding every c in chars.
func CharSetOf(chars ...Char) CharSet {
	var cs CharSet
	for _, c := range chars {
		cs.add(byte(c))
	}
	return cs
}

func (cs *CharSet) add(c byte) {
	cs.bitset[c>>6] |= 1 << (c & 63)
}

// Contains reports whether c is in the set.
func (cs CharSet) Contains(c Char) bool {
	return cs.bitset[c>>6]&(1<<(c&63)) != 0
}

// IndexAny returns the index of the first byte in s that is in the CharSet,
// or -1 if no such byte exists.
func (cs CharSet) IndexAny(s string) int {
	if cs.bitset == [4]uint64{} {
		return -1
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if cs.bitset[c>>6]&(1<<(c&63)) != 0 {
			return i
		}
	}
	return -1
}

// ContainsAny reports whether any byte in s is in the CharSet.
func (cs CharSet) ContainsAny(s string) bool {
	return cs.IndexAny(s) >= 0
}
