package ascii

import "math/bits"

// toUpper converts ASCII lowercase to uppercase.
func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 0x20
	}
	return b
}

func indexMaskGo[T string | []byte](s T, mask byte) int {
	mask32 := uint32(mask)
	mask32 |= mask32 << 8
	mask32 |= mask32 << 16

	pos := 0
	// use all go tricks to make this fast
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		_ = s[7]
		first32 := uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
		second32 := uint32(s[4]) | uint32(s[5])<<8 | uint32(s[6])<<16 | uint32(s[7])<<24
		if (first32|second32)&mask32 != 0 {
			first32 &= mask32
			if first32 != 0 {
				return pos + bits.TrailingZeros32(first32)/8
			}
			second32 &= mask32
			return pos + 4 + bits.TrailingZeros32(second32)/8
		}
	}

	for i := 0; i < len(s); i++ {
		b := s[i]
		if b&mask != 0 {
			return pos + i
		}
	}
	return -1
}

func isAsciiGo[T string | []byte](s T) bool {
	return indexMaskGo(s, 0x80) == -1
}

// based on https://graphics.stanford.edu/~seander/bithacks.html#HasBetweenInWord
func hasLowercaseAsciiByte(x uint64) uint64 {
	const mult = ^uint64(0) / 255
	const m, n = 'a' - 1, 'z' + 1

	A := mult * (127 + n)
	B := x & (mult * 127)
	C := ^x
	D := mult * (127 - m)
	return (A - B) & C & (B + D) & (mult * 128)
}

func asciiFoldWord(x uint64) uint64 {
	mask := hasLowercaseAsciiByte(x)
	mask >>= 2
	return x - mask
}

func load64[T string | []byte](s T) uint64 {
	_ = s[7]
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

func equalFoldGo[T string | []byte](a, b T) bool {
	if len(a) != len(b) {
		return false
	}

	for len(a) >= 8 {
		a64, b64 := load64(a), load64(b)
		if a64 != b64 {
			if asciiFoldWord(a64) != asciiFoldWord(b64) {
				return false
			}
		}
		a = a[8:]
		b = b[8:]
	}

	// fold the tail one byte at a time, it is at most 7 bytes
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] && toUpper(a[i]) != toUpper(b[i]) {
			return false
		}
	}
	return true
}

func indexFoldGo[T string | []byte](s T, substr T) int {
	if len(substr) == 0 {
		return 0
	} else if len(substr) > len(s) {
		return -1
	}

	first := substr[0]
	complement := first
	if first >= 'A' && first <= 'Z' {
		complement += 0x20
	} else if first >= 'a' && first <= 'z' {
		complement -= 0x20
	}

	for i := 0; i <= len(s)-len(substr); i++ {
		b := s[i]
		if b == first || b == complement {
			if equalFoldGo(s[i:i+len(substr)], substr) {
				return i
			}
		}
	}
	return -1
}
