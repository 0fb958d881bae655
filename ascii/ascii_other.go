//go:build !amd64

package ascii

// ValidString reports whether every byte of s is ASCII.
func ValidString(s string) bool {
	return isAsciiGo(s)
}

// Valid reports whether every byte of b is ASCII.
func Valid(b []byte) bool {
	return isAsciiGo(b)
}

// IndexMask returns the index of the first byte of s that has any bit of
// mask set, or -1.
func IndexMask(s string, mask byte) int {
	return indexMaskGo(s, mask)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	return equalFoldGo(a, b)
}

func equalFoldBytes(a, b []byte) bool {
	return equalFoldGo(a, b)
}

// IndexFold returns the index of the first case-insensitive match of b in
// a, or -1.
func IndexFold(a, b string) int {
	return indexFoldGo(a, b)
}
