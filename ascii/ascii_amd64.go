package ascii

import (
	segAscii "github.com/segmentio/asm/ascii"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

// ValidString reports whether every byte of s is ASCII.
func ValidString(s string) bool {
	if hasAVX2 {
		return segAscii.ValidString(s)
	}
	return isAsciiGo(s)
}

// Valid reports whether every byte of b is ASCII.
func Valid(b []byte) bool {
	if hasAVX2 {
		return segAscii.Valid(b)
	}
	return isAsciiGo(b)
}

// IndexMask returns the index of the first byte of s that has any bit of
// mask set, or -1.
func IndexMask(s string, mask byte) int {
	return indexMaskGo(s, mask)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	if len(a) < 32 || !hasAVX2 {
		return equalFoldGo(a, b)
	}
	return segAscii.EqualFoldString(a, b)
}

func equalFoldBytes(a, b []byte) bool {
	if len(a) < 32 || !hasAVX2 {
		return equalFoldGo(a, b)
	}
	return segAscii.EqualFold(a, b)
}

// IndexFold returns the index of the first case-insensitive match of b in
// a, or -1.
func IndexFold(a, b string) int {
	// TODO: route long haystacks through segmentio's fold kernels once they
	// expose an index primitive.
	return indexFoldGo(a, b)
}
