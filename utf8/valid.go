// Package utf8 validates UTF-8 text, skipping over the ASCII prefix with the
// word-at-a-time scan from package ascii.
package utf8

import (
	stdlib "unicode/utf8"

	"github.com/mhr3/asciitype/ascii"
)

// ValidString reports whether s is entirely valid UTF-8.
func ValidString(s string) bool {
	// speed up the common case
	idx := ascii.IndexNonASCII(s)
	if idx == -1 {
		return true
	}

	return stdlib.ValidString(s[idx:])
}

// Valid reports whether b is entirely valid UTF-8.
func Valid(b []byte) bool {
	idx := ascii.IndexNonASCII(b)
	if idx == -1 {
		return true
	}

	return stdlib.Valid(b[idx:])
}
