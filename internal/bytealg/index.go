// Package bytealg holds the byte-level search primitives shared by the
// ascii views.
package bytealg

import (
	"bytes"
	"strings"
)

// Index finds the first case-sensitive match of needle in haystack.
func Index[T string | []byte](haystack, needle T) int {
	switch h := any(haystack).(type) {
	case string:
		return strings.Index(h, any(needle).(string))
	default:
		return bytes.Index(any(haystack).([]byte), any(needle).([]byte))
	}
}

// IndexByte returns the index of the first c in s, or -1.
func IndexByte(s []byte, c byte) int {
	return bytes.IndexByte(s, c)
}

// LastIndexByte returns the index of the last c in s, or -1.
func LastIndexByte(s []byte, c byte) int {
	return bytes.LastIndexByte(s, c)
}

// Count counts the non-overlapping occurrences of c in s.
func Count(s []byte, c byte) int {
	return bytes.Count(s, []byte{c})
}
