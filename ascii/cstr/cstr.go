// Package cstr holds NUL-terminated ASCII strings for handing text to C
// style APIs.
//
// A CStr borrows bytes that already end in exactly one NUL; a CString owns
// its bytes and keeps the terminator itself. Neither ever contains an
// interior NUL or a byte above 127.
package cstr

import (
	"github.com/mhr3/asciitype/ascii"
	"github.com/mhr3/asciitype/internal/bytealg"
)

// CStr is a borrowed, NUL-terminated ASCII string. The zero value is an
// empty C string.
type CStr struct {
	withNul []byte
}

// FromBytesWithNul checks that b is ASCII and ends in its only NUL, and
// wraps it without copying.
func FromBytesWithNul(b []byte) (CStr, error) {
	if err := checkWithNul(b); err != nil {
		return CStr{}, err
	}
	return CStr{withNul: b}, nil
}

// FromBytesWithNulUnchecked wraps b without checking it. The caller
// guarantees that b is ASCII and that its only NUL is the last byte.
func FromBytesWithNulUnchecked(b []byte) CStr {
	return CStr{withNul: b}
}

func checkWithNul(b []byte) *NulError {
	i := bytealg.IndexByte(b, 0)
	switch {
	case i < 0:
		return &NulError{Kind: NotNulTerminated, Pos: len(b)}
	case i != len(b)-1:
		return &NulError{Kind: InteriorNul, Pos: i}
	}
	if i := ascii.IndexNonASCII(b); i >= 0 {
		return &NulError{Kind: NotASCII, Pos: i}
	}
	return nil
}

// Len returns the number of characters before the NUL.
func (c CStr) Len() int { return max(len(c.withNul)-1, 0) }

// Bytes returns the contents without the terminator.
func (c CStr) Bytes() []byte {
	if len(c.withNul) == 0 {
		return nil
	}
	return c.withNul[:len(c.withNul)-1]
}

// BytesWithNul returns the contents including the terminator.
func (c CStr) BytesWithNul() []byte {
	if len(c.withNul) == 0 {
		return []byte{0}
	}
	return c.withNul
}

// View returns the contents without the terminator as an ascii.View.
func (c CStr) View() ascii.View { return ascii.FromBytesUnchecked(c.Bytes()) }

// String returns a copy of the contents without the terminator.
func (c CStr) String() string { return string(c.Bytes()) }

// Clone copies c into a new CString.
func (c CStr) Clone() *CString {
	return &CString{withNul: append([]byte(nil), c.BytesWithNul()...)}
}
