package cstr

import (
	"github.com/mhr3/asciitype/ascii"
	"github.com/mhr3/asciitype/internal/bytealg"
)

// CString is an owned, NUL-terminated ASCII string.
type CString struct {
	withNul []byte
}

// New takes ownership of b, checks it and appends the terminator. b must
// hold neither a NUL nor a byte above 127. On failure b is returned
// untouched through the *CStringError.
func New(b []byte) (*CString, error) {
	if err := checkWithoutNul(b); err != nil {
		return nil, &CStringError{Err: err, source: b}
	}
	return &CString{withNul: append(b, 0)}, nil
}

// FromString copies s into a new CString.
func FromString(s string) (*CString, error) {
	b := make([]byte, len(s), len(s)+1)
	copy(b, s)
	if err := checkWithoutNul(b); err != nil {
		return nil, err
	}
	return &CString{withNul: append(b, 0)}, nil
}

// FromBuffer moves the contents of buf into a new CString, leaving buf
// empty. buf is left untouched if it holds a NUL.
func FromBuffer(buf *ascii.Buffer) (*CString, error) {
	if i := buf.View().IndexChar(ascii.Null); i >= 0 {
		return nil, &NulError{Kind: InteriorNul, Pos: i}
	}
	buf.Reserve(1)
	buf.Push(ascii.Null)
	return &CString{withNul: buf.IntoBytes()}, nil
}

func checkWithoutNul(b []byte) *NulError {
	if i := bytealg.IndexByte(b, 0); i >= 0 {
		return &NulError{Kind: InteriorNul, Pos: i}
	}
	if i := ascii.IndexNonASCII(b); i >= 0 {
		return &NulError{Kind: NotASCII, Pos: i}
	}
	return nil
}

// CStr borrows c.
func (c *CString) CStr() CStr { return CStr{withNul: c.withNul} }

// Len returns the number of characters before the NUL.
func (c *CString) Len() int { return c.CStr().Len() }

// Bytes returns the contents without the terminator.
func (c *CString) Bytes() []byte { return c.CStr().Bytes() }

// BytesWithNul returns the contents including the terminator.
func (c *CString) BytesWithNul() []byte { return c.CStr().BytesWithNul() }

// View returns the contents without the terminator.
func (c *CString) View() ascii.View { return c.CStr().View() }

// String returns a copy of the contents without the terminator.
func (c *CString) String() string { return c.CStr().String() }

// IntoBytes hands over the contents without the terminator and leaves c
// empty.
func (c *CString) IntoBytes() []byte {
	b := c.Bytes()
	c.withNul = []byte{0}
	return b
}

// IntoBytesWithNul hands over the contents including the terminator and
// leaves c empty.
func (c *CString) IntoBytesWithNul() []byte {
	b := c.withNul
	c.withNul = []byte{0}
	return b
}

// IntoBuffer moves the contents without the terminator into an
// ascii.Buffer and leaves c empty.
func (c *CString) IntoBuffer() *ascii.Buffer {
	// contents were checked on construction
	buf, _ := ascii.FromOwnedBytes(c.IntoBytes())
	return buf
}
