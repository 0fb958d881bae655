package ascii

import (
	"bytes"
	"unicode/utf8"
)

const (
	expectChar   = "an ascii character"
	expectString = "an ascii string"
)

// MarshalText encodes c as a one-character string.
func (c Char) MarshalText() ([]byte, error) {
	return []byte{byte(c)}, nil
}

// UnmarshalText decodes a string holding exactly one ASCII character.
func (c *Char) UnmarshalText(text []byte) error {
	r, size := utf8.DecodeRune(text)
	if len(text) == 0 || size != len(text) {
		return &DecodeError{Value: string(text), Expected: expectChar, Err: ErrNotSingleChar}
	}
	if r == utf8.RuneError && size == 1 {
		return &DecodeError{Value: string(text), Expected: expectChar, Err: &RangeError{Value: rune(text[0])}}
	}
	ch, err := FromRune(r)
	if err != nil {
		return &DecodeError{Value: string(text), Expected: expectChar, Err: err}
	}
	*c = ch
	return nil
}

// MarshalText encodes v as its bytes.
func (v View) MarshalText() ([]byte, error) {
	return v.Bytes(), nil
}

// UnmarshalText validates text and stores a copy of it in v.
func (v *View) UnmarshalText(text []byte) error {
	buf, err := decodeText(text)
	if err != nil {
		return err
	}
	*v = FromBytesUnchecked(buf)
	return nil
}

// MarshalText encodes the contents of b.
func (b *Buffer) MarshalText() ([]byte, error) {
	return b.View().MarshalText()
}

// UnmarshalText validates text and replaces the contents of b with a copy
// of it.
func (b *Buffer) UnmarshalText(text []byte) error {
	buf, err := decodeText(text)
	if err != nil {
		return err
	}
	b.chars = FromBytesUnchecked(buf)
	return nil
}

func decodeText(text []byte) ([]byte, error) {
	buf := bytes.Clone(text)
	if i := IndexNonASCII(buf); i >= 0 {
		s := string(buf)
		return nil, &DecodeError{Value: s, Expected: expectString, Err: newTextError(s, i)}
	}
	if buf == nil {
		buf = []byte{}
	}
	return buf, nil
}
