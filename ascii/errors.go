package ascii

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrNotASCII is matched by every error reporting a value outside 0..127.
	ErrNotASCII = errors.New("ascii: not an ASCII character")

	// ErrNotSingleChar is reported when a decoded value should hold exactly
	// one character but does not.
	ErrNotSingleChar = errors.New("ascii: not a single character")
)

// RangeError reports a byte or rune that cannot be represented as a Char.
type RangeError struct {
	Value rune
}

func (e *RangeError) Error() string {
	if e.Value >= 0 && e.Value <= 0xFF {
		return fmt.Sprintf("ascii: value 0x%02x is not ASCII", e.Value)
	}
	return fmt.Sprintf("ascii: character %U is not ASCII", e.Value)
}

func (e *RangeError) Is(target error) bool { return target == ErrNotASCII }

// ValidationError reports where a byte or text buffer stopped being ASCII.
//
// Offset is the byte offset of the first invalid byte; everything before it
// is valid ASCII. When the input was text, the error also records the
// character that starts at Offset, so that a stray high byte can be told
// apart from a multi-byte character.
type ValidationError struct {
	Offset int
	Byte   byte

	char    rune
	hasChar bool
}

func newByteError(offset int, b byte) *ValidationError {
	return &ValidationError{Offset: offset, Byte: b}
}

// newTextError decodes the character at offset. An invalid encoding leaves
// the error with only the raw byte.
func newTextError(s string, offset int) *ValidationError {
	e := newByteError(offset, s[offset])
	r, size := utf8.DecodeRuneInString(s[offset:])
	if r != utf8.RuneError || size > 1 {
		e.char, e.hasChar = r, true
	}
	return e
}

// ValidUpTo returns the length of the valid prefix.
func (e *ValidationError) ValidUpTo() int { return e.Offset }

// Char returns the character that starts at Offset and true, or false when
// the input was raw bytes or the text was not well-formed there.
func (e *ValidationError) Char() (rune, bool) { return e.char, e.hasChar }

func (e *ValidationError) Error() string {
	if e.hasChar {
		return fmt.Sprintf("ascii: character %q (%U) at offset %d is not ASCII", e.char, e.char, e.Offset)
	}
	return fmt.Sprintf("ascii: byte 0x%02x at offset %d is not ASCII", e.Byte, e.Offset)
}

func (e *ValidationError) Is(target error) bool { return target == ErrNotASCII }

// FromBytesError is returned when an owned byte slice could not be turned
// into a Buffer. The slice is handed back untouched.
type FromBytesError struct {
	Err    *ValidationError
	source []byte
}

// Source returns the slice that was rejected.
func (e *FromBytesError) Source() []byte { return e.source }

func (e *FromBytesError) Error() string { return e.Err.Error() }

func (e *FromBytesError) Unwrap() error { return e.Err }

// DecodeError is returned by the text, YAML and msgpack decoders.
type DecodeError struct {
	Value    string
	Expected string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ascii: invalid value %q, expected %s: %v", e.Value, e.Expected, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
