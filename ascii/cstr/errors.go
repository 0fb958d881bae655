package cstr

import (
	"fmt"

	"github.com/mhr3/asciitype/ascii"
)

// ErrorKind tells why bytes could not be used as a C string.
type ErrorKind int

const (
	// InteriorNul means a NUL was found before the end of the data.
	InteriorNul ErrorKind = iota + 1
	// NotNulTerminated means the data does not end in a NUL.
	NotNulTerminated
	// NotASCII means a byte above 127 was found.
	NotASCII
)

func (k ErrorKind) String() string {
	switch k {
	case InteriorNul:
		return "data provided contains an interior nul byte"
	case NotNulTerminated:
		return "data provided is not nul terminated"
	case NotASCII:
		return "data provided contains a non-ascii character"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// NulError reports the position of the first byte that disqualified the
// data. For NotNulTerminated, Pos is the length of the data.
type NulError struct {
	Kind ErrorKind
	Pos  int
}

// ValidUpTo returns the length of the prefix that was accepted.
func (e *NulError) ValidUpTo() int { return e.Pos }

func (e *NulError) Error() string {
	return fmt.Sprintf("cstr: %s (position %d)", e.Kind, e.Pos)
}

// Is makes NotASCII errors match ascii.ErrNotASCII.
func (e *NulError) Is(target error) bool {
	return e.Kind == NotASCII && target == ascii.ErrNotASCII
}

// CStringError is returned by the constructors that take ownership of
// their input. The input is handed back untouched through Source.
type CStringError struct {
	Err    *NulError
	source []byte
}

// Source returns the rejected input.
func (e *CStringError) Source() []byte { return e.source }

func (e *CStringError) Error() string { return e.Err.Error() }

func (e *CStringError) Unwrap() error { return e.Err }
