package ascii

import "fmt"

// CaretEncode returns the character that follows '^' in the caret notation
// of c: '@' for Null, 'A' for SOH, ..., '_' for US and '?' for DEL. It
// returns false for characters that have no caret form.
func CaretEncode(c Char) (Char, bool) {
	e := c ^ 0x40
	if e >= Question && e <= Underscore {
		return e, true
	}
	return 0, false
}

// CaretDecode is the inverse of CaretEncode: it maps '?'..'_' back to the
// control character they stand for.
func CaretDecode(c Char) (Char, bool) {
	if c >= Question && c <= Underscore {
		return c ^ 0x40, true
	}
	return 0, false
}

// caretLiteral follows '^' to stand for a literal caret. It is outside
// '?'..'_' so it cannot be confused with a control character.
const caretLiteral = Exclamation

// CaretEncodeView writes v in caret notation. Control characters become
// '^' followed by their CaretEncode partner, a literal '^' becomes "^!",
// every other character is copied.
func CaretEncodeView(v View) *Buffer {
	b := WithCapacity(len(v))
	for _, c := range v {
		switch {
		case c == Caret:
			b.Extend(Caret, caretLiteral)
		case c.IsControl():
			e, _ := CaretEncode(c)
			b.Extend(Caret, e)
		default:
			b.Push(c)
		}
	}
	return b
}

// CaretDecodeView reverses CaretEncodeView. A '^' that ends the input or is
// followed by anything other than '!' or '?'..'_' is reported as a
// *CaretError.
func CaretDecodeView(v View) (*Buffer, error) {
	b := WithCapacity(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != Caret {
			b.Push(c)
			continue
		}
		if i+1 == len(v) {
			return nil, &CaretError{Offset: i, Dangling: true}
		}
		i++
		next := v[i]
		if next == caretLiteral {
			b.Push(Caret)
			continue
		}
		d, ok := CaretDecode(next)
		if !ok {
			return nil, &CaretError{Offset: i - 1, Escape: next}
		}
		b.Push(d)
	}
	return b, nil
}

// CaretError reports a malformed escape found by CaretDecodeView.
type CaretError struct {
	// Offset of the '^' that starts the bad escape.
	Offset   int
	Escape   Char
	Dangling bool
}

func (e *CaretError) Error() string {
	if e.Dangling {
		return fmt.Sprintf("ascii: dangling '^' at offset %d", e.Offset)
	}
	return fmt.Sprintf("ascii: invalid caret escape %q at offset %d", "^"+e.Escape.String(), e.Offset)
}
