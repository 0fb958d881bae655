package ascii

// Char is a single ASCII character. Its value is always in 0..127.
//
// The zero value is Null. Char has the same layout as a byte, which is what
// lets View and Buffer share memory with []byte and string.
type Char byte

// Control characters and the printable characters the package refers to by
// name. Printable letters and digits are written as literals, e.g. Char('a').
const (
	Null           Char = 0x00
	SOH            Char = 0x01
	STX            Char = 0x02
	ETX            Char = 0x03
	EOT            Char = 0x04
	ENQ            Char = 0x05
	ACK            Char = 0x06
	Bell           Char = 0x07
	Backspace      Char = 0x08
	Tab            Char = 0x09
	LineFeed       Char = 0x0A
	VT             Char = 0x0B
	FormFeed       Char = 0x0C
	CarriageReturn Char = 0x0D
	SO             Char = 0x0E
	SI             Char = 0x0F
	DLE            Char = 0x10
	DC1            Char = 0x11
	DC2            Char = 0x12
	DC3            Char = 0x13
	DC4            Char = 0x14
	NAK            Char = 0x15
	SYN            Char = 0x16
	ETB            Char = 0x17
	CAN            Char = 0x18
	EM             Char = 0x19
	SUB            Char = 0x1A
	ESC            Char = 0x1B
	FS             Char = 0x1C
	GS             Char = 0x1D
	RS             Char = 0x1E
	US             Char = 0x1F
	Space          Char = 0x20
	Exclamation    Char = 0x21
	Comma          Char = 0x2C
	Question       Char = 0x3F
	At             Char = 0x40
	Caret          Char = 0x5E
	Underscore     Char = 0x5F
	VerticalBar    Char = 0x7C
	DEL            Char = 0x7F

	// MaxChar is the largest valid Char.
	MaxChar = DEL
)

// FromByte returns b as a Char, or a *RangeError if b > 127.
func FromByte(b byte) (Char, error) {
	if b > byte(MaxChar) {
		return 0, &RangeError{Value: rune(b)}
	}
	return Char(b), nil
}

// FromRune returns r as a Char, or a *RangeError if r is outside 0..127.
// Negative runes are out of range as well.
func FromRune(r rune) (Char, error) {
	if uint32(r) > uint32(MaxChar) {
		return 0, &RangeError{Value: r}
	}
	return Char(r), nil
}

// FromByteUnchecked converts b without a range check.
//
// The caller must guarantee b <= 127, typically because b has already been
// through a bulk scan. Passing a larger byte produces a Char that breaks
// every guarantee made by this package.
func FromByteUnchecked(b byte) Char {
	return Char(b)
}

// MustFromByte is like FromByte but panics on an out-of-range byte. It is
// meant for constants and tests.
func MustFromByte(b byte) Char {
	c, err := FromByte(b)
	if err != nil {
		panic(err)
	}
	return c
}

// Byte returns c as a byte.
func (c Char) Byte() byte { return byte(c) }

// Rune returns c as a rune.
func (c Char) Rune() rune { return rune(c) }

// String returns c as a one-byte string.
func (c Char) String() string { return string(rune(c)) }

// the following predicates follow the C-locale ctype table; the range tests
// rely on byte wraparound so that a single unsigned compare covers them.

// IsAlphabetic reports whether c is in A-Z or a-z.
func (c Char) IsAlphabetic() bool {
	return (byte(c)|0x20)-'a' < 26
}

// IsDigit reports whether c is in 0-9.
func (c Char) IsDigit() bool {
	return byte(c)-'0' < 10
}

// IsAlphanumeric reports whether c is a letter or a digit.
func (c Char) IsAlphanumeric() bool {
	return c.IsAlphabetic() || c.IsDigit()
}

// IsBlank reports whether c is a space or a horizontal tab.
func (c Char) IsBlank() bool {
	return c == Space || c == Tab
}

// IsWhitespace reports whether c is blank, a line feed or a carriage return.
func (c Char) IsWhitespace() bool {
	return c.IsBlank() || c == LineFeed || c == CarriageReturn
}

// IsControl reports whether c is below 0x20 or is DEL.
func (c Char) IsControl() bool {
	return c < Space || c == DEL
}

// IsGraph reports whether c is printable and not a space (0x21..0x7E).
func (c Char) IsGraph() bool {
	return byte(c)-0x21 < 0x5E
}

// IsPrint reports whether c is printable, space included (0x20..0x7E).
func (c Char) IsPrint() bool {
	return byte(c)-0x20 < 0x5F
}

// IsLowercase reports whether c is in a-z.
func (c Char) IsLowercase() bool {
	return byte(c)-'a' < 26
}

// IsUppercase reports whether c is in A-Z.
func (c Char) IsUppercase() bool {
	return byte(c)-'A' < 26
}

// IsPunctuation reports whether c is graphic but not alphanumeric.
func (c Char) IsPunctuation() bool {
	return c.IsGraph() && !c.IsAlphanumeric()
}

// IsHexDigit reports whether c is in 0-9, a-f or A-F.
func (c Char) IsHexDigit() bool {
	return c.IsDigit() || (byte(c)|0x20)-'a' < 6
}

// ToUpper returns the uppercase form of c; non-letters are returned as is.
func (c Char) ToUpper() Char {
	if c.IsLowercase() {
		return c ^ 0x20
	}
	return c
}

// ToLower returns the lowercase form of c; non-letters are returned as is.
func (c Char) ToLower() Char {
	if c.IsUppercase() {
		return c ^ 0x20
	}
	return c
}

// MakeUpper converts c to uppercase in place.
func (c *Char) MakeUpper() { *c = c.ToUpper() }

// MakeLower converts c to lowercase in place.
func (c *Char) MakeLower() { *c = c.ToLower() }

// EqualFold reports whether c and o are equal ignoring ASCII case.
func (c Char) EqualFold(o Char) bool {
	return c.ToLower() == o.ToLower()
}
