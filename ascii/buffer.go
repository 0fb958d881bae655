package ascii

import (
	"iter"
	"slices"

	"github.com/mhr3/asciitype/internal/unsafecast"
)

// Buffer is an owned, growable run of ASCII characters.
//
// Every read-only operation is available through View, which shares the
// buffer's memory without copying. A Buffer must not be copied by value
// once used; pass *Buffer around.
//
// Index arguments out of range make Insert, Remove and Truncate panic, the
// same way slice indexing does.
type Buffer struct {
	chars []Char
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// WithCapacity returns an empty Buffer that can hold n characters without
// growing.
func WithCapacity(n int) *Buffer {
	return &Buffer{chars: make([]Char, 0, n)}
}

// FromOwnedBytes validates b and takes ownership of it: the Buffer reuses
// b's backing array, so the caller must stop using b. On failure b is left
// untouched and is available from the returned *FromBytesError.
func FromOwnedBytes(b []byte) (*Buffer, error) {
	if i := IndexNonASCII(b); i >= 0 {
		return nil, &FromBytesError{Err: newByteError(i, b[i]), source: b}
	}
	return &Buffer{chars: unsafecast.Slice[Char](b)}, nil
}

// FromOwnedString validates s and copies it into a new Buffer. Go strings
// are immutable, so their memory cannot be taken over.
func FromOwnedString(s string) (*Buffer, error) {
	v, err := FromString(s)
	if err != nil {
		return nil, err
	}
	return v.Clone(), nil
}

// FromChars returns a Buffer holding a copy of chars.
func FromChars(chars ...Char) *Buffer {
	return &Buffer{chars: slices.Clone(chars)}
}

// View returns the contents of b. The view is valid until the next call
// that grows, shrinks or consumes b.
func (b *Buffer) View() View { return b.chars }

// Bytes returns the contents of b as bytes sharing b's memory. Callers must
// not store bytes above 127 through the returned slice.
func (b *Buffer) Bytes() []byte { return b.View().Bytes() }

// String returns a copy of the contents of b.
func (b *Buffer) String() string { return string(b.Bytes()) }

// IntoBytes hands b's memory over to the caller without copying and leaves
// b empty.
func (b *Buffer) IntoBytes() []byte {
	out := unsafecast.Slice[byte](b.chars)
	b.chars = nil
	return out
}

// IntoString hands b's memory over to the caller as a string without
// copying and leaves b empty.
func (b *Buffer) IntoString() string {
	s := unsafecast.String(b.chars)
	b.chars = nil
	return s
}

// Len returns the number of characters in b.
func (b *Buffer) Len() int { return len(b.chars) }

// IsEmpty reports whether b has no characters.
func (b *Buffer) IsEmpty() bool { return len(b.chars) == 0 }

// Cap returns the number of characters b can hold without growing.
func (b *Buffer) Cap() int { return cap(b.chars) }

// Reserve makes room for at least n more characters. Growth is left to
// append's amortized strategy.
func (b *Buffer) Reserve(n int) {
	if cap(b.chars)-len(b.chars) < n {
		b.chars = slices.Grow(b.chars, n)
	}
}

// ReserveExact makes room for exactly n more characters.
func (b *Buffer) ReserveExact(n int) {
	if cap(b.chars)-len(b.chars) >= n {
		return
	}
	grown := make([]Char, len(b.chars), len(b.chars)+n)
	copy(grown, b.chars)
	b.chars = grown
}

// ShrinkToFit drops unused capacity.
func (b *Buffer) ShrinkToFit() {
	if cap(b.chars) == len(b.chars) {
		return
	}
	shrunk := make([]Char, len(b.chars))
	copy(shrunk, b.chars)
	b.chars = shrunk
}

// Push appends c.
func (b *Buffer) Push(c Char) {
	b.chars = append(b.chars, c)
}

// Pop removes and returns the last character, or false if b is empty.
func (b *Buffer) Pop() (Char, bool) {
	n := len(b.chars)
	if n == 0 {
		return 0, false
	}
	c := b.chars[n-1]
	b.chars = b.chars[:n-1]
	return c, true
}

// Insert inserts c at index i, shifting the tail right. i may equal Len.
func (b *Buffer) Insert(i int, c Char) {
	b.chars = slices.Insert(b.chars, i, c)
}

// InsertView inserts v at index i.
func (b *Buffer) InsertView(i int, v View) {
	b.chars = slices.Insert(b.chars, i, v...)
}

// Remove removes and returns the character at index i.
func (b *Buffer) Remove(i int) Char {
	c := b.chars[i]
	b.chars = slices.Delete(b.chars, i, i+1)
	return c
}

// Truncate shortens b to n characters, keeping its capacity. It panics if
// n is negative or greater than Len.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > len(b.chars) {
		panic("ascii: Buffer.Truncate out of range")
	}
	b.chars = b.chars[:n]
}

// Clear removes every character, keeping the capacity.
func (b *Buffer) Clear() {
	b.chars = b.chars[:0]
}

// PushView appends the characters of v.
func (b *Buffer) PushView(v View) {
	b.chars = append(b.chars, v...)
}

// Extend appends chars, reserving room for all of them first.
func (b *Buffer) Extend(chars ...Char) {
	b.Reserve(len(chars))
	b.chars = append(b.chars, chars...)
}

// ExtendViews appends every view, reserving their total length first.
func (b *Buffer) ExtendViews(views ...View) {
	n := 0
	for _, v := range views {
		n += len(v)
	}
	b.Reserve(n)
	for _, v := range views {
		b.chars = append(b.chars, v...)
	}
}

// ExtendSeq appends every character produced by seq.
func (b *Buffer) ExtendSeq(seq iter.Seq[Char]) {
	for c := range seq {
		b.chars = append(b.chars, c)
	}
}

// Concat appends v and returns b, so that concatenations can be chained.
func (b *Buffer) Concat(v View) *Buffer {
	b.PushView(v)
	return b
}

// WriteString validates s and appends it. Nothing is appended if s is not
// ASCII.
func (b *Buffer) WriteString(s string) (int, error) {
	v, err := FromString(s)
	if err != nil {
		return 0, err
	}
	b.PushView(v)
	return len(s), nil
}

// Write validates p and appends it. Nothing is appended if p is not ASCII.
func (b *Buffer) Write(p []byte) (int, error) {
	v, err := FromBytes(p)
	if err != nil {
		return 0, err
	}
	b.PushView(v)
	return len(p), nil
}

// WriteByte validates c and appends it.
func (b *Buffer) WriteByte(c byte) error {
	ch, err := FromByte(c)
	if err != nil {
		return err
	}
	b.Push(ch)
	return nil
}

// Equal reports whether b and o hold the same characters.
func (b *Buffer) Equal(o *Buffer) bool {
	return b.View().Equal(o.View())
}
