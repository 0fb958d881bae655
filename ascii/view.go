package ascii

import (
	"bytes"
	"iter"

	"github.com/mhr3/asciitype/internal/bytealg"
	"github.com/mhr3/asciitype/internal/unsafecast"
)

// View is a borrowed run of ASCII characters.
//
// A View never owns its memory: it is a reinterpretation of a []byte, a
// string or a Buffer that has already been validated. Being a slice type it
// supports len, indexing, ranging and re-slicing (v[i:j], v[i:], v[:j])
// directly; none of those copy or re-validate. Out-of-range indices panic
// exactly like any other Go slice.
//
// Views created from a Go string alias immutable memory. Writing through
// such a view (MakeUpper, MakeLower, CharsMut, v[i] = c) is not allowed.
// Any number of views may read the same memory at once; a writer needs
// exclusive access to the range it touches.
type View []Char

// FromBytes validates b and returns it as a View sharing the same memory.
// On failure the returned *ValidationError holds the offset of the first
// byte above 127.
func FromBytes(b []byte) (View, error) {
	if i := IndexNonASCII(b); i >= 0 {
		return nil, newByteError(i, b[i])
	}
	return FromBytesUnchecked(b), nil
}

// FromString validates s and returns it as a View sharing the same memory.
// On failure the *ValidationError also carries the character decoded at
// the failing offset.
func FromString(s string) (View, error) {
	if i := IndexNonASCII(s); i >= 0 {
		return nil, newTextError(s, i)
	}
	return FromStringUnchecked(s), nil
}

// FromBytesUnchecked reinterprets b as a View without scanning it. The
// caller guarantees that b is ASCII.
func FromBytesUnchecked(b []byte) View {
	return unsafecast.Slice[Char](b)
}

// FromStringUnchecked reinterprets s as a View without scanning it. The
// caller guarantees that s is ASCII.
func FromStringUnchecked(s string) View {
	return unsafecast.FromString[Char](s)
}

// MustFromString is like FromString but panics on invalid input. It is
// meant for literals.
func MustFromString(s string) View {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Bytes returns v as a byte slice sharing the same memory. It never fails:
// ASCII bytes are valid in any superset encoding. Callers must not store
// bytes above 127 through the returned slice.
func (v View) Bytes() []byte {
	return unsafecast.Slice[byte](v)
}

// String returns v as a string sharing the same memory. The string is only
// immutable for as long as nothing writes to v.
func (v View) String() string {
	return unsafecast.String(v)
}

// Len returns the number of characters in v.
func (v View) Len() int { return len(v) }

// IsEmpty reports whether v has no characters.
func (v View) IsEmpty() bool { return len(v) == 0 }

// At returns the character at index i. It panics if i is out of range.
func (v View) At(i int) Char { return v[i] }

// Slice returns v[lo:hi]. It panics if the range is out of bounds.
func (v View) Slice(lo, hi int) View { return v[lo:hi] }

// SliceInclusive returns the characters from lo through hi, both included.
func (v View) SliceInclusive(lo, hi int) View { return v[lo : hi+1] }

// First returns the first character, or false for an empty view.
func (v View) First() (Char, bool) {
	if len(v) == 0 {
		return 0, false
	}
	return v[0], true
}

// Last returns the last character, or false for an empty view.
func (v View) Last() (Char, bool) {
	if len(v) == 0 {
		return 0, false
	}
	return v[len(v)-1], true
}

// Chars returns the characters of v front to back. The sequence can be
// ranged over any number of times.
func (v View) Chars() iter.Seq[Char] {
	return func(yield func(Char) bool) {
		for _, c := range v {
			if !yield(c) {
				return
			}
		}
	}
}

// All returns index/character pairs front to back.
func (v View) All() iter.Seq2[int, Char] {
	return func(yield func(int, Char) bool) {
		for i, c := range v {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward returns index/character pairs back to front.
func (v View) Backward() iter.Seq2[int, Char] {
	return func(yield func(int, Char) bool) {
		for i := len(v) - 1; i >= 0; i-- {
			if !yield(i, v[i]) {
				return
			}
		}
	}
}

// CharsMut yields a pointer to every character of v so that it can be
// replaced in place. v must not be backed by a string.
func (v View) CharsMut() iter.Seq[*Char] {
	return func(yield func(*Char) bool) {
		for i := range v {
			if !yield(&v[i]) {
				return
			}
		}
	}
}

// TrimStart returns v without its leading whitespace.
func (v View) TrimStart() View {
	n := 0
	for _, c := range v {
		if !c.IsWhitespace() {
			break
		}
		n++
	}
	return v[n:]
}

// TrimEnd returns v without its trailing whitespace.
func (v View) TrimEnd() View {
	n := 0
	for _, c := range v.Backward() {
		if !c.IsWhitespace() {
			break
		}
		n++
	}
	return v[:len(v)-n]
}

// Trim returns v without leading and trailing whitespace.
func (v View) Trim() View {
	return v.TrimStart().TrimEnd()
}

// TrimFunc returns v without the leading and trailing characters for which
// f returns true.
func (v View) TrimFunc(f func(Char) bool) View {
	lo, hi := 0, len(v)
	for lo < hi && f(v[lo]) {
		lo++
	}
	for hi > lo && f(v[hi-1]) {
		hi--
	}
	return v[lo:hi]
}

// Split returns an iterator over the sub-views of v separated by sep.
// Consecutive separators produce empty sub-views; an empty v produces one
// empty sub-view.
func (v View) Split(sep Char) *SplitIter {
	return &SplitIter{rest: v, sep: sep}
}

// Lines returns an iterator over the lines of v. A line ends at a line
// feed, optionally preceded by a carriage return; neither is part of the
// line. A final terminator does not start an extra empty line.
func (v View) Lines() *LineIter {
	return &LineIter{rest: v}
}

// Equal reports whether v and o hold the same characters.
func (v View) Equal(o View) bool {
	return bytes.Equal(v.Bytes(), o.Bytes())
}

// EqualBytes reports whether v holds exactly the bytes of b.
func (v View) EqualBytes(b []byte) bool {
	return bytes.Equal(v.Bytes(), b)
}

// EqualString reports whether v holds exactly the bytes of s.
func (v View) EqualString(s string) bool {
	return v.String() == s
}

// Compare compares v and o byte-wise and returns -1, 0 or +1.
func (v View) Compare(o View) int {
	return bytes.Compare(v.Bytes(), o.Bytes())
}

// EqualFold reports whether v and o are equal ignoring ASCII case. Views
// of different lengths are never equal.
func (v View) EqualFold(o View) bool {
	return equalFoldBytes(v.Bytes(), o.Bytes())
}

// Index returns the index of the first occurrence of sub in v, or -1.
func (v View) Index(sub View) int {
	return bytealg.Index(v.Bytes(), sub.Bytes())
}

// IndexFold is like Index but ignores ASCII case.
func (v View) IndexFold(sub View) int {
	return IndexFold(v.String(), sub.String())
}

// IndexChar returns the index of the first c in v, or -1.
func (v View) IndexChar(c Char) int {
	return bytealg.IndexByte(v.Bytes(), byte(c))
}

// LastIndexChar returns the index of the last c in v, or -1.
func (v View) LastIndexChar(c Char) int {
	return bytealg.LastIndexByte(v.Bytes(), byte(c))
}

// IndexAny returns the index of the first character of v that is in cs,
// or -1.
func (v View) IndexAny(cs CharSet) int {
	return cs.IndexAny(v.String())
}

// ContainsAny reports whether any character of v is in cs.
func (v View) ContainsAny(cs CharSet) bool {
	return cs.ContainsAny(v.String())
}

// Count returns the number of occurrences of c in v.
func (v View) Count(c Char) int {
	return bytealg.Count(v.Bytes(), byte(c))
}

// Contains reports whether sub occurs in v.
func (v View) Contains(sub View) bool {
	return v.Index(sub) >= 0
}

// HasPrefix reports whether v starts with p.
func (v View) HasPrefix(p View) bool {
	return len(v) >= len(p) && v[:len(p)].Equal(p)
}

// HasSuffix reports whether v ends with s.
func (v View) HasSuffix(s View) bool {
	return len(v) >= len(s) && v[len(v)-len(s):].Equal(s)
}

// HasPrefixFold is like HasPrefix but ignores ASCII case.
func (v View) HasPrefixFold(p View) bool {
	return HasPrefixFold(v.String(), p.String())
}

// HasSuffixFold is like HasSuffix but ignores ASCII case.
func (v View) HasSuffixFold(s View) bool {
	return HasSuffixFold(v.String(), s.String())
}

// MakeUpper converts v to uppercase in place. v must be writable.
func (v View) MakeUpper() {
	for p := range v.CharsMut() {
		p.MakeUpper()
	}
}

// MakeLower converts v to lowercase in place. v must be writable.
func (v View) MakeLower() {
	for p := range v.CharsMut() {
		p.MakeLower()
	}
}

// ToUpper returns an uppercase copy of v.
func (v View) ToUpper() *Buffer {
	b := v.Clone()
	b.View().MakeUpper()
	return b
}

// ToLower returns a lowercase copy of v.
func (v View) ToLower() *Buffer {
	b := v.Clone()
	b.View().MakeLower()
	return b
}

// Clone copies v into a new Buffer.
func (v View) Clone() *Buffer {
	b := WithCapacity(len(v))
	b.PushView(v)
	return b
}
