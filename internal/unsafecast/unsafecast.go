// Package unsafecast converts between types that share a memory layout
// without copying.
//
// Every function here trusts its caller: the element types must have the
// same size and alignment, and data reinterpreted as a string must not be
// written to while the string is alive.
package unsafecast

import "unsafe"

// slice mirrors the runtime representation of a slice header. It uses an
// unsafe.Pointer so the garbage collector keeps tracking the backing array.
type slice struct {
	ptr unsafe.Pointer
	len int
	cap int
}

// Slice converts []From to []To over the same backing array. Length and
// capacity are scaled by the size ratio of the two element types, so the
// capacity survives the conversion (unsafe.Slice would drop it).
func Slice[To, From any](data []From) []To {
	var zf From
	var zt To
	s := slice{
		ptr: unsafe.Pointer(unsafe.SliceData(data)),
		len: int((uintptr(len(data)) * unsafe.Sizeof(zf)) / unsafe.Sizeof(zt)),
		cap: int((uintptr(cap(data)) * unsafe.Sizeof(zf)) / unsafe.Sizeof(zt)),
	}
	return *(*[]To)(unsafe.Pointer(&s))
}

// String returns a string sharing the backing array of data.
func String[T ~byte](data []T) string {
	if len(data) == 0 {
		return ""
	}
	return unsafe.String((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data))
}

// FromString returns a slice sharing the bytes of s. The result must never
// be written to.
func FromString[T ~byte](s string) []T {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.StringData(s))), len(s))
}
