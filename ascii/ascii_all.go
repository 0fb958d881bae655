package ascii

func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return EqualFold(s[:len(prefix)], prefix)
}

func HasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return EqualFold(s[len(s)-len(suffix):], suffix)
}

// IndexNonASCII returns the index of the first byte of s that is not ASCII,
// or -1 if there is none.
func IndexNonASCII[T string | []byte](s T) int {
	switch v := any(s).(type) {
	case string:
		if ValidString(v) {
			return -1
		}
		return IndexMask(v, 0x80)
	case []byte:
		if Valid(v) {
			return -1
		}
	}
	return indexMaskGo(s, 0x80)
}
