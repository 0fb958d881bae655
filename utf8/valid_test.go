package utf8

import (
	"strings"
	"testing"
	stdlib "unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/asciitype/ascii"
)

// Inputs are sorted into three kinds: pure ASCII, text that needs UTF-8,
// and binary data that is neither.
func TestTextOrBinary(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		utf8   bool
		offset int // first non-ASCII byte, -1 for pure ASCII
	}{
		{"empty", "", true, -1},
		{"ascii", "plain text\r\n", true, -1},
		{"control chars", "\x00\x01\x1b[0m\x7f", true, -1},
		{"accented", "café", true, 3},
		{"cjk", "name: 日本", true, 6},
		{"emoji", "ok 🙂", true, 3},
		{"latin1", "caf\xe9", false, 3},
		{"lone continuation", "a\x80b", false, 1},
		{"truncated", "x\xe6\x97", false, 1},
		{"overlong slash", "\xc0\xaf", false, 0},
		{"surrogate", "\xed\xa0\x80", false, 0},
		{"above max rune", "\xf4\x90\x80\x80", false, 0},
		{"png header", "\x89PNG\r\n\x1a\n", false, 0},
		{"utf8 then binary", "ü" + strings.Repeat("-", 40) + "\xff", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.utf8, Valid([]byte(tt.in)), "Valid")
			assert.Equal(t, tt.utf8, ValidString(tt.in), "ValidString")

			_, err := ascii.FromBytes([]byte(tt.in))
			if tt.offset < 0 {
				assert.NoError(t, err)
				return
			}
			var ve *ascii.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.offset, ve.Offset)
		})
	}
}

// The ASCII skip must hand the scan over at the right byte whatever the
// prefix length, so every lead/continuation pair is tried behind prefixes
// of every length up to a few words.
func TestValidAfterASCIIPrefix(t *testing.T) {
	tails := []string{
		"\xc2\x80", "\xdf\xbf", "\xc1\xbf", "\xc2\x7f", "\xc2",
		"\xe0\xa0\x80", "\xe0\x9f\xbf", "\xed\x9f\xbf", "\xed\xa0\x80", "\xef\xbf\xbf",
		"\xf0\x90\x80\x80", "\xf0\x8f\xbf\xbf", "\xf4\x8f\xbf\xbf", "\xf4\x90\x80\x80", "\xf5\x80\x80\x80",
		"\x80", "\xbf", "\xfe", "\xff",
	}
	for n := range 40 {
		prefix := strings.Repeat("a", n)
		for _, tail := range tails {
			for _, s := range []string{prefix + tail, prefix + tail + "z", prefix + tail + tail} {
				want := stdlib.ValidString(s)
				if got := ValidString(s); got != want {
					t.Errorf("ValidString(%q) = %v; want %v", s, got, want)
				}
				if got := Valid([]byte(s)); got != want {
					t.Errorf("Valid(%q) = %v; want %v", s, got, want)
				}
			}
		}
	}
}

func TestValidEveryRunePrefix(t *testing.T) {
	for _, r := range []rune{'é', '€', '日', '🙂', stdlib.MaxRune} {
		enc := string(r)
		for cut := 1; cut <= len(enc); cut++ {
			s := "hdr:" + enc[:cut]
			assert.Equal(t, cut == len(enc), ValidString(s), "ValidString(%q)", s)
		}
	}
}

func FuzzValid(f *testing.F) {
	f.Add([]byte("mostly ascii ü"))
	f.Add([]byte{0xef, 0xbb, 0xbf, 'x'})
	f.Fuzz(func(t *testing.T, b []byte) {
		if got, want := Valid(b), stdlib.Valid(b); got != want {
			t.Fatalf("Valid(%q) = %v; want %v", b, got, want)
		}
	})
}

var benchInputs = []struct {
	name string
	data string
}{
	{"ascii-short", "0123456789"},
	{"ascii-64k", strings.Repeat("log line with fields=1\n", 2850)},
	{"mostly-ascii-64k", strings.Repeat("x", 64<<10) + "é"},
	{"japanese-4k", strings.Repeat("日本語", 455)},
	{"binary-64k", strings.Repeat("x", 64<<10) + "\xff"},
}

func BenchmarkValidString(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.data)))
			for range b.N {
				ValidString(in.data)
			}
		})
	}
}

func BenchmarkValid(b *testing.B) {
	for _, in := range benchInputs {
		data := []byte(in.data)
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for range b.N {
				Valid(data)
			}
		})
	}
}
