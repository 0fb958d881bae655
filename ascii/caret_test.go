package ascii

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaretEncode(t *testing.T) {
	tests := []struct {
		c    Char
		want Char
		ok   bool
	}{
		{Null, '@', true},
		{SOH, 'A', true},
		{Tab, 'I', true},
		{LineFeed, 'J', true},
		{ESC, '[', true},
		{US, '_', true},
		{DEL, '?', true},
		{'a', 0, false},
		{Space, 0, false},
		{Caret, 0, false},
	}

	for _, tt := range tests {
		got, ok := CaretEncode(tt.c)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CaretEncode(%#x) = %q, %v; want %q, %v", byte(tt.c), got, ok, tt.want, tt.ok)
		}
	}
}

func TestCaretCharRoundTrip(t *testing.T) {
	for i := 0; i < 128; i++ {
		c := Char(i)
		e, ok := CaretEncode(c)
		if ok != c.IsControl() {
			t.Errorf("CaretEncode(%#x) ok = %v; want %v", i, ok, c.IsControl())
			continue
		}
		if !ok {
			continue
		}
		d, ok := CaretDecode(e)
		if !ok || d != c {
			t.Errorf("CaretDecode(%q) = %#x, %v; want %#x", e, byte(d), ok, i)
		}
	}
}

func TestCaretView(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a\tb\n", "a^Ib^J"},
		{"\x00\x7f", "^@^?"},
		{"x^y", "x^!y"},
		{"\x1b[0m", "^[[0m"},
	}

	for _, tt := range tests {
		enc := CaretEncodeView(MustFromString(tt.in))
		if enc.String() != tt.want {
			t.Errorf("CaretEncodeView(%q) = %q; want %q", tt.in, enc, tt.want)
		}
		dec, err := CaretDecodeView(enc.View())
		require.NoError(t, err)
		if dec.String() != tt.in {
			t.Errorf("CaretDecodeView(%q) = %q; want %q", enc, dec, tt.in)
		}
	}
}

func TestCaretViewAllChars(t *testing.T) {
	all := WithCapacity(128)
	for i := 0; i < 128; i++ {
		all.Push(Char(i))
	}

	enc := CaretEncodeView(all.View())
	for _, c := range enc.View() {
		assert.True(t, c.IsPrint(), "encoded output contains %#x", byte(c))
	}

	dec, err := CaretDecodeView(enc.View())
	require.NoError(t, err)
	assert.True(t, dec.Equal(all))
}

func TestCaretDecodeErrors(t *testing.T) {
	_, err := CaretDecodeView(MustFromString("ab^"))
	var ce *CaretError
	require.True(t, errors.As(err, &ce))
	assert.True(t, ce.Dangling)
	assert.Equal(t, 2, ce.Offset)

	_, err = CaretDecodeView(MustFromString("^Ja^a"))
	require.True(t, errors.As(err, &ce))
	assert.False(t, ce.Dangling)
	assert.Equal(t, 3, ce.Offset)
	assert.Equal(t, Char('a'), ce.Escape)
	assert.EqualError(t, err, `ascii: invalid caret escape "^a" at offset 3`)
}
