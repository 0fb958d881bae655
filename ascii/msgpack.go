package ascii

import "github.com/vmihailenco/msgpack/v5"

var (
	_ msgpack.CustomEncoder = Char(0)
	_ msgpack.CustomDecoder = (*Char)(nil)
	_ msgpack.CustomEncoder = View(nil)
	_ msgpack.CustomDecoder = (*View)(nil)
	_ msgpack.CustomEncoder = (*Buffer)(nil)
	_ msgpack.CustomDecoder = (*Buffer)(nil)
)

// EncodeMsgpack writes c as a one-character string.
func (c Char) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(c.String())
}

// DecodeMsgpack reads a string holding exactly one ASCII character.
func (c *Char) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// EncodeMsgpack writes v as a string.
func (v View) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(v.String())
}

// DecodeMsgpack reads an ASCII string into v.
func (v *View) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

// EncodeMsgpack writes the contents of b as a string.
func (b *Buffer) EncodeMsgpack(enc *msgpack.Encoder) error {
	return b.View().EncodeMsgpack(enc)
}

// DecodeMsgpack reads an ASCII string into b.
func (b *Buffer) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return b.UnmarshalText([]byte(s))
}
