package ascii

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func scalarValue(node *yaml.Node, expected string) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", &DecodeError{
			Value:    node.Tag,
			Expected: expected,
			Err:      fmt.Errorf("line %d: not a scalar", node.Line),
		}
	}
	return node.Value, nil
}

// MarshalYAML encodes c as a one-character string.
func (c Char) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a scalar holding exactly one ASCII character.
func (c *Char) UnmarshalYAML(node *yaml.Node) error {
	s, err := scalarValue(node, expectChar)
	if err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// MarshalYAML encodes v as a string.
func (v View) MarshalYAML() (any, error) {
	return string(v.Bytes()), nil
}

// UnmarshalYAML decodes an ASCII scalar.
func (v *View) UnmarshalYAML(node *yaml.Node) error {
	s, err := scalarValue(node, expectString)
	if err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

// MarshalYAML encodes the contents of b as a string.
func (b *Buffer) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML decodes an ASCII scalar into b.
func (b *Buffer) UnmarshalYAML(node *yaml.Node) error {
	s, err := scalarValue(node, expectString)
	if err != nil {
		return err
	}
	return b.UnmarshalText([]byte(s))
}
