// File: encoding.go
// Title: Marshalling Support
// Description: Lets a bounded container live directly inside config and
//              data structs: text (which also powers encoding/json), YAML,
//              and TOML. Decoding enforces the bound with the same
//              check-before-commit discipline as every other mutator, so a
//              rejected value leaves the previous contents intact.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with text, YAML and TOML support

package bounded

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	bserror "github.com/aprotyas/BoundedString/core/error"
)

// MarshalText implements encoding.TextMarshaler.
func (s *String[B]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An over-long value is
// CapacityExceeded and the previous contents survive.
func (s *String[B]) UnmarshalText(text []byte) error {
	const op = "unmarshal_text"
	if err := checkCapacity[B](op, utf8.RuneCount(text)); err != nil {
		return err
	}
	s.backing().Replace([]rune(string(text)))
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s *String[B]) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are
// accepted; an over-long value is CapacityExceeded and the previous
// contents survive.
func (s *String[B]) UnmarshalYAML(node *yaml.Node) error {
	const op = "unmarshal_yaml"
	if node.Kind != yaml.ScalarNode {
		return encodingError(op, fmt.Sprintf("expected scalar YAML node, got kind %d", node.Kind))
	}
	var v string
	if err := node.Decode(&v); err != nil {
		return bserror.Wrap(err, "bounded: yaml scalar decode failed").
			WithCode(bserror.CodeInvalidEncoding).
			WithOperation(op)
	}
	if err := checkCapacity[B](op, utf8.RuneCountInString(v)); err != nil {
		return err
	}
	s.backing().Replace([]rune(v))
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler. Only string values are
// accepted; an over-long value is CapacityExceeded and the previous
// contents survive.
func (s *String[B]) UnmarshalTOML(data interface{}) error {
	const op = "unmarshal_toml"
	v, ok := data.(string)
	if !ok {
		return encodingError(op, fmt.Sprintf("expected TOML string, got %T", data))
	}
	if err := checkCapacity[B](op, utf8.RuneCountInString(v)); err != nil {
		return err
	}
	s.backing().Replace([]rune(v))
	return nil
}
