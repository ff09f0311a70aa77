// File: construct.go
// Title: Construction Forms
// Description: Implements the construction family. Every form computes the
//              final length the new container would have from its operands,
//              before any store is populated; a failed construction returns
//              no usable object.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with construction forms

package bounded

import (
	"unicode/utf8"

	"github.com/aprotyas/BoundedString/store"
)

// FromString creates a container holding the runes of v.
func FromString[B Bound](v string) (*String[B], error) {
	const op = "from_string"
	if err := checkCapacity[B](op, utf8.RuneCountInString(v)); err != nil {
		return nil, err
	}
	return &String[B]{contents: store.NewRuneBufferFromString(v)}, nil
}

// FromStringRange creates a container from the slice of v over
// [pos, pos+count) in runes. A pos past the end is OutOfRange; the count is
// clamped to what exists before the bound comparison (ToEnd means the
// remainder).
func FromStringRange[B Bound](v string, pos, count int) (*String[B], error) {
	const op = "from_string_range"
	rs := []rune(v)
	if pos < 0 || pos > len(rs) {
		return nil, rangeError(op, pos, len(rs))
	}
	realized := clampCount(count, len(rs)-pos)
	if err := checkCapacity[B](op, realized); err != nil {
		return nil, err
	}
	return &String[B]{contents: store.NewRuneBufferFromRunes(rs[pos : pos+realized])}, nil
}

// FromBytes creates a container from UTF-8 encoded bytes. A nil slice
// yields an empty container.
func FromBytes[B Bound](p []byte) (*String[B], error) {
	const op = "from_bytes"
	if err := checkCapacity[B](op, utf8.RuneCount(p)); err != nil {
		return nil, err
	}
	return &String[B]{contents: store.NewRuneBufferFromString(string(p))}, nil
}

// FromRunes creates a container holding a copy of rs.
func FromRunes[B Bound](rs []rune) (*String[B], error) {
	const op = "from_runes"
	if err := checkCapacity[B](op, len(rs)); err != nil {
		return nil, err
	}
	return &String[B]{contents: store.NewRuneBufferFromRunes(rs)}, nil
}

// Repeat creates a container holding count copies of ch. A negative count
// is InvalidArgument.
func Repeat[B Bound](count int, ch rune) (*String[B], error) {
	const op = "repeat"
	if count < 0 {
		return nil, argumentError(op, "negative repeat count")
	}
	if err := checkCapacity[B](op, count); err != nil {
		return nil, err
	}
	rs := make([]rune, count)
	for i := range rs {
		rs[i] = ch
	}
	return &String[B]{contents: store.NewRuneBufferFromRunes(rs)}, nil
}

// Clone returns an independent copy. Source and copy share the same bound,
// so no capacity check is needed: the source already satisfies it.
func (s *String[B]) Clone() *String[B] {
	boundFor[B]()
	return &String[B]{contents: store.NewRuneBufferFromRunes(s.snapshot())}
}

// Convert creates a B-bounded copy of an A-bounded source. The bounds are
// independent, so the source length is always checked against B.
func Convert[B, A Bound](src *String[A]) (*String[B], error) {
	const op = "convert"
	if src == nil {
		return nil, argumentError(op, "nil source")
	}
	if err := checkCapacity[B](op, src.Len()); err != nil {
		return nil, err
	}
	return &String[B]{contents: store.NewRuneBufferFromRunes(src.snapshot())}, nil
}

// Substring creates a B-bounded container from the slice of an A-bounded
// source over [pos, pos+count). A pos past the end is OutOfRange; the count
// is clamped to what exists before the bound comparison.
func Substring[B, A Bound](src *String[A], pos, count int) (*String[B], error) {
	const op = "substring"
	if src == nil {
		return nil, argumentError(op, "nil source")
	}
	size := src.Len()
	if pos < 0 || pos > size {
		return nil, rangeError(op, pos, size)
	}
	realized := clampCount(count, size-pos)
	if err := checkCapacity[B](op, realized); err != nil {
		return nil, err
	}
	return &String[B]{contents: store.NewRuneBufferFromRunes(src.view().Slice(pos, realized))}, nil
}
