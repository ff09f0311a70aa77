// File: access.go
// Title: Read Access Operations
// Description: Implements element access, iteration, substring extraction,
//              copying out, and comparison. All are pass-throughs to the
//              backing store; none can grow the container.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with read access operations

package bounded

import (
	"iter"
)

// At returns the rune at index i. OutOfRange if i does not address a rune.
func (s *String[B]) At(i int) (rune, error) {
	const op = "at"
	size := s.Len()
	if i < 0 || i >= size {
		return 0, rangeError(op, i, size)
	}
	return s.contents.At(i), nil
}

// Front returns the first rune. OutOfRange on an empty container.
func (s *String[B]) Front() (rune, error) {
	const op = "front"
	if s.Empty() {
		return 0, rangeError(op, 0, 0)
	}
	return s.contents.At(0), nil
}

// Back returns the last rune. OutOfRange on an empty container.
func (s *String[B]) Back() (rune, error) {
	const op = "back"
	size := s.Len()
	if size == 0 {
		return 0, rangeError(op, 0, 0)
	}
	return s.contents.At(size - 1), nil
}

// Runes returns a copy of the contents.
func (s *String[B]) Runes() []rune {
	return s.snapshot()
}

// Bytes returns the contents encoded as UTF-8.
func (s *String[B]) Bytes() []byte {
	return []byte(s.String())
}

// All returns an iterator over (index, rune) pairs of the contents at the
// time of the call.
func (s *String[B]) All() iter.Seq2[int, rune] {
	rs := s.snapshot()
	return func(yield func(int, rune) bool) {
		for i, r := range rs {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Substr returns up to count runes starting at pos as a plain string. A
// pos past the end is OutOfRange; the count is clamped to what exists
// (ToEnd means the remainder). The result is an independent copy carrying
// no bound of its own.
func (s *String[B]) Substr(pos, count int) (string, error) {
	const op = "substr"
	size := s.Len()
	if pos < 0 || pos > size {
		return "", rangeError(op, pos, size)
	}
	realized := clampCount(count, size-pos)
	return string(s.view().Slice(pos, realized)), nil
}

// CopyTo copies runes starting at pos into dst and returns the number
// copied, min(len(dst), Len()-pos). A pos past the end is OutOfRange.
func (s *String[B]) CopyTo(dst []rune, pos int) (int, error) {
	const op = "copy_to"
	size := s.Len()
	if pos < 0 || pos > size {
		return 0, rangeError(op, pos, size)
	}
	return s.view().CopyTo(dst, pos), nil
}

// Compare lexicographically compares the contents against other, returning
// a negative value, zero, or a positive value.
func (s *String[B]) Compare(other string) int {
	return s.view().Compare([]rune(other))
}

// Equal reports whether the contents equal other.
func (s *String[B]) Equal(other string) bool {
	return s.Compare(other) == 0
}
