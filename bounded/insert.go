// File: insert.go
// Title: Insertion and Append Family
// Description: Implements positional insertion and appending. Position
//              validity is checked first (OutOfRange, distinct from
//              capacity), then the prospective length (current length plus
//              realized insert length) against the bound, all before the
//              store is touched.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with insert and append family

package bounded

import (
	"unicode/utf8"
)

// Push appends a single rune.
func (s *String[B]) Push(ch rune) error {
	const op = "push"
	if err := checkCapacity[B](op, s.Len()+1); err != nil {
		return err
	}
	s.backing().Append([]rune{ch})
	return nil
}

// Append appends the runes of v.
func (s *String[B]) Append(v string) error {
	const op = "append"
	if err := checkCapacity[B](op, s.Len()+utf8.RuneCountInString(v)); err != nil {
		return err
	}
	s.backing().Append([]rune(v))
	return nil
}

// AppendRunes appends a copy of rs.
func (s *String[B]) AppendRunes(rs []rune) error {
	const op = "append_runes"
	if err := checkCapacity[B](op, s.Len()+len(rs)); err != nil {
		return err
	}
	s.backing().Append(rs)
	return nil
}

// Insert inserts the runes of v before rune index. An index past the end
// is OutOfRange.
func (s *String[B]) Insert(index int, v string) error {
	const op = "insert"
	size := s.Len()
	if index < 0 || index > size {
		return rangeError(op, index, size)
	}
	if err := checkCapacity[B](op, size+utf8.RuneCountInString(v)); err != nil {
		return err
	}
	s.backing().Insert(index, []rune(v))
	return nil
}

// InsertRune inserts a single rune before rune index.
func (s *String[B]) InsertRune(index int, ch rune) error {
	const op = "insert_rune"
	size := s.Len()
	if index < 0 || index > size {
		return rangeError(op, index, size)
	}
	if err := checkCapacity[B](op, size+1); err != nil {
		return err
	}
	s.backing().Insert(index, []rune{ch})
	return nil
}

// InsertRunes inserts a copy of rs before rune index.
func (s *String[B]) InsertRunes(index int, rs []rune) error {
	const op = "insert_runes"
	size := s.Len()
	if index < 0 || index > size {
		return rangeError(op, index, size)
	}
	if err := checkCapacity[B](op, size+len(rs)); err != nil {
		return err
	}
	s.backing().Insert(index, rs)
	return nil
}

// InsertRepeat inserts count copies of ch before rune index. A negative
// count is InvalidArgument.
func (s *String[B]) InsertRepeat(index, count int, ch rune) error {
	const op = "insert_repeat"
	size := s.Len()
	if index < 0 || index > size {
		return rangeError(op, index, size)
	}
	if count < 0 {
		return argumentError(op, "negative repeat count")
	}
	if err := checkCapacity[B](op, size+count); err != nil {
		return err
	}
	rs := make([]rune, count)
	for i := range rs {
		rs[i] = ch
	}
	s.backing().Insert(index, rs)
	return nil
}

// InsertFrom inserts the slice of an A-bounded source over
// [pos, pos+count) before rune index in dst. The inserted length is the
// realized slice length, clamped to what the source actually holds, never
// the raw requested count.
func InsertFrom[B, A Bound](dst *String[B], index int, src *String[A], pos, count int) error {
	const op = "insert_from"
	if dst == nil || src == nil {
		return argumentError(op, "nil instance")
	}
	size := dst.Len()
	if index < 0 || index > size {
		return rangeError(op, index, size)
	}
	srcSize := src.Len()
	if pos < 0 || pos > srcSize {
		return rangeError(op, pos, srcSize)
	}
	realized := clampCount(count, srcSize-pos)
	if err := checkCapacity[B](op, size+realized); err != nil {
		return err
	}
	dst.backing().Insert(index, src.view().Slice(pos, realized))
	return nil
}
