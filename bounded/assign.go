// File: assign.go
// Title: Assignment Family
// Description: Implements whole-contents replacement. The prospective
//              length is computed from the operands alone and compared
//              against the bound before the store is touched; a failed
//              assignment leaves the previous contents intact.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with assign family

package bounded

import (
	"unicode/utf8"
)

// Set replaces the contents with the runes of v.
func (s *String[B]) Set(v string) error {
	const op = "set"
	if err := checkCapacity[B](op, utf8.RuneCountInString(v)); err != nil {
		return err
	}
	s.backing().Replace([]rune(v))
	return nil
}

// SetRange replaces the contents with the slice of v over [pos, pos+count)
// in runes. A pos past the end is OutOfRange; the count is clamped to what
// exists before the bound comparison (ToEnd means the remainder).
func (s *String[B]) SetRange(v string, pos, count int) error {
	const op = "set_range"
	rs := []rune(v)
	if pos < 0 || pos > len(rs) {
		return rangeError(op, pos, len(rs))
	}
	realized := clampCount(count, len(rs)-pos)
	if err := checkCapacity[B](op, realized); err != nil {
		return err
	}
	s.backing().Replace(rs[pos : pos+realized])
	return nil
}

// SetRunes replaces the contents with a copy of rs.
func (s *String[B]) SetRunes(rs []rune) error {
	const op = "set_runes"
	if err := checkCapacity[B](op, len(rs)); err != nil {
		return err
	}
	s.backing().Replace(rs)
	return nil
}

// SetRepeat replaces the contents with count copies of ch. A negative
// count is InvalidArgument.
func (s *String[B]) SetRepeat(count int, ch rune) error {
	const op = "set_repeat"
	if count < 0 {
		return argumentError(op, "negative repeat count")
	}
	if err := checkCapacity[B](op, count); err != nil {
		return err
	}
	rs := make([]rune, count)
	for i := range rs {
		rs[i] = ch
	}
	s.backing().Replace(rs)
	return nil
}

// SetRune replaces the contents with the single rune ch. Always fits,
// since the bound is positive.
func (s *String[B]) SetRune(ch rune) {
	boundFor[B]()
	s.backing().Replace([]rune{ch})
}

// CopyFrom replaces the contents with a copy of other's. Both sides share
// the same bound, so no capacity check is needed.
func (s *String[B]) CopyFrom(other *String[B]) error {
	const op = "copy_from"
	if other == nil {
		return argumentError(op, "nil source")
	}
	s.backing().Replace(other.snapshot())
	return nil
}

// Take moves other's contents into s, leaving other empty. The move analog
// of CopyFrom: the source already satisfies the same bound, so the
// transfer is check-free.
func (s *String[B]) Take(other *String[B]) error {
	const op = "take"
	if other == nil {
		return argumentError(op, "nil source")
	}
	if other == s {
		return nil
	}
	s.contents = other.contents
	other.contents = nil
	return nil
}

// Assign replaces dst's contents with a copy of an A-bounded source's. The
// bounds are independent, so the source length is always checked against B.
func Assign[B, A Bound](dst *String[B], src *String[A]) error {
	const op = "assign"
	if dst == nil || src == nil {
		return argumentError(op, "nil instance")
	}
	if err := checkCapacity[B](op, src.Len()); err != nil {
		return err
	}
	dst.backing().Replace(src.snapshot())
	return nil
}

// AssignRange replaces dst's contents with the slice of an A-bounded
// source over [pos, pos+count). A pos past the end is OutOfRange; the
// count is clamped to what exists before the bound comparison.
func AssignRange[B, A Bound](dst *String[B], src *String[A], pos, count int) error {
	const op = "assign_range"
	if dst == nil || src == nil {
		return argumentError(op, "nil instance")
	}
	size := src.Len()
	if pos < 0 || pos > size {
		return rangeError(op, pos, size)
	}
	realized := clampCount(count, size-pos)
	if err := checkCapacity[B](op, realized); err != nil {
		return err
	}
	dst.backing().Replace(src.view().Slice(pos, realized))
	return nil
}
