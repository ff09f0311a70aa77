// File: erase.go
// Title: Shrinking Operations
// Description: Implements the operations that remove contents. None can
//              grow the container, so no bound check applies; only
//              position validity is enforced.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with shrinking operations

package bounded

// Clear removes all contents.
func (s *String[B]) Clear() {
	if s.contents != nil {
		s.contents.Clear()
	}
}

// Erase removes up to count runes starting at pos. A pos past the end is
// OutOfRange; the count is clamped to what exists (ToEnd means the
// remainder).
func (s *String[B]) Erase(pos, count int) error {
	const op = "erase"
	size := s.Len()
	if pos < 0 || pos > size {
		return rangeError(op, pos, size)
	}
	if s.contents != nil {
		s.contents.Erase(pos, count)
	}
	return nil
}

// PopBack removes the last rune. OutOfRange on an empty container.
func (s *String[B]) PopBack() error {
	const op = "pop_back"
	size := s.Len()
	if size == 0 {
		return rangeError(op, 0, 0)
	}
	s.contents.Erase(size-1, 1)
	return nil
}
