// File: capacity.go
// Title: Capacity Control
// Description: Implements capacity queries and control. Reserve is the one
//              capacity operation the bound applies to: reserving more than
//              the bound could never be honored meaningfully.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with capacity control

package bounded

// Cap returns the number of runes the backing store can hold without
// growing.
func (s *String[B]) Cap() int {
	return s.view().Cap()
}

// MaxLen returns the largest length this container could ever reach:
// min(bound, backing store maximum).
func (s *String[B]) MaxLen() int {
	b := boundFor[B]()
	if m := s.view().MaxLen(); m < b {
		return m
	}
	return b
}

// Reserve grows backing capacity to at least n runes. A request beyond the
// bound is CapacityExceeded; a negative request is InvalidArgument.
func (s *String[B]) Reserve(n int) error {
	const op = "reserve"
	if n < 0 {
		return argumentError(op, "negative capacity request")
	}
	if b := boundFor[B](); n > b {
		return capacityError(op, n, b)
	}
	s.backing().Reserve(n)
	return nil
}

// ShrinkToFit releases backing capacity beyond the current length.
func (s *String[B]) ShrinkToFit() {
	if s.contents != nil {
		s.contents.ShrinkToFit()
	}
}
