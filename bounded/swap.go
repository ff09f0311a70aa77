// File: swap.go
// Title: Content Exchange
// Description: Implements swapping between containers. Same-bound swaps
//              are always safe; cross-bound swaps validate both receiving
//              directions before either side is touched.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with swap operations

package bounded

// Swap exchanges contents with another container of the same bound. Each
// side already satisfies that bound, so no check is needed.
func (s *String[B]) Swap(other *String[B]) {
	if other == nil || other == s {
		return
	}
	s.contents, other.contents = other.contents, s.contents
}

// SwapBounds exchanges contents between containers of differing bounds.
// Both receiving directions are validated before either side is touched:
// on failure, both containers are unchanged.
func SwapBounds[A, B Bound](a *String[A], b *String[B]) error {
	const op = "swap_bounds"
	if a == nil || b == nil {
		return argumentError(op, "nil instance")
	}
	if boundA := boundFor[A](); b.Len() > boundA {
		return capacityError(op, b.Len(), boundA)
	}
	if boundB := boundFor[B](); a.Len() > boundB {
		return capacityError(op, a.Len(), boundB)
	}
	a.contents, b.contents = b.contents, a.contents
	return nil
}
