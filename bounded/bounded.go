// File: bounded.go
// Title: Length-Bounded Text Container
// Description: Defines String[B], a mutable text container whose length can
//              never exceed the bound carried by its type parameter. Every
//              growing operation validates the prospective length before any
//              storage is touched, so a failed call leaves the container
//              exactly as it was.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with core container type

package bounded

import (
	"fmt"

	"github.com/aprotyas/BoundedString/store"
)

// Bound is implemented by zero-size marker types that fix the maximum
// number of runes a String specialization may hold. Max must return a
// positive constant; a specialization over a non-positive bound panics on
// first use.
type Bound interface {
	Max() int
}

// String is a mutable rune sequence of at most B's Max() runes. The bound
// is part of the type: String[B8] and String[B16] are distinct types, and
// cross-bound operations (Convert, Assign, InsertFrom, SwapBounds, ...)
// are explicit generic functions with their own validation.
//
// The zero value is an empty, usable container. A String owns its backing
// store exclusively and has single-owner semantics: concurrent mutation
// must be serialized by the caller, while concurrent reads are safe when
// no writer is active.
type String[B Bound] struct {
	contents store.Store
}

// emptyView serves read operations on zero-value containers without
// allocating a store. Read-only by contract.
var emptyView store.Store = store.NewRuneBuffer()

// boundFor returns the bound for specialization B, panicking if the marker
// type violates the positive-bound requirement.
func boundFor[B Bound]() int {
	var b B
	n := b.Max()
	if n <= 0 {
		panic(fmt.Sprintf("bounded: bound type %T must have a positive Max, got %d", b, n))
	}
	return n
}

// checkCapacity validates a prospective length against B's bound. Callers
// compute the prospective length from operands alone, before any mutation.
func checkCapacity[B Bound](op string, prospective int) error {
	if b := boundFor[B](); prospective > b {
		return capacityError(op, prospective, b)
	}
	return nil
}

// clampCount realizes a requested count against what actually exists.
// Negative counts (ToEnd) and counts past the end mean the remainder.
func clampCount(count, avail int) int {
	if count < 0 || count > avail {
		return avail
	}
	return count
}

// backing returns the store for mutation, allocating it on first use.
func (s *String[B]) backing() store.Store {
	if s.contents == nil {
		s.contents = store.NewRuneBuffer()
	}
	return s.contents
}

// view returns the store for reading without allocating.
func (s *String[B]) view() store.Store {
	if s.contents == nil {
		return emptyView
	}
	return s.contents
}

// snapshot returns a copy of the contents as runes.
func (s *String[B]) snapshot() []rune {
	if s.contents == nil {
		return nil
	}
	return s.contents.Runes()
}

// New creates an empty container. Always valid, since the bound is
// positive.
func New[B Bound]() *String[B] {
	boundFor[B]()
	return &String[B]{contents: store.NewRuneBuffer()}
}

// NewWithStore creates a container that adopts the provided backing store.
// A nil store is rejected with InvalidArgument; adopting a store whose
// contents already exceed the bound fails with CapacityExceeded, and the
// store is not adopted.
func NewWithStore[B Bound](st store.Store) (*String[B], error) {
	const op = "new_with_store"
	if st == nil {
		return nil, argumentError(op, "nil backing store")
	}
	if err := checkCapacity[B](op, st.Len()); err != nil {
		return nil, err
	}
	return &String[B]{contents: st}, nil
}

// Len returns the number of runes currently held.
func (s *String[B]) Len() int {
	if s.contents == nil {
		return 0
	}
	return s.contents.Len()
}

// Empty reports whether the container holds no runes.
func (s *String[B]) Empty() bool {
	return s.Len() == 0
}

// String returns the contents encoded as UTF-8.
func (s *String[B]) String() string {
	if s.contents == nil {
		return ""
	}
	return s.contents.String()
}

// Bound returns the maximum number of runes this specialization may hold.
func (s *String[B]) Bound() int {
	return boundFor[B]()
}

// BoundFor returns the bound of specialization B without an instance.
func BoundFor[B Bound]() int {
	return boundFor[B]()
}
