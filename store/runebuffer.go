// File: runebuffer.go
// Title: Reference Rune Buffer
// Description: Implements the Store interface over a plain rune slice.
//              Rune granularity keeps every position and length in the
//              module Unicode-safe: a multi-byte character counts as one,
//              and no operation can split a character.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with rune slice buffer

package store

import (
	"fmt"
	"math"
)

// RuneBuffer is the reference Store implementation backed by a rune slice.
// The zero value is an empty, ready-to-use buffer.
type RuneBuffer struct {
	runes []rune
}

// Compile-time interface check
var _ Store = (*RuneBuffer)(nil)

// NewRuneBuffer creates an empty buffer.
func NewRuneBuffer() *RuneBuffer {
	return &RuneBuffer{}
}

// NewRuneBufferFromString creates a buffer holding the runes of s.
func NewRuneBufferFromString(s string) *RuneBuffer {
	return &RuneBuffer{runes: []rune(s)}
}

// NewRuneBufferFromRunes creates a buffer holding a copy of rs.
func NewRuneBufferFromRunes(rs []rune) *RuneBuffer {
	b := &RuneBuffer{runes: make([]rune, len(rs))}
	copy(b.runes, rs)
	return b
}

// Len returns the number of runes currently held.
func (b *RuneBuffer) Len() int {
	return len(b.runes)
}

// Cap returns the number of runes the buffer can hold without growing.
func (b *RuneBuffer) Cap() int {
	return cap(b.runes)
}

// MaxLen returns the theoretical maximum number of runes the buffer could hold.
func (b *RuneBuffer) MaxLen() int {
	return math.MaxInt
}

// At returns the rune at index i. Panics if i is out of range.
func (b *RuneBuffer) At(i int) rune {
	return b.runes[i]
}

// Runes returns a copy of the contents.
func (b *RuneBuffer) Runes() []rune {
	result := make([]rune, len(b.runes))
	copy(result, b.runes)
	return result
}

// String returns the contents encoded as UTF-8.
func (b *RuneBuffer) String() string {
	return string(b.runes)
}

// Slice returns a copy of up to n runes starting at pos. A negative n means
// the remainder. Panics if pos is past the end.
func (b *RuneBuffer) Slice(pos, n int) []rune {
	if pos < 0 || pos > len(b.runes) {
		panic(fmt.Sprintf("store: slice position %d out of range [0, %d]", pos, len(b.runes)))
	}
	avail := len(b.runes) - pos
	if n < 0 || n > avail {
		n = avail
	}
	result := make([]rune, n)
	copy(result, b.runes[pos:pos+n])
	return result
}

// CopyTo copies runes starting at pos into dst and returns the number copied.
// Panics if pos is past the end.
func (b *RuneBuffer) CopyTo(dst []rune, pos int) int {
	if pos < 0 || pos > len(b.runes) {
		panic(fmt.Sprintf("store: copy position %d out of range [0, %d]", pos, len(b.runes)))
	}
	return copy(dst, b.runes[pos:])
}

// Replace replaces the entire contents.
func (b *RuneBuffer) Replace(rs []rune) {
	b.runes = b.runes[:0]
	b.runes = append(b.runes, rs...)
}

// Append appends runes to the end.
func (b *RuneBuffer) Append(rs []rune) {
	b.runes = append(b.runes, rs...)
}

// Insert inserts runes before index i. Panics if i is past the end.
func (b *RuneBuffer) Insert(i int, rs []rune) {
	if i < 0 || i > len(b.runes) {
		panic(fmt.Sprintf("store: insert position %d out of range [0, %d]", i, len(b.runes)))
	}
	if len(rs) == 0 {
		return
	}
	b.runes = append(b.runes, rs...)           // grow
	copy(b.runes[i+len(rs):], b.runes[i:])     // shift tail right
	copy(b.runes[i:], rs)                      // place new runes
}

// Erase removes up to n runes starting at index i, clamping n to the
// available range. A negative n means the remainder. Panics if i is past
// the end.
func (b *RuneBuffer) Erase(i, n int) {
	if i < 0 || i > len(b.runes) {
		panic(fmt.Sprintf("store: erase position %d out of range [0, %d]", i, len(b.runes)))
	}
	avail := len(b.runes) - i
	if n < 0 || n > avail {
		n = avail
	}
	b.runes = append(b.runes[:i], b.runes[i+n:]...)
}

// Clear removes all contents, keeping capacity.
func (b *RuneBuffer) Clear() {
	b.runes = b.runes[:0]
}

// Reserve grows capacity to at least n runes. Never shrinks.
func (b *RuneBuffer) Reserve(n int) {
	if n <= cap(b.runes) {
		return
	}
	grown := make([]rune, len(b.runes), n)
	copy(grown, b.runes)
	b.runes = grown
}

// ShrinkToFit releases capacity beyond the current length.
func (b *RuneBuffer) ShrinkToFit() {
	if cap(b.runes) == len(b.runes) {
		return
	}
	shrunk := make([]rune, len(b.runes))
	copy(shrunk, b.runes)
	b.runes = shrunk
}

// Compare lexicographically compares the contents against other.
func (b *RuneBuffer) Compare(other []rune) int {
	n := len(b.runes)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if b.runes[i] != other[i] {
			if b.runes[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(b.runes) < len(other):
		return -1
	case len(b.runes) > len(other):
		return 1
	default:
		return 0
	}
}
