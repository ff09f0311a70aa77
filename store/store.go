// File: store.go
// Title: Backing Store Contract
// Description: Defines the Store interface, the unbounded growable rune
//              sequence that the bounded container delegates all storage
//              mechanics to. The container composes a Store rather than
//              embedding a concrete buffer so its guard logic can be
//              exercised against a fake store in tests.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with Store interface

package store

// NotFound is returned by search operations when no match exists.
const NotFound = -1

// Store is an unbounded, contiguous, growable rune sequence. It owns the
// actual character memory and performs no length-bound checking of its own.
//
// Mutating operations assume their position arguments are valid for the
// current contents and panic otherwise, like slice indexing; callers are
// expected to validate positions first. Counts that run past the end are
// clamped, never an error.
type Store interface {
	// Len returns the number of runes currently held.
	Len() int

	// Cap returns the number of runes the store can hold without growing.
	Cap() int

	// MaxLen returns the theoretical maximum number of runes the store
	// could ever hold.
	MaxLen() int

	// At returns the rune at index i. Panics if i is out of range.
	At(i int) rune

	// Runes returns a copy of the contents.
	Runes() []rune

	// String returns the contents encoded as UTF-8.
	String() string

	// Slice returns a copy of up to n runes starting at pos. A negative n
	// means the remainder. Panics if pos is past the end.
	Slice(pos, n int) []rune

	// CopyTo copies runes starting at pos into dst and returns the number
	// copied, min(len(dst), Len()-pos). Panics if pos is past the end.
	CopyTo(dst []rune, pos int) int

	// Replace replaces the entire contents.
	Replace(rs []rune)

	// Append appends runes to the end.
	Append(rs []rune)

	// Insert inserts runes before index i. Panics if i is past the end.
	Insert(i int, rs []rune)

	// Erase removes up to n runes starting at index i, clamping n to the
	// available range. A negative n means the remainder. Panics if i is
	// past the end.
	Erase(i, n int)

	// Clear removes all contents, keeping capacity.
	Clear()

	// Reserve grows capacity to at least n runes. Never shrinks.
	Reserve(n int)

	// ShrinkToFit releases capacity beyond the current length.
	ShrinkToFit()

	// Index returns the lowest index >= from where needle begins, or
	// NotFound. An empty needle matches at from when from <= Len().
	Index(needle []rune, from int) int

	// LastIndex returns the highest index <= before where needle begins,
	// or NotFound. before is clamped to Len().
	LastIndex(needle []rune, before int) int

	// IndexAny returns the lowest index >= from holding any rune in set,
	// or NotFound.
	IndexAny(set []rune, from int) int

	// IndexNotAny returns the lowest index >= from holding a rune not in
	// set, or NotFound.
	IndexNotAny(set []rune, from int) int

	// LastIndexAny returns the highest index <= before holding any rune in
	// set, or NotFound. before is clamped to Len()-1.
	LastIndexAny(set []rune, before int) int

	// LastIndexNotAny returns the highest index <= before holding a rune
	// not in set, or NotFound. before is clamped to Len()-1.
	LastIndexNotAny(set []rune, before int) int

	// Compare lexicographically compares the contents against other,
	// returning a negative value, zero, or a positive value.
	Compare(other []rune) int
}
