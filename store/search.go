// File: search.go
// Title: Rune Buffer Search Operations
// Description: Implements the Store search surface for RuneBuffer. All
//              searches run over rune indices, never byte offsets, so
//              results line up with every other position in the module.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with find-family searches

package store

// Index returns the lowest index >= from where needle begins, or NotFound.
// An empty needle matches at from when from <= Len().
func (b *RuneBuffer) Index(needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(b.runes) {
		return NotFound
	}
	if len(needle) == 0 {
		return from
	}
	for i := from; i+len(needle) <= len(b.runes); i++ {
		if runesMatchAt(b.runes, i, needle) {
			return i
		}
	}
	return NotFound
}

// LastIndex returns the highest index <= before where needle begins, or
// NotFound. before is clamped to Len().
func (b *RuneBuffer) LastIndex(needle []rune, before int) int {
	if before < 0 {
		return NotFound
	}
	if before > len(b.runes) {
		before = len(b.runes)
	}
	if len(needle) == 0 {
		return before
	}
	start := before
	if start > len(b.runes)-len(needle) {
		start = len(b.runes) - len(needle)
	}
	for i := start; i >= 0; i-- {
		if runesMatchAt(b.runes, i, needle) {
			return i
		}
	}
	return NotFound
}

// IndexAny returns the lowest index >= from holding any rune in set, or
// NotFound.
func (b *RuneBuffer) IndexAny(set []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(b.runes); i++ {
		if runeInSet(b.runes[i], set) {
			return i
		}
	}
	return NotFound
}

// IndexNotAny returns the lowest index >= from holding a rune not in set,
// or NotFound.
func (b *RuneBuffer) IndexNotAny(set []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(b.runes); i++ {
		if !runeInSet(b.runes[i], set) {
			return i
		}
	}
	return NotFound
}

// LastIndexAny returns the highest index <= before holding any rune in set,
// or NotFound. before is clamped to Len()-1.
func (b *RuneBuffer) LastIndexAny(set []rune, before int) int {
	if before > len(b.runes)-1 {
		before = len(b.runes) - 1
	}
	for i := before; i >= 0; i-- {
		if runeInSet(b.runes[i], set) {
			return i
		}
	}
	return NotFound
}

// LastIndexNotAny returns the highest index <= before holding a rune not in
// set, or NotFound. before is clamped to Len()-1.
func (b *RuneBuffer) LastIndexNotAny(set []rune, before int) int {
	if before > len(b.runes)-1 {
		before = len(b.runes) - 1
	}
	for i := before; i >= 0; i-- {
		if !runeInSet(b.runes[i], set) {
			return i
		}
	}
	return NotFound
}

// runesMatchAt reports whether needle occurs in haystack starting at i
func runesMatchAt(haystack []rune, i int, needle []rune) bool {
	for j, r := range needle {
		if haystack[i+j] != r {
			return false
		}
	}
	return true
}

// runeInSet reports whether r occurs in set
func runeInSet(r rune, set []rune) bool {
	for _, s := range set {
		if s == r {
			return true
		}
	}
	return false
}
