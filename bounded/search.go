// File: search.go
// Title: Search Operations
// Description: Implements the find family as pass-throughs to the backing
//              store. All positions are rune indices; NotFound marks a
//              miss, and ToEnd is the "remainder" count sentinel used by
//              slicing operations.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with find family

package bounded

import (
	"github.com/aprotyas/BoundedString/store"
)

// NotFound is returned by search operations when no match exists.
const NotFound = store.NotFound

// ToEnd as a count argument requests the remainder of the source.
const ToEnd = -1

// Index returns the lowest rune index >= from where sub begins, or
// NotFound. An empty sub matches at from when from <= Len().
func (s *String[B]) Index(sub string, from int) int {
	return s.view().Index([]rune(sub), from)
}

// LastIndex returns the highest rune index <= before where sub begins, or
// NotFound. before is clamped to Len().
func (s *String[B]) LastIndex(sub string, before int) int {
	return s.view().LastIndex([]rune(sub), before)
}

// IndexAny returns the lowest rune index >= from holding any rune of set,
// or NotFound.
func (s *String[B]) IndexAny(set string, from int) int {
	return s.view().IndexAny([]rune(set), from)
}

// IndexNotAny returns the lowest rune index >= from holding a rune not in
// set, or NotFound.
func (s *String[B]) IndexNotAny(set string, from int) int {
	return s.view().IndexNotAny([]rune(set), from)
}

// LastIndexAny returns the highest rune index <= before holding any rune
// of set, or NotFound. before is clamped to Len()-1.
func (s *String[B]) LastIndexAny(set string, before int) int {
	return s.view().LastIndexAny([]rune(set), before)
}

// LastIndexNotAny returns the highest rune index <= before holding a rune
// not in set, or NotFound. before is clamped to Len()-1.
func (s *String[B]) LastIndexNotAny(set string, before int) int {
	return s.view().LastIndexNotAny([]rune(set), before)
}

// Contains reports whether sub occurs in the contents.
func (s *String[B]) Contains(sub string) bool {
	return s.Index(sub, 0) != NotFound
}
