// File: search_test.go
// Title: Search Operation Tests
// Description: Tests for the find family on the bounded container. The
//              store package tests cover the algorithms exhaustively; these
//              verify the string-argument surface and rune indexing.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial test implementation

package bounded

import (
	"testing"
)

type bound10 struct{}

func (bound10) Max() int { return 10 }

func TestIndex(t *testing.T) {
	s := mustFrom[bound10](t, "abcabc")

	tests := []struct {
		name     string
		sub      string
		from     int
		expected int
	}{
		{"first match", "bc", 0, 1},
		{"second match", "bc", 2, 4},
		{"no match", "xy", 0, NotFound},
		{"empty sub matches at from", "", 3, 3},
		{"from past end", "a", 7, NotFound},
		{"negative from clamps", "a", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Index(tt.sub, tt.from); got != tt.expected {
				t.Errorf("Index(%q, %d) = %d; want %d", tt.sub, tt.from, got, tt.expected)
			}
		})
	}
}

func TestLastIndex(t *testing.T) {
	s := mustFrom[bound10](t, "abcabc")

	tests := []struct {
		name     string
		sub      string
		before   int
		expected int
	}{
		{"last match", "bc", 6, 4},
		{"bounded search", "bc", 3, 1},
		{"no match", "xy", 6, NotFound},
		{"before clamped past end", "abc", 99, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.LastIndex(tt.sub, tt.before); got != tt.expected {
				t.Errorf("LastIndex(%q, %d) = %d; want %d", tt.sub, tt.before, got, tt.expected)
			}
		})
	}
}

func TestIndexFamilyIsRuneBased(t *testing.T) {
	// Indices count runes, not bytes.
	s := mustFrom[bound10](t, "ééa")

	if got := s.Index("a", 0); got != 2 {
		t.Errorf("Index(\"a\", 0) = %d; want 2", got)
	}
	if got := s.IndexAny("xa", 0); got != 2 {
		t.Errorf("IndexAny(\"xa\", 0) = %d; want 2", got)
	}
	if got := s.IndexNotAny("é", 0); got != 2 {
		t.Errorf("IndexNotAny(\"é\", 0) = %d; want 2", got)
	}
}

func TestAnyFamily(t *testing.T) {
	s := mustFrom[bound10](t, "abc123")

	if got := s.IndexAny("0123456789", 0); got != 3 {
		t.Errorf("IndexAny digits = %d; want 3", got)
	}
	if got := s.IndexNotAny("abc", 0); got != 3 {
		t.Errorf("IndexNotAny letters = %d; want 3", got)
	}
	if got := s.LastIndexAny("abc", 5); got != 2 {
		t.Errorf("LastIndexAny letters = %d; want 2", got)
	}
	if got := s.LastIndexNotAny("0123456789", 5); got != 2 {
		t.Errorf("LastIndexNotAny digits = %d; want 2", got)
	}
	if got := s.IndexAny("xyz", 0); got != NotFound {
		t.Errorf("IndexAny no match = %d; want NotFound", got)
	}
}

func TestContains(t *testing.T) {
	s := mustFrom[bound10](t, "hello")

	if !s.Contains("ell") {
		t.Error("Contains(\"ell\") = false; want true")
	}
	if !s.Contains("") {
		t.Error("Contains(\"\") = false; want true")
	}
	if s.Contains("xyz") {
		t.Error("Contains(\"xyz\") = true; want false")
	}
}
