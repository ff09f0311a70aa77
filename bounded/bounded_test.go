// File: bounded_test.go
// Title: Core Container Tests
// Description: Tests for the container type itself: bound markers, basic
//              construction, queries, zero-value behavior, and the
//              positive-bound definition check.
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

	"github.com/aprotyas/BoundedString/store"
)

// Test bound markers
type bound3 struct{}

func (bound3) Max() int { return 3 }

type bound5 struct{}

func (bound5) Max() int { return 5 }

type boundZero struct{}

func (boundZero) Max() int { return 0 }

type boundNegative struct{}

func (boundNegative) Max() int { return -2 }

// mustFrom builds a container or fails the test.
func mustFrom[B Bound](t *testing.T, v string) *String[B] {
	t.Helper()
	s, err := FromString[B](v)
	if err != nil {
		t.Fatalf("FromString(%q) failed: %v", v, err)
	}
	return s
}

func TestNew(t *testing.T) {
	s := New[bound5]()

	if s.Len() != 0 {
		t.Errorf("Len() = %d; want 0", s.Len())
	}
	if !s.Empty() {
		t.Error("Empty() = false; want true")
	}
	if s.String() != "" {
		t.Errorf("String() = %q; want empty", s.String())
	}
	if s.Bound() != 5 {
		t.Errorf("Bound() = %d; want 5", s.Bound())
	}
}

func TestBoundFor(t *testing.T) {
	if got := BoundFor[bound3](); got != 3 {
		t.Errorf("BoundFor[bound3]() = %d; want 3", got)
	}
	if got := BoundFor[B64](); got != 64 {
		t.Errorf("BoundFor[B64]() = %d; want 64", got)
	}
}

func TestPredefinedBounds(t *testing.T) {
	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"B8", BoundFor[B8](), 8},
		{"B16", BoundFor[B16](), 16},
		{"B32", BoundFor[B32](), 32},
		{"B64", BoundFor[B64](), 64},
		{"B128", BoundFor[B128](), 128},
		{"B256", BoundFor[B256](), 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("bound = %d; want %d", tt.got, tt.expected)
			}
		})
	}
}

func TestZeroBoundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a zero-capacity specialization must panic on first use")
		}
	}()
	New[boundZero]()
}

func TestNegativeBoundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a negative-capacity specialization must panic on first use")
		}
	}()
	New[boundNegative]()
}

func TestZeroValueUsable(t *testing.T) {
	var s String[bound5]

	if s.Len() != 0 {
		t.Errorf("zero value Len() = %d; want 0", s.Len())
	}
	if s.String() != "" {
		t.Errorf("zero value String() = %q; want empty", s.String())
	}
	if s.Index("x", 0) != NotFound {
		t.Error("zero value search should report NotFound")
	}

	if err := s.Set("abc"); err != nil {
		t.Fatalf("Set on zero value failed: %v", err)
	}
	if s.String() != "abc" {
		t.Errorf("String() = %q; want %q", s.String(), "abc")
	}
}

func TestNewWithStore(t *testing.T) {
	t.Run("adopts a fitting store", func(t *testing.T) {
		st := store.NewRuneBufferFromString("hey")
		s, err := NewWithStore[bound5](st)
		if err != nil {
			t.Fatalf("NewWithStore failed: %v", err)
		}
		if s.String() != "hey" {
			t.Errorf("String() = %q; want %q", s.String(), "hey")
		}
	})

	t.Run("rejects nil store", func(t *testing.T) {
		s, err := NewWithStore[bound5](nil)
		if !IsInvalidArgument(err) {
			t.Errorf("err = %v; want InvalidArgument", err)
		}
		if s != nil {
			t.Error("no usable object may escape a failed construction")
		}
	})

	t.Run("rejects over-long store", func(t *testing.T) {
		st := store.NewRuneBufferFromString("too long for five")
		s, err := NewWithStore[bound5](st)
		if !IsCapacityExceeded(err) {
			t.Errorf("err = %v; want CapacityExceeded", err)
		}
		if s != nil {
			t.Error("no usable object may escape a failed construction")
		}
	})
}

// TestInvariantUnderOperationSequence drives one instance through a mixed
// sequence of successful operations and checks the length bound after each.
func TestInvariantUnderOperationSequence(t *testing.T) {
	s := New[bound5]()

	steps := []struct {
		name string
		run  func() error
	}{
		{"set he", func() error { return s.Set("he") }},
		{"insert llo", func() error { return s.Insert(2, "llo") }},
		{"erase middle", func() error { return s.Erase(1, 2) }},
		{"push", func() error { return s.Push('p') }},
		{"append", func() error { return s.Append("q") }},
		{"pop", func() error { return s.PopBack() }},
		{"set repeat", func() error { return s.SetRepeat(5, 'x') }},
		{"clear", func() error { s.Clear(); return nil }},
		{"set again", func() error { return s.Set("done!") }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			t.Fatalf("step %q failed: %v", step.name, err)
		}
		if s.Len() > s.Bound() {
			t.Fatalf("step %q violated the bound: Len() = %d", step.name, s.Len())
		}
	}

	if s.String() != "done!" {
		t.Errorf("final contents = %q; want %q", s.String(), "done!")
	}
}

func TestUnicodeLengthIsRunes(t *testing.T) {
	s := mustFrom[bound5](t, "こんにちは")

	if s.Len() != 5 {
		t.Errorf("Len() = %d; want 5 runes", s.Len())
	}
	if len(s.Bytes()) <= 5 {
		t.Errorf("Bytes() length = %d; want more bytes than runes", len(s.Bytes()))
	}

	// The slot is full; one more rune must be rejected.
	if err := s.Push('!'); !IsCapacityExceeded(err) {
		t.Errorf("Push on full container: err = %v; want CapacityExceeded", err)
	}
}
