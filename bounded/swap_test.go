// File: swap_test.go
// Title: Content Exchange Tests
// Description: Tests for same-bound and cross-bound swapping, including the
//              all-or-nothing guarantee when a cross-bound swap fails.
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

func TestSwap(t *testing.T) {
	a := mustFrom[bound5](t, "abc")
	b := mustFrom[bound5](t, "xy")

	a.Swap(b)

	if a.String() != "xy" {
		t.Errorf("a = %q after Swap; want %q", a.String(), "xy")
	}
	if b.String() != "abc" {
		t.Errorf("b = %q after Swap; want %q", b.String(), "abc")
	}
}

func TestSwapSelfAndNil(t *testing.T) {
	a := mustFrom[bound5](t, "abc")

	a.Swap(a)
	if a.String() != "abc" {
		t.Errorf("a = %q after self swap; want %q", a.String(), "abc")
	}

	a.Swap(nil)
	if a.String() != "abc" {
		t.Errorf("a = %q after nil swap; want %q", a.String(), "abc")
	}
}

func TestSwapBounds(t *testing.T) {
	a := mustFrom[bound3](t, "ab")
	b := mustFrom[bound5](t, "xyz")

	if err := SwapBounds(a, b); err != nil {
		t.Fatalf("SwapBounds failed: %v", err)
	}
	if a.String() != "xyz" {
		t.Errorf("a = %q after SwapBounds; want %q", a.String(), "xyz")
	}
	if b.String() != "ab" {
		t.Errorf("b = %q after SwapBounds; want %q", b.String(), "ab")
	}
}

func TestSwapBoundsRejectsOversized(t *testing.T) {
	// b's contents would not fit a's bound; neither side may change.
	a := mustFrom[bound3](t, "ab")
	b := mustFrom[bound5](t, "hello")

	err := SwapBounds(a, b)
	if !IsCapacityExceeded(err) {
		t.Fatalf("err = %v; want CapacityExceeded", err)
	}

	attempted, bound, ok := CapacityDetails(err)
	if !ok || attempted != 5 || bound != 3 {
		t.Errorf("details = (%d, %d, %v); want (5, 3, true)", attempted, bound, ok)
	}

	if a.String() != "ab" {
		t.Errorf("a = %q after failed SwapBounds; want %q", a.String(), "ab")
	}
	if b.String() != "hello" {
		t.Errorf("b = %q after failed SwapBounds; want %q", b.String(), "hello")
	}
}

func TestSwapBoundsRejectsOversizedEitherDirection(t *testing.T) {
	// The other direction fails the same way.
	a := mustFrom[bound5](t, "hello")
	b := mustFrom[bound3](t, "ab")

	err := SwapBounds(a, b)
	if !IsCapacityExceeded(err) {
		t.Fatalf("err = %v; want CapacityExceeded", err)
	}
	if a.String() != "hello" || b.String() != "ab" {
		t.Errorf("contents = %q, %q after failed SwapBounds; want unchanged", a.String(), b.String())
	}
}

func TestSwapBoundsNil(t *testing.T) {
	a := mustFrom[bound3](t, "ab")

	if err := SwapBounds[bound3, bound5](a, nil); !IsInvalidArgument(err) {
		t.Errorf("err = %v; want InvalidArgument", err)
	}
	if err := SwapBounds[bound5, bound3](nil, a); !IsInvalidArgument(err) {
		t.Errorf("err = %v; want InvalidArgument", err)
	}
}
