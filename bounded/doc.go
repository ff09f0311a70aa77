// File: doc.go
// Title: Package Documentation for bounded
// Description: Package bounded provides a length-bounded text container:
//              a mutable rune sequence with ordinary string ergonomics
//              whose length can never exceed a bound fixed by its type.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

// Package bounded provides a length-bounded text container.
//
// Overview
//
// String[B] behaves like an ordinary growable string (construction from
// substrings and ranges, positional insertion, assignment, search) but
// additionally guarantees its length never exceeds the bound carried by
// the type parameter B. It is meant for code that stores user- or
// protocol-supplied text in a fixed-capacity slot: a wire-format field, an
// embedded buffer, a validated identifier.
//
// The central contract is strong failure safety: every operation capable
// of growing the container either succeeds and leaves the length within
// the bound, or fails and leaves the container exactly as it was. The
// prospective length is always computed from the operands before any
// storage is touched, never by mutating first and inspecting afterward.
// Overflow is rejected, never truncated.
//
// Bounds As Types
//
// A bound is a zero-size marker type implementing Bound:
//
//	type UserID struct{}
//	func (UserID) Max() int { return 24 }
//
//	id := bounded.New[UserID]()
//
// String[UserID] and String[bounded.B64] are distinct Go types, so mixing
// bounds is impossible by accident. Cross-bound work goes through explicit
// generic functions (Convert, Substring, Assign, AssignRange, InsertFrom,
// SwapBounds), each of which validates against the receiving bound.
// Predefined markers B8 through B256 cover common capacities.
//
// Lengths are counted in runes, not bytes, so multi-byte UTF-8 never
// overflows a slot sized in characters. Bytes() exposes the UTF-8 view
// for wire-format callers.
//
// Usage
//
// Construction and mutation:
//
//	name, err := bounded.FromString[bounded.B8]("hello")
//	if err != nil {
//	    // over-long input is CapacityExceeded, no object produced
//	}
//
//	err = name.Insert(2, "y")       // position-checked, then bound-checked
//	err = name.Push('!')            // single-rune append
//	err = name.Set("replacement")   // whole-contents assignment
//
// Failure handling:
//
//	if err := name.Append(suffix); bounded.IsCapacityExceeded(err) {
//	    attempted, bound, _ := bounded.CapacityDetails(err)
//	    // truncate upstream, pick a larger bound, or reject the input;
//	    // name still holds its previous contents
//	}
//
// Reading and searching:
//
//	name.Len()                  // rune count, always <= bound
//	name.Substr(1, 3)           // independent copy, count clamped
//	name.Index("ll", 0)         // rune index or bounded.NotFound
//	for i, r := range name.All() { ... }
//
// Config embedding:
//
//	type Config struct {
//	    Region bounded.String[bounded.B16] `yaml:"region"`
//	}
//
// decodes with the bound enforced: an over-long scalar fails the decode
// with CapacityExceeded before the field changes. Text, JSON (through
// encoding.TextMarshaler), YAML and TOML are supported.
//
// Error Contract
//
// Three conditions cover every failure, as codes from core/error:
// CapacityExceeded (prospective length beyond the bound; carries attempted
// length and bound), OutOfRange (invalid position for the current
// contents), and InvalidArgument (structurally impossible input such as a
// nil source). All are raised before any mutation. When a call is wrong in
// both position and capacity, position wins.
//
// The one panic in the package is the bound definition check: a marker
// type whose Max is not positive is a programming error and panics on
// first use of the specialization.
//
// Backing Store
//
// The container owns a store.Store and delegates all storage mechanics to
// it; operations that cannot grow the container (erase, clear, access,
// search, capacity queries) pass straight through. NewWithStore injects a
// custom store, which is how the tests prove the strong failure guarantee
// against a mutation-recording fake.
//
// Thread Safety
//
// A String has single-owner semantics: concurrent mutation of one
// instance must be serialized by the caller. Read-only operations may run
// concurrently while no writer is active. Operations never block and hold
// no internal locks.
package bounded
