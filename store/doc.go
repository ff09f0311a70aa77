// File: doc.go
// Title: Package Documentation for store
// Description: Package store provides the unbounded growable rune sequence
//              that backs the bounded container, plus the Store interface
//              it is consumed through.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

// Package store provides the backing storage for the bounded container.
//
// Overview
//
// The bounded container in package bounded enforces a length ceiling; it
// owns no character memory itself. All storage mechanics (growth,
// positional insertion, erasure, substring extraction, search) live here,
// behind the Store interface. The split has one purpose: the container's
// guard logic can be unit-tested against a fake Store that records every
// mutation, proving that failed operations never touch storage.
//
// RuneBuffer is the reference implementation, a thin wrapper over a rune
// slice. Working in runes rather than bytes keeps every index and length
// Unicode-safe; "length" throughout the module means number of characters,
// and no operation can split a multi-byte character.
//
// Contract
//
// A Store performs no length-bound checking; the container validates
// prospective lengths before delegating. Position arguments to mutating
// operations must be valid for the current contents; an impossible
// position panics, like slice indexing, because the container has already
// range-checked it. Count arguments are forgiving: a count that runs past
// the end is clamped, and a negative count means "to the end".
//
// Search operations return rune indices and use NotFound (-1) for misses,
// matching the Go convention.
//
// Thread Safety
//
// A Store has single-owner semantics. Concurrent mutation must be
// serialized by the caller; concurrent reads are safe while no writer is
// active.
package store
