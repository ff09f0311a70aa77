// File: bounds.go
// Title: Predefined Bound Markers
// Description: Provides ready-made Bound marker types for common capacities.
//              Callers needing another capacity define their own marker:
//              a zero-size type whose Max returns the bound.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with power-of-two bounds

package bounded

// B8 bounds a String at 8 runes.
type B8 struct{}

// Max returns 8.
func (B8) Max() int { return 8 }

// B16 bounds a String at 16 runes.
type B16 struct{}

// Max returns 16.
func (B16) Max() int { return 16 }

// B32 bounds a String at 32 runes.
type B32 struct{}

// Max returns 32.
func (B32) Max() int { return 32 }

// B64 bounds a String at 64 runes.
type B64 struct{}

// Max returns 64.
func (B64) Max() int { return 64 }

// B128 bounds a String at 128 runes.
type B128 struct{}

// Max returns 128.
func (B128) Max() int { return 128 }

// B256 bounds a String at 256 runes.
type B256 struct{}

// Max returns 256.
func (B256) Max() int { return 256 }
