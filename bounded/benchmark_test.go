// File: benchmark_test.go
// Title: Container Benchmarks
// Description: Benchmarks for the hot paths: append, insert, search, and
//              the capacity guard itself.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial benchmarks

package bounded

import (
	"testing"
)

func BenchmarkPush(b *testing.B) {
	s := New[B256]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Len() == 256 {
			s.Clear()
		}
		if err := s.Push('x'); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAppend(b *testing.B) {
	s := New[B256]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Len() > 248 {
			s.Clear()
		}
		if err := s.Append("chunk"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	s := New[B256]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Len() > 250 {
			s.Clear()
		}
		if err := s.Insert(s.Len()/2, "mid"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRejectedAppend(b *testing.B) {
	s, err := FromString[B8]("12345678")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Append("x"); err == nil {
			b.Fatal("append succeeded at full bound")
		}
	}
}

func BenchmarkIndex(b *testing.B) {
	s, err := newSearchHaystack()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Index("needle", 0) == NotFound {
			b.Fatal("needle not found")
		}
	}
}

// newSearchHaystack builds a haystack with the needle near the end.
func newSearchHaystack() (*String[B256], error) {
	s := New[B256]()
	if err := s.SetRepeat(200, 'h'); err != nil {
		return nil, err
	}
	if err := s.Append("needle"); err != nil {
		return nil, err
	}
	return s, nil
}

func BenchmarkSubstr(b *testing.B) {
	s, err := FromString[B64]("the quick brown fox jumps over the lazy dog")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Substr(10, 15); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkString(b *testing.B) {
	s, err := FromString[B64]("the quick brown fox jumps over the lazy dog")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.String()
	}
}
