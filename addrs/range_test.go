package addrs

import (
	"testing"
)

func TestRange_Basics(t *testing.T) {
	r := NewRange(0x100, 16)
	if r.Start != 0x100 || r.End != 0x110 {
		t.Fatalf("unexpected range: %s", r)
	}
	if r.Len() != 16 {
		t.Fatalf("expected length 16, got %d", r.Len())
	}
	if !r.Contains(0x100) || !r.Contains(0x10F) || r.Contains(0x110) {
		t.Fatalf("containment wrong for %s", r)
	}
	if !NewRange(0x100, 0).IsEmpty() {
		t.Fatal("zero-size range should be empty")
	}
}

func TestRange_Overlaps(t *testing.T) {
	a := NewRange(0x1000, 0x100)
	tests := []struct {
		name string
		b    Range
		want bool
	}{
		{"disjoint below", NewRange(0x0, 0x100), false},
		{"touching below", NewRange(0xF00, 0x100), false},
		{"overlap low", NewRange(0xFFF, 2), true},
		{"inside", NewRange(0x1040, 4), true},
		{"overlap high", NewRange(0x10FF, 0x10), true},
		{"touching above", NewRange(0x1100, 0x100), false},
	}
	for _, tc := range tests {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps(%s, %s) = %v, want %v", tc.name, a, tc.b, got, tc.want)
		}
	}
}

func TestRangeSet_Normalization(t *testing.T) {
	// Out of order, overlapping, adjacent and empty input ranges must
	// collapse to a sorted disjoint set.
	s := NewRangeSet(
		NewRange(0x200, 0x10),
		NewRange(0x100, 0x80),
		NewRange(0x180, 0x20), // adjacent to previous, coalesces
		NewRange(0x205, 0x20), // overlaps first
		NewRange(0x500, 0),    // empty, dropped
	)
	want := []Range{
		{Start: 0x100, End: 0x1A0},
		{Start: 0x200, End: 0x225},
	}
	got := s.Ranges()
	if len(got) != len(want) {
		t.Fatalf("expected %d ranges, got %v", len(want), s)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if s.Len() != 0xA0+0x25 {
		t.Fatalf("unexpected byte count %d", s.Len())
	}
}

func TestRangeSet_Empty(t *testing.T) {
	var zero RangeSet
	if !zero.IsEmpty() {
		t.Fatal("zero value should be empty")
	}
	if !NewRangeSet().IsEmpty() {
		t.Fatal("no-arg constructor should be empty")
	}
	if got := zero.Union(NewRangeSet(NewRange(0x10, 4))); got.Len() != 4 {
		t.Fatalf("union with empty lost bytes: %s", got)
	}
	if got := zero.Intersect(NewRangeSet(NewRange(0x10, 4))); !got.IsEmpty() {
		t.Fatalf("intersect with empty should be empty, got %s", got)
	}
}

func TestRangeSet_Intersect(t *testing.T) {
	a := NewRangeSet(NewRange(0x100, 0x100), NewRange(0x300, 0x100))
	b := NewRangeSet(NewRange(0x180, 0x200))
	got := a.Intersect(b)
	want := NewRangeSet(NewRange(0x180, 0x80), NewRange(0x300, 0x80))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
	// Intersection is symmetric.
	if !b.Intersect(a).Equal(want) {
		t.Fatalf("asymmetric intersection: %s", b.Intersect(a))
	}
}

func TestRangeSet_Sub(t *testing.T) {
	a := NewRangeSet(NewRange(0x100, 0x10))
	holes := NewRangeSet(NewRange(0x104, 4), NewRange(0x10C, 8))
	got := a.Sub(holes)
	want := NewRangeSet(NewRange(0x100, 4), NewRange(0x108, 4))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
	if !a.Sub(a).IsEmpty() {
		t.Fatal("subtracting a set from itself should be empty")
	}
	if !a.Sub(NewRangeSet()).Equal(a) {
		t.Fatal("subtracting empty should be identity")
	}
}

func TestRangeSet_Contains(t *testing.T) {
	s := NewRangeSet(NewRange(0x100, 0x10), NewRange(0x300, 0x10))
	for _, offset := range []uint64{0x100, 0x10F, 0x300, 0x30F} {
		if !s.Contains(offset) {
			t.Errorf("expected 0x%X in %s", offset, s)
		}
	}
	for _, offset := range []uint64{0x0FF, 0x110, 0x2FF, 0x310} {
		if s.Contains(offset) {
			t.Errorf("expected 0x%X outside %s", offset, s)
		}
	}
}

func TestSpace_Keys(t *testing.T) {
	ram := MemorySpace("ram")
	regs := RegisterSpace("regs")
	if ram == regs {
		t.Fatal("distinct spaces compare equal")
	}
	if ram != MemorySpace("ram") {
		t.Fatal("equal spaces compare unequal")
	}
	m := map[Space]int{ram: 1, regs: 2}
	if m[MemorySpace("ram")] != 1 {
		t.Fatal("space does not key a map by value")
	}
}
