package addrs

import (
	"fmt"
	"sort"
	"strings"
)

// Range is a half-open span of byte offsets [Start, End) within one
// address space. A range with Start >= End is empty.
type Range struct {
	Start uint64
	End   uint64 // Exclusive (offset one past the last byte)
}

// NewRange builds the range covering size bytes starting at offset.
func NewRange(offset uint64, size int) Range {
	if size <= 0 {
		return Range{Start: offset, End: offset}
	}
	return Range{Start: offset, End: offset + uint64(size)}
}

// IsEmpty reports whether the range covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Len returns the number of bytes the range covers.
func (r Range) Len() uint64 {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether offset falls within the range.
func (r Range) Contains(offset uint64) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps reports whether the two ranges share at least one byte.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// Intersect returns the bytes common to both ranges (possibly empty).
func (r Range) Intersect(o Range) Range {
	out := Range{Start: max(r.Start, o.Start), End: min(r.End, o.End)}
	if out.IsEmpty() {
		return Range{}
	}
	return out
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[0x%X-0x%X)", r.Start, r.End)
}

// RangeSet is an ordered collection of disjoint ranges within one space.
// It is a value type: operations return new sets and never mutate their
// receiver. The zero value is the empty set.
//
// Invariant: members are sorted ascending, non-empty, and separated by at
// least one byte (adjacent members are coalesced on construction).
type RangeSet struct {
	ranges []Range
}

// NewRangeSet builds a set from the given ranges, dropping empty members
// and merging any that overlap or touch.
func NewRangeSet(ranges ...Range) RangeSet {
	in := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			in = append(in, r)
		}
	}
	if len(in) == 0 {
		return RangeSet{}
	}
	sort.Slice(in, func(i, j int) bool { return in[i].Start < in[j].Start })

	out := make([]Range, 0, len(in))
	cur := in[0]
	for _, r := range in[1:] {
		if r.Start <= cur.End {
			if r.End > cur.End {
				cur.End = r.End
			}
			continue
		}
		out = append(out, cur)
		cur = r
	}
	out = append(out, cur)
	return RangeSet{ranges: out}
}

// IsEmpty reports whether the set covers no bytes.
func (s RangeSet) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Len returns the total number of bytes the set covers.
func (s RangeSet) Len() uint64 {
	var n uint64
	for _, r := range s.ranges {
		n += r.Len()
	}
	return n
}

// Ranges returns the member ranges in ascending order. The returned slice
// is a copy; mutating it does not affect the set.
func (s RangeSet) Ranges() []Range {
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Contains reports whether offset is covered by the set.
func (s RangeSet) Contains(offset uint64) bool {
	i := sort.Search(len(s.ranges), func(i int) bool { return s.ranges[i].End > offset })
	return i < len(s.ranges) && s.ranges[i].Contains(offset)
}

// Union returns the set covering every byte in either set.
func (s RangeSet) Union(o RangeSet) RangeSet {
	return NewRangeSet(append(s.Ranges(), o.ranges...)...)
}

// Intersect returns the set covering every byte in both sets.
func (s RangeSet) Intersect(o RangeSet) RangeSet {
	var out []Range
	i, j := 0, 0
	for i < len(s.ranges) && j < len(o.ranges) {
		if r := s.ranges[i].Intersect(o.ranges[j]); !r.IsEmpty() {
			out = append(out, r)
		}
		if s.ranges[i].End < o.ranges[j].End {
			i++
		} else {
			j++
		}
	}
	return RangeSet{ranges: out}
}

// Sub returns the bytes of s not covered by o.
func (s RangeSet) Sub(o RangeSet) RangeSet {
	var out []Range
	j := 0
	for _, r := range s.ranges {
		cur := r
		for j < len(o.ranges) && o.ranges[j].End <= cur.Start {
			j++
		}
		k := j
		for k < len(o.ranges) && o.ranges[k].Start < cur.End {
			hole := o.ranges[k]
			if hole.Start > cur.Start {
				out = append(out, Range{Start: cur.Start, End: hole.Start})
			}
			if hole.End >= cur.End {
				cur = Range{}
				break
			}
			cur.Start = hole.End
			k++
		}
		if !cur.IsEmpty() {
			out = append(out, cur)
		}
	}
	return RangeSet{ranges: out}
}

// Equal reports whether both sets cover exactly the same bytes.
func (s RangeSet) Equal(o RangeSet) bool {
	if len(s.ranges) != len(o.ranges) {
		return false
	}
	for i, r := range s.ranges {
		if r != o.ranges[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the set.
func (s RangeSet) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = r.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
