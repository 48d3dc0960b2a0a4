package store

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/pafh99/livemem/addrs"
)

// PageSize is the granularity at which the buffer allocates storage.
const PageSize = 4096

// Buffer is a sparse paged ByteStore covering the full 64-bit offset
// range. Pages are allocated on first write; unwritten offsets read as
// zero and report as uninitialized. A known-bit per byte is kept in a
// per-page bitset.
//
// Buffer is not safe for concurrent use; each cached space mutates only
// its own buffer (single writer per space).
type Buffer struct {
	pages map[uint64]*page
}

type page struct {
	data  [PageSize]byte
	known *bitset.BitSet
}

// NewBuffer creates an empty buffer with every offset unknown.
func NewBuffer() *Buffer {
	return &Buffer{pages: make(map[uint64]*page)}
}

// Read implements ByteStore.Read.
func (b *Buffer) Read(offset uint64, size int) []byte {
	out := make([]byte, size)
	b.walk(offset, size, func(p *page, pageOff, bufOff, n int) {
		if p != nil {
			copy(out[bufOff:bufOff+n], p.data[pageOff:pageOff+n])
		}
	})
	return out
}

// Write implements ByteStore.Write.
func (b *Buffer) Write(offset uint64, data []byte) {
	base := offset
	for len(data) > 0 {
		p := b.page(base, true)
		pageOff := int(base % PageSize)
		n := min(PageSize-pageOff, len(data))
		copy(p.data[pageOff:pageOff+n], data[:n])
		for i := 0; i < n; i++ {
			p.known.Set(uint(pageOff + i))
		}
		data = data[n:]
		base += uint64(n)
	}
}

// Uninitialized implements ByteStore.Uninitialized.
func (b *Buffer) Uninitialized(offset uint64, size int) addrs.RangeSet {
	var runs []addrs.Range
	var cur addrs.Range
	b.walk(offset, size, func(p *page, pageOff, bufOff, n int) {
		for i := 0; i < n; i++ {
			at := offset + uint64(bufOff+i)
			if p == nil || !p.known.Test(uint(pageOff+i)) {
				if cur.IsEmpty() {
					cur = addrs.Range{Start: at, End: at + 1}
				} else {
					cur.End = at + 1
				}
				continue
			}
			if !cur.IsEmpty() {
				runs = append(runs, cur)
				cur = addrs.Range{}
			}
		}
	})
	if !cur.IsEmpty() {
		runs = append(runs, cur)
	}
	return addrs.NewRangeSet(runs...)
}

// Forget flips every byte in set back to unknown. The surrounding
// framework uses this when cached bytes are invalidated externally; the
// cache itself never forgets.
func (b *Buffer) Forget(set addrs.RangeSet) {
	for _, r := range set.Ranges() {
		b.walk(r.Start, int(r.Len()), func(p *page, pageOff, bufOff, n int) {
			if p == nil {
				return
			}
			for i := 0; i < n; i++ {
				p.known.Clear(uint(pageOff + i))
			}
		})
	}
}

// KnownBytes returns the total number of known bytes held.
func (b *Buffer) KnownBytes() uint64 {
	var n uint64
	for _, p := range b.pages {
		n += uint64(p.known.Count())
	}
	return n
}

func (b *Buffer) page(offset uint64, create bool) *page {
	key := offset / PageSize
	p, ok := b.pages[key]
	if !ok && create {
		p = &page{known: bitset.New(PageSize)}
		b.pages[key] = p
	}
	return p
}

// walk visits the page-aligned chunks of [offset, offset+size), passing a
// nil page for unallocated chunks. pageOff is the chunk's offset within
// its page, bufOff its offset within the request.
func (b *Buffer) walk(offset uint64, size int, visit func(p *page, pageOff, bufOff, n int)) {
	bufOff := 0
	for bufOff < size {
		at := offset + uint64(bufOff)
		pageOff := int(at % PageSize)
		n := min(PageSize-pageOff, size-bufOff)
		visit(b.page(at, false), pageOff, bufOff, n)
		bufOff += n
	}
}
