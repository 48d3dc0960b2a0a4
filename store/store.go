// Package store holds the per-address-space byte storage backing the
// read-through cache. A store tracks, for every byte offset, whether a
// value is known yet; plain reads always succeed and return placeholder
// zeros for unknown offsets.
package store

import (
	"github.com/pafh99/livemem/addrs"
)

// ByteStore is the storage contract the cache reads through.
//
// Implementations can provide:
// - In-memory buffers seeded from snapshot image files
// - Mocked storage for unit tests
type ByteStore interface {
	// Read returns size bytes starting at offset. It never fails: offsets
	// with no known value read as zero.
	Read(offset uint64, size int) []byte

	// Write stores data at offset and marks those bytes known.
	Write(offset uint64, data []byte)

	// Uninitialized returns the sub-ranges of [offset, offset+size) whose
	// bytes are not yet known.
	Uninitialized(offset uint64, size int) addrs.RangeSet
}

// Block is a contiguous run of bytes captured from a live source,
// addressed by its starting offset.
type Block struct {
	Offset uint64
	Data   []byte
}
