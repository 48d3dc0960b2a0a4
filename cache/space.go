package cache

import (
	"context"

	"github.com/pafh99/livemem/addrs"
	"github.com/pafh99/livemem/store"
)

// CachedSpace wraps the byte store of one address space with the
// read-through fill protocol: detect unknown sub-ranges, let the fill
// strategy capture them from the live source, re-check against the
// authoritative shim, and warn when bytes stay unresolved.
type CachedSpace struct {
	space   addrs.Space
	bytes   store.ByteStore
	backing Backing // nil means static cache, no live source
	access  DataAccess
	handler FillHandler
}

// NewCachedSpace builds the cache for one space. backing may be nil.
func NewCachedSpace(space addrs.Space, bytes store.ByteStore, backing Backing, access DataAccess, handler FillHandler) *CachedSpace {
	return &CachedSpace{
		space:   space,
		bytes:   bytes,
		backing: backing,
		access:  access,
		handler: handler,
	}
}

// Space returns the address space this cache serves.
func (c *CachedSpace) Space() addrs.Space {
	return c.space
}

// Bytes returns the underlying byte store.
func (c *CachedSpace) Bytes() store.ByteStore {
	return c.bytes
}

// Read returns size bytes at offset, capturing unknown bytes from the
// live source first when one is available. The returned slice always has
// size bytes; offsets that could not be resolved carry placeholder
// values, reported through the warn hook rather than an error. An error
// is returned only when the fill step itself fails (timeout or execution
// failure), and aborts just this read.
func (c *CachedSpace) Read(ctx context.Context, offset uint64, size int) ([]byte, error) {
	uninit := c.bytes.Uninitialized(offset, size)
	if uninit.IsEmpty() || c.backing == nil {
		return c.bytes.Read(offset, size), nil
	}

	if err := c.handler.FillUninitialized(ctx, c.space, uninit); err != nil {
		return nil, err
	}

	// The fill may have partially succeeded (target gone, range unmapped).
	// The shim decides authoritatively what is still unknown; stale bytes
	// must not be passed off silently as captured ones.
	unknown := c.access.IntersectUnknown(c.space, c.bytes.Uninitialized(offset, size))
	if !unknown.IsEmpty() {
		c.handler.WarnUnknown(c.space, unknown)
	}

	return c.bytes.Read(offset, size), nil
}

// Write stores data at offset, marking those bytes known. Writes are
// local to the cache; nothing is pushed back to the live source here.
func (c *CachedSpace) Write(ctx context.Context, offset uint64, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.bytes.Write(offset, data)
	return nil
}
