package cache

import (
	"context"

	"github.com/pafh99/livemem/addrs"
	"github.com/pafh99/livemem/store"
)

// FillFactory builds the fill strategy for a newly created space. bytes
// is the space's own byte store. backing may be nil (no live source);
// the cache never fills such a space, but a handler is still required
// so the choice of strategy stays with the factory.
type FillFactory func(space addrs.Space, backing Backing, bytes store.ByteStore) FillHandler

// StatePiece owns the data-access shim and the per-space cache registry,
// and is the surface the surrounding execution-state framework reads and
// writes through during emulation.
type StatePiece struct {
	access DataAccess
	spaces *SpaceMap
}

// NewStatePiece wires a piece: each space requested of it gets a fresh
// Buffer byte store and the factory's fill strategy.
func NewStatePiece(access DataAccess, fills FillFactory) *StatePiece {
	p := &StatePiece{access: access}
	p.spaces = NewSpaceMap(access, func(space addrs.Space, backing Backing) *CachedSpace {
		bytes := store.NewBuffer()
		return NewCachedSpace(space, bytes, backing, access, fills(space, backing, bytes))
	})
	return p
}

// Access returns the data-access shim this piece was built over.
func (p *StatePiece) Access() DataAccess {
	return p.access
}

// Space returns the cache serving the given address space, creating it on
// first use.
func (p *StatePiece) Space(space addrs.Space) *CachedSpace {
	return p.spaces.GetOrCreate(space)
}

// Read reads size bytes at offset within space, through the space's
// cache.
func (p *StatePiece) Read(ctx context.Context, space addrs.Space, offset uint64, size int) ([]byte, error) {
	return p.Space(space).Read(ctx, offset, size)
}

// Write stores data at offset within space.
func (p *StatePiece) Write(ctx context.Context, space addrs.Space, offset uint64, data []byte) error {
	return p.Space(space).Write(ctx, offset, data)
}
