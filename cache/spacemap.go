package cache

import (
	"sync"

	"github.com/pafh99/livemem/addrs"
)

// BuildSpace constructs the CachedSpace for a space whose backing has
// just been resolved (backing may be nil).
type BuildSpace func(space addrs.Space, backing Backing) *CachedSpace

// SpaceMap lazily creates and retains one CachedSpace per address space.
// The backing handle is resolved through the DataAccess shim exactly once
// per distinct space, at creation; entries are never evicted and live as
// long as the owning state piece. Safe for concurrent first access across
// spaces.
type SpaceMap struct {
	access DataAccess
	build  BuildSpace

	mu      sync.RWMutex
	entries map[addrs.Space]*CachedSpace
}

// NewSpaceMap creates an empty registry.
func NewSpaceMap(access DataAccess, build BuildSpace) *SpaceMap {
	return &SpaceMap{
		access:  access,
		build:   build,
		entries: make(map[addrs.Space]*CachedSpace),
	}
}

// GetOrCreate returns the cache for space, creating it on first request.
// Creation is idempotent: every call for the same space returns the same
// instance.
func (m *SpaceMap) GetOrCreate(space addrs.Space) *CachedSpace {
	m.mu.RLock()
	cs, ok := m.entries[space]
	m.mu.RUnlock()
	if ok {
		return cs
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cs, ok := m.entries[space]; ok {
		return cs
	}
	cs = m.build(space, m.access.Backing(space))
	m.entries[space] = cs
	return cs
}

// Spaces returns the spaces with a live entry, in no particular order.
func (m *SpaceMap) Spaces() []addrs.Space {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]addrs.Space, 0, len(m.entries))
	for space := range m.entries {
		out = append(out, space)
	}
	return out
}
