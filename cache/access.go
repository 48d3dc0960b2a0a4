package cache

import (
	"context"

	"github.com/pafh99/livemem/addrs"
	"github.com/pafh99/livemem/store"
)

// Backing is the live counterpart of one address space: the authoritative
// accessor a fill strategy captures unknown bytes from. A nil Backing
// means the space has no live source and its cache is purely static.
type Backing interface {
	// ReadRanges starts an asynchronous capture of the given ranges from
	// the live source. The returned handle resolves to the captured
	// blocks; captures may be partial (unreachable sub-ranges are simply
	// absent from the result).
	ReadRanges(set addrs.RangeSet) *Pending[[]store.Block]
}

// DataAccess resolves per-space backings and answers, authoritatively,
// which bytes the live source still considers unknown. It is implemented
// by the surrounding debugger/recorder integration.
type DataAccess interface {
	// Backing returns the live accessor for space, or nil when none is
	// available.
	Backing(space addrs.Space) Backing

	// IntersectUnknown returns the subset of set whose bytes are unknown
	// from the authoritative source's perspective. May consult the live
	// source.
	IntersectUnknown(space addrs.Space, set addrs.RangeSet) addrs.RangeSet
}

// FillHandler supplies the two strategy hooks a CachedSpace delegates to:
// how missing bytes are captured and how an incomplete capture is
// surfaced.
type FillHandler interface {
	// FillUninitialized attempts to resolve the given unknown ranges,
	// writing whatever it captures into the space's byte store before
	// returning. Expected to bound any asynchronous work with Await. An
	// error aborts the read that triggered the fill.
	FillUninitialized(ctx context.Context, space addrs.Space, uninit addrs.RangeSet) error

	// WarnUnknown reports bytes that remain unknown after a fill attempt.
	// Diagnostic only; it must not fail and does not abort the read.
	WarnUnknown(space addrs.Space, unknown addrs.RangeSet)
}
