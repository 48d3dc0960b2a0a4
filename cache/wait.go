package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultWaitTimeout bounds how long a read blocks on a pending capture.
const DefaultWaitTimeout = 1 * time.Second

// Pending is the handle for an in-flight asynchronous operation against
// the live target. The producer resolves it exactly once with Complete or
// Fail; consumers observe it through Await.
//
// A Pending abandoned by a timed-out Await may still resolve later; the
// outcome channel is buffered so the producer never blocks on a consumer
// that has given up.
type Pending[T any] struct {
	id    uuid.UUID
	label string
	ch    chan outcome[T]
}

type outcome[T any] struct {
	value T
	err   error
}

// NewPending creates an unresolved handle. The label names the operation
// for diagnostics (e.g. "capture ram [0x104-0x108)").
func NewPending[T any](label string) *Pending[T] {
	return &Pending[T]{
		id:    uuid.New(),
		label: label,
		ch:    make(chan outcome[T], 1),
	}
}

// ID returns the operation's identity.
func (p *Pending[T]) ID() uuid.UUID {
	return p.id
}

// Label returns the operation's diagnostic label.
func (p *Pending[T]) Label() string {
	return p.label
}

// Complete resolves the operation with a value. Only the first of
// Complete/Fail takes effect; later calls are dropped.
func (p *Pending[T]) Complete(v T) {
	select {
	case p.ch <- outcome[T]{value: v}:
	default:
	}
}

// Fail resolves the operation with an error.
func (p *Pending[T]) Fail(err error) {
	select {
	case p.ch <- outcome[T]{err: err}:
	default:
	}
}

// Await blocks until p resolves, ctx is cancelled, or timeout elapses
// (timeout <= 0 means DefaultWaitTimeout). A resolution within the
// deadline yields the value or an AccessError with ReasonExecution; a
// missed deadline yields ReasonTimeout; cancellation yields
// ReasonExecution wrapping the context error.
//
// On timeout the operation is abandoned, not cancelled: it may still
// resolve in the background and its effects are reconciled by a later
// read.
func Await[T any](ctx context.Context, p *Pending[T], timeout time.Duration) (T, error) {
	var zero T
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-p.ch:
		if out.err != nil {
			return zero, &AccessError{Reason: ReasonExecution, Op: p.label, ID: p.id, Err: out.err}
		}
		return out.value, nil
	case <-timer.C:
		return zero, &AccessError{Reason: ReasonTimeout, Op: p.label, ID: p.id}
	case <-ctx.Done():
		return zero, &AccessError{Reason: ReasonExecution, Op: p.label, ID: p.id, Err: ctx.Err()}
	}
}
