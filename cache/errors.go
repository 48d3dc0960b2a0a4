// Package cache implements a read-through cache over an emulated address
// space whose authoritative contents may live in an external target
// process. On a read miss the cache asks a pluggable fill strategy to
// capture the missing bytes from the live source, bounded by a fixed
// wait deadline, then re-checks what is still unknown and surfaces a
// non-fatal warning for bytes that could not be resolved.
package cache

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Reason classifies why a target access failed. The single AccessError
// category keeps handling uniform (a failed access aborts the one read
// that needed it) while the reason stays inspectable for diagnostics.
type Reason int

const (
	// ReasonTimeout means the bounded wait on a pending capture expired.
	ReasonTimeout Reason = iota + 1
	// ReasonExecution means the capture itself failed, or the waiting
	// caller was cancelled.
	ReasonExecution
)

// String returns a human-readable representation of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonExecution:
		return "execution failure"
	default:
		return "UNKNOWN"
	}
}

// AccessError reports a failed access to the live target. Op and ID name
// the pending operation that was being waited on.
type AccessError struct {
	Reason Reason
	Op     string
	ID     uuid.UUID
	Err    error
}

// Error implements error.
func (e *AccessError) Error() string {
	switch e.Reason {
	case ReasonTimeout:
		return fmt.Sprintf("timed out reading or writing target: %s (%s)", e.Op, e.ID)
	default:
		return fmt.Sprintf("error reading or writing target: %s (%s): %v", e.Op, e.ID, e.Err)
	}
}

// Unwrap exposes the underlying cause, if any.
func (e *AccessError) Unwrap() error {
	return e.Err
}

// AsAccessError unwraps err to an AccessError if one is in its chain.
func AsAccessError(err error) (*AccessError, bool) {
	var ae *AccessError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsTimeout reports whether err is an access error caused by the bounded
// wait deadline expiring.
func IsTimeout(err error) bool {
	ae, ok := AsAccessError(err)
	return ok && ae.Reason == ReasonTimeout
}
