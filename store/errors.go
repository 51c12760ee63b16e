package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind classifies a store failure so callers can branch on it instead
// of matching message strings.
type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindNotFound
	KindStorage
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotFound:
		return "not found"
	case KindStorage:
		return "storage"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error wraps a failure with its kind and the operation that produced
// it. Driver detail stays inside Err and is never sent to clients.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a store error.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the kind from err, or 0 when err carries none.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// wrap classifies a driver error. Record-not-found and context
// deadlines get their own kinds; everything else is an opaque storage
// failure.
func wrap(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return E(KindNotFound, op, err)
	case errors.Is(err, context.DeadlineExceeded):
		return E(KindTimeout, op, err)
	default:
		return E(KindStorage, op, err)
	}
}
