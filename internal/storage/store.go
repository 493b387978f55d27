package storage

import (
	"context"
	"errors"
)

// Persisted keys shared by the widgets.
const (
	KeyCounter           = "counter"
	KeyUserData          = "userData"
	KeySubmittedUserData = "submittedUserData"
	KeyRichText          = "richTextData"
)

// Store errors
var (
	// ErrUnavailable indicates the backing store cannot be read or written
	// (quota exceeded, disabled, unreachable).
	ErrUnavailable = errors.New("store unavailable")

	// ErrMalformed indicates a stored value does not decode into the expected shape.
	ErrMalformed = errors.New("malformed stored value")
)

// Store is a string-keyed, string-valued store scoped to a single namespace.
//
// Writes are last-write-wins per key. There is no expiry and no ordering
// guarantee across keys. Backend failures are reported wrapped in ErrUnavailable.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// unavailable wraps a backend error so callers can match ErrUnavailable.
func unavailable(op, key string, err error) error {
	return &OpError{Op: op, Key: key, Err: errors.Join(ErrUnavailable, err)}
}

// OpError records a failed store operation.
type OpError struct {
	Op  string
	Key string
	Err error
}

func (e *OpError) Error() string {
	return "storage " + e.Op + " " + e.Key + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}
