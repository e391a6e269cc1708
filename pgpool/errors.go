package pgpool

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pool failures.
type ErrorKind int

const (
	// KindCorrupted covers any failure of the underlying connect or query
	// call: unreachable host, bad credentials, malformed connection string,
	// exhausted pool. The underlying message is preserved on the cause.
	KindCorrupted ErrorKind = iota

	// KindAlreadyOpen signals that another process-local handle already
	// holds an exclusive claim on the same connection string.
	KindAlreadyOpen
)

// Error is the sanitized failure type returned by the pool layer. Its
// message never contains the connection string; the wrapped cause may still
// carry sensitive detail and should only reach trusted logs.
type Error struct {
	Kind  ErrorKind
	msg   string
	cause error
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.cause }

func newCorrupted(msg string, cause error) *Error {
	return &Error{Kind: KindCorrupted, msg: msg, cause: cause}
}

func newAlreadyOpen() *Error {
	return &Error{Kind: KindAlreadyOpen, msg: "pool already open: cannot acquire exclusive claim"}
}

// WrapQueryError converts a query-time failure into the store-layer error
// shape, preserving the underlying message. A nil input stays nil.
func WrapQueryError(err error) error {
	if err == nil {
		return nil
	}
	return newCorrupted(fmt.Sprintf("store error: %v", err), err)
}

// IsAlreadyOpen reports whether the error carries an exclusive-claim
// conflict.
func IsAlreadyOpen(err error) bool {
	var poolErr *Error
	return errors.As(err, &poolErr) && poolErr.Kind == KindAlreadyOpen
}

// IsCorrupted reports whether the error is a connectivity or query failure
// from the backing store.
func IsCorrupted(err error) bool {
	var poolErr *Error
	return errors.As(err, &poolErr) && poolErr.Kind == KindCorrupted
}
