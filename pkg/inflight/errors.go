package inflight

import "errors"

var (
	// ErrLocked is returned by Acquire when the key is already held.
	ErrLocked = errors.New("inflight: key is locked")

	// ErrEmptyKey is returned by Acquire for an empty key.
	ErrEmptyKey = errors.New("inflight: empty key")

	// ErrClosed is returned by Acquire after Close.
	ErrClosed = errors.New("inflight: locker closed")
)
