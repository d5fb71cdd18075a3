package storage

import "errors"

var (
	ErrNotFound    = errors.New("storage: payload not found")
	ErrInvalidCID  = errors.New("storage: invalid cid")
	ErrCIDMismatch = errors.New("storage: cid mismatch")
	ErrImmutable   = errors.New("storage: immutable payload mismatch")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
