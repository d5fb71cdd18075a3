package registry

import "errors"

var (
	ErrNullIdentity      = errors.New("registry: null registry identity")
	ErrUnknownResolver   = errors.New("registry: unknown resolver")
	ErrDuplicateResolver = errors.New("registry: resolver already registered")
	ErrUnknownModule     = errors.New("registry: unknown module")
	ErrDuplicateModule   = errors.New("registry: module already registered")
	ErrPayloadMissing    = errors.New("registry: attestation payload not stored")
)
