package record

import "errors"

var (
	ErrRevocationBeforeCreation = errors.New("record: revocation time precedes creation time")
	ErrAlreadyRevoked           = errors.New("record: already revoked")
)
