// Package storage provides content-addressed storage for attestation
// payload bytes.
//
// Attestation records carry only a payload pointer (a CID); the bytes
// themselves live in a Store owned by the registry's surroundings.
package storage

import "github.com/ipfs/go-cid"

// Store is a minimal content-addressed payload store.
//
// Contract:
// - Put MUST be idempotent.
// - Stored payloads MUST be immutable.
// - The returned CID MUST be derived from the bytes written.
// - Get MUST return ErrNotFound when the CID is absent.
type Store interface {
	Put(payload []byte) (cid.Cid, error)
	Get(id cid.Cid) ([]byte, error)
	Has(id cid.Cid) bool
}
