// Package uidutil derives stable record UIDs.
//
// A UID is a CIDv1 (raw multicodec, sha2-256 multihash) over the record's
// canonical bytes. Equal canonical bytes always derive the same UID.
package uidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// UID returns the CIDv1 (raw + sha2-256) derived from canonical bytes.
func UID(canonical []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(canonical, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// UIDString returns the string form of UID, or "" when derivation fails.
func UIDString(canonical []byte) string {
	id, err := UID(canonical)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1
		// length this should be unreachable.
		return ""
	}
	return id.String()
}
