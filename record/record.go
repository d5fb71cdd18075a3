// Package record defines the record shapes exchanged between the registry
// and resolver cores.
//
// Records are owned by the registry; the resolver protocol receives them as
// call arguments and never persists them. Timestamps are unix seconds; zero
// means "unset" (no expiration, not revoked).
package record

import (
	"github.com/ipfs/go-cid"

	"xdao.co/arc/identity"
)

// Attestation is a timestamped, optionally expiring and revocable claim
// about a subject. Payload bytes live outside the record; Payload points at
// them by CID.
type Attestation struct {
	// Schema identifies the schema the attestation was made under.
	Schema cid.Cid

	Subject  identity.Address
	Attester identity.Address

	// Time is the creation time.
	Time uint64

	// ExpirationTime is zero when the attestation never expires.
	ExpirationTime uint64

	// RevocationTime is zero while the attestation is not revoked. Once set
	// it is never cleared and MUST NOT precede Time.
	RevocationTime uint64

	// Payload references externally stored payload bytes. May be undefined
	// for attestations without payload data.
	Payload cid.Cid
}

// Revoked reports whether the attestation has been revoked.
func (a Attestation) Revoked() bool { return a.RevocationTime != 0 }

// Expired reports whether the attestation has expired at now.
func (a Attestation) Expired(now uint64) bool {
	return a.ExpirationTime != 0 && now >= a.ExpirationTime
}

// Active reports whether the attestation is neither revoked nor expired at now.
func (a Attestation) Active(now uint64) bool {
	return !a.Revoked() && !a.Expired(now)
}

// Validate checks the record invariants.
func (a Attestation) Validate() error {
	if a.RevocationTime != 0 && a.RevocationTime < a.Time {
		return ErrRevocationBeforeCreation
	}
	return nil
}

// Revoke returns a copy of the attestation revoked at the given time.
//
// Revocation is monotonic: revoking an already revoked attestation fails,
// and the revocation time cannot precede the creation time.
func (a Attestation) Revoke(at uint64) (Attestation, error) {
	if a.Revoked() {
		return a, ErrAlreadyRevoked
	}
	if at == 0 || at < a.Time {
		return a, ErrRevocationBeforeCreation
	}
	a.RevocationTime = at
	return a, nil
}

// Module describes a deployed module implementation bound to a resolver.
// Created once at registration time and immutable thereafter.
type Module struct {
	// Resolver is the registration UID of the resolver gatekeeping the module.
	Resolver cid.Cid

	Implementation identity.Address
	Sender         identity.Address

	// Metadata is opaque deployment metadata. The protocol never interprets it.
	Metadata []byte
}

// Registration associates a policy-hook implementation with an owning
// identity. The registry derives the resolver id from its canonical bytes.
type Registration struct {
	// Handle names the policy-hook implementation (a policyregistry backend
	// name or any registry-scoped handle).
	Handle string

	Owner identity.Address
}
