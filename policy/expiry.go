package policy

import (
	"context"
	"time"

	"github.com/holiman/uint256"

	"xdao.co/arc/record"
)

// ExpiryWindow rejects attestations that never expire or that expire more
// than MaxTTL seconds after their creation time.
//
// Revocations and module registrations are unaffected.
type ExpiryWindow struct {
	// MaxTTL bounds ExpirationTime - Time. Zero rejects every attestation,
	// which is almost never what you want; pick a real window.
	MaxTTL uint64

	// Now supplies the current unix time for expired-on-arrival checks.
	// Nil uses the wall clock.
	Now func() uint64
}

func (p ExpiryWindow) ValidateAttest(_ context.Context, att record.Attestation, _ *uint256.Int) (bool, error) {
	if att.ExpirationTime == 0 {
		return false, nil
	}
	if att.ExpirationTime < att.Time || att.ExpirationTime-att.Time > p.MaxTTL {
		return false, nil
	}
	return !att.Expired(p.now()), nil
}

func (ExpiryWindow) ValidateRevoke(context.Context, record.Attestation, *uint256.Int) (bool, error) {
	return true, nil
}

func (ExpiryWindow) ValidateModuleRegistration(context.Context, record.Module, *uint256.Int) (bool, error) {
	return true, nil
}

func (p ExpiryWindow) now() uint64 {
	if p.Now != nil {
		return p.Now()
	}
	return uint64(time.Now().Unix())
}
