package policy

import (
	"context"
	"sync"

	"github.com/holiman/uint256"

	"xdao.co/arc/identity"
	"xdao.co/arc/record"
)

// Denylist rejects requests involving blocked identities.
//
// Attestations and revocations are rejected when the attester or the
// subject is denied; module registrations when the sender is denied.
type Denylist struct {
	mu     sync.RWMutex
	denied map[identity.Address]struct{}
}

// NewDenylist constructs a denylist with the given identities blocked.
func NewDenylist(addrs ...identity.Address) *Denylist {
	d := &Denylist{denied: make(map[identity.Address]struct{}, len(addrs))}
	for _, a := range addrs {
		d.denied[a] = struct{}{}
	}
	return d
}

// Deny blocks an identity. Safe for concurrent use with evaluations.
func (d *Denylist) Deny(a identity.Address) {
	d.mu.Lock()
	d.denied[a] = struct{}{}
	d.mu.Unlock()
}

// Denied reports whether the identity is blocked.
func (d *Denylist) Denied(a identity.Address) bool {
	d.mu.RLock()
	_, ok := d.denied[a]
	d.mu.RUnlock()
	return ok
}

func (d *Denylist) ValidateAttest(_ context.Context, att record.Attestation, _ *uint256.Int) (bool, error) {
	return !d.Denied(att.Attester) && !d.Denied(att.Subject), nil
}

func (d *Denylist) ValidateRevoke(_ context.Context, att record.Attestation, _ *uint256.Int) (bool, error) {
	return !d.Denied(att.Attester) && !d.Denied(att.Subject), nil
}

func (d *Denylist) ValidateModuleRegistration(_ context.Context, mod record.Module, _ *uint256.Int) (bool, error) {
	return !d.Denied(mod.Sender), nil
}
