package resolver

import "xdao.co/arc/identity"

// Guard restricts guarded entry points to exactly one trusted caller.
//
// The trusted identity is fixed at construction and immutable afterwards;
// the guard holds no other state, so checks are race-free by construction.
type Guard struct {
	trusted identity.Address
}

// NewGuard constructs a guard for the trusted caller.
// The null identity is rejected: there is no "anyone may call" mode.
func NewGuard(trusted identity.Address) (Guard, error) {
	if trusted.IsZero() {
		return Guard{}, newError(KindConfig, "ARC-CFG-001", "trusted caller is the null identity")
	}
	return Guard{trusted: trusted}, nil
}

// Trusted returns the trusted caller identity.
func (g Guard) Trusted() identity.Address { return g.trusted }

// Require fails unless caller is the trusted caller.
func (g Guard) Require(caller identity.Address) error {
	if caller != g.trusted {
		return newError(KindAccess, "ARC-ACC-001", "caller "+caller.String()+" is not the trusted registry")
	}
	return nil
}
