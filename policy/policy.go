// Package policy provides concrete acceptance policies for the resolver
// protocol.
//
// Each policy implements resolver.Hook. Policies only return verdicts; the
// hard failure modes (access, value accounting, payability) belong to the
// core and never originate here.
package policy

import (
	"context"

	"github.com/holiman/uint256"

	"xdao.co/arc/record"
)

// Open approves every request. Useful as the neutral variant for resolvers
// that exist only for their value accounting or capability surface.
type Open struct{}

func (Open) ValidateAttest(context.Context, record.Attestation, *uint256.Int) (bool, error) {
	return true, nil
}

func (Open) ValidateRevoke(context.Context, record.Attestation, *uint256.Int) (bool, error) {
	return true, nil
}

func (Open) ValidateModuleRegistration(context.Context, record.Module, *uint256.Int) (bool, error) {
	return true, nil
}
