package policy

import (
	"context"

	"github.com/holiman/uint256"

	"xdao.co/arc/record"
)

// Fee rejects attestations whose item value falls short of a fixed fee.
//
// Only attestations pay: revocations and module registrations are free, so
// a revoker is never held hostage by the fee that funded the original claim.
type Fee struct {
	// Amount is the minimum value per attestation. Nil means zero (free).
	Amount *uint256.Int
}

func (f Fee) ValidateAttest(_ context.Context, _ record.Attestation, value *uint256.Int) (bool, error) {
	if f.Amount == nil || f.Amount.IsZero() {
		return true, nil
	}
	return value != nil && !value.Lt(f.Amount), nil
}

func (Fee) ValidateRevoke(context.Context, record.Attestation, *uint256.Int) (bool, error) {
	return true, nil
}

func (Fee) ValidateModuleRegistration(context.Context, record.Module, *uint256.Int) (bool, error) {
	return true, nil
}
