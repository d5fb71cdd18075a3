package resolver

import (
	"context"

	"github.com/holiman/uint256"

	"xdao.co/arc/record"
)

// Hook is the pluggable acceptance policy invoked by the core.
//
// The core dictates when a hook runs and with what value; the hook alone
// decides the verdict. A false verdict is a soft rejection: the call
// succeeds and reports false. A non-nil error is a hard failure and aborts
// the whole call.
//
// value is the item's own slice of the call's attached value, never the
// aggregate. It is non-nil and MUST NOT be mutated or retained.
//
// Reentrancy: the core does not serialize hook invocations and does not
// defend against a hook calling back into the core or the registry. Hooks
// that reach external systems own that risk.
type Hook interface {
	ValidateAttest(ctx context.Context, att record.Attestation, value *uint256.Int) (bool, error)
	ValidateRevoke(ctx context.Context, att record.Attestation, value *uint256.Int) (bool, error)
	ValidateModuleRegistration(ctx context.Context, mod record.Module, value *uint256.Int) (bool, error)
}
