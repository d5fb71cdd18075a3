// Package resolver implements the Attestation Resolver Callback (ARC)
// protocol: the validation layer between a trusted registry and pluggable
// acceptance policies.
//
// A Core gatekeeps attestation, revocation, and module-registration
// requests. It guarantees that only the configured trusted caller reaches a
// policy hook, that batched items never overdraw the value attached to a
// call, and that bare value transfers are rejected unless the resolver is
// payable. The hook alone decides acceptance; the core only decides when a
// hook runs and with what value.
package resolver

import (
	"context"

	"github.com/holiman/uint256"

	"xdao.co/arc/identity"
	"xdao.co/arc/record"
)

// Config carries the construction-time state of a Core. All of it is
// immutable after New.
type Config struct {
	// TrustedCaller is the only identity allowed through the guard.
	// Required; the null identity is rejected.
	TrustedCaller identity.Address

	// Hook is the acceptance policy. Required.
	Hook Hook

	// Payable advertises acceptance of bare value transfers. Default false.
	Payable bool

	// Capabilities restricts the guarded operations this variant supports.
	// Nil means all guarded operations.
	Capabilities []Capability
}

// Core is the dispatch surface of the protocol.
//
// Each invocation runs to completion synchronously; the only cross-call
// state is the construction-time configuration, so a Core is safe for
// concurrent use as long as its hook is.
type Core struct {
	guard   Guard
	hook    Hook
	payable bool
	caps    capabilitySet
}

// Call identifies one top-level invocation: who is calling and how much
// value is attached. A nil Value means zero.
type Call struct {
	Caller identity.Address
	Value  *uint256.Int
}

// New constructs a Core from cfg.
func New(cfg Config) (*Core, error) {
	guard, err := NewGuard(cfg.TrustedCaller)
	if err != nil {
		return nil, err
	}
	if cfg.Hook == nil {
		return nil, newError(KindConfig, "ARC-CFG-002", "missing policy hook")
	}
	caps := cfg.Capabilities
	if caps == nil {
		caps = AllCapabilities()
	}
	return &Core{
		guard:   guard,
		hook:    cfg.Hook,
		payable: cfg.Payable,
		caps:    newCapabilitySet(caps),
	}, nil
}

// IsPayable reports whether the resolver accepts bare value transfers.
func (c *Core) IsPayable() bool { return c.payable }

// Receive handles an unsolicited value transfer with no associated call.
// Non-payable resolvers reject it so funds cannot silently accumulate.
func (c *Core) Receive(call Call) error {
	if !c.payable {
		return newError(KindPayment, "ARC-PAY-001", "resolver is not payable")
	}
	return nil
}

// Supports reports whether this variant supports the capability.
func (c *Core) Supports(capability Capability) bool {
	if capability == CapabilityPayable {
		return c.payable
	}
	return c.caps.has(capability)
}

// Capabilities returns the supported capabilities, sorted.
func (c *Core) Capabilities() []Capability {
	out := c.caps.sorted()
	if c.payable {
		out = append(out, CapabilityPayable)
	}
	return out
}

// Attest evaluates a single attestation, forwarding the call's attached
// value to the hook unchanged, and returns the hook's verdict.
func (c *Core) Attest(ctx context.Context, call Call, att record.Attestation) (bool, error) {
	if err := c.enter(call, CapabilityAttest); err != nil {
		return false, err
	}
	return c.hook.ValidateAttest(ctx, att, valueOrZero(call.Value))
}

// Revoke evaluates a single revocation.
func (c *Core) Revoke(ctx context.Context, call Call, att record.Attestation) (bool, error) {
	if err := c.enter(call, CapabilityRevoke); err != nil {
		return false, err
	}
	return c.hook.ValidateRevoke(ctx, att, valueOrZero(call.Value))
}

// ModuleRegistration evaluates a module registration.
func (c *Core) ModuleRegistration(ctx context.Context, call Call, mod record.Module) (bool, error) {
	if err := c.enter(call, CapabilityModuleRegistration); err != nil {
		return false, err
	}
	return c.hook.ValidateModuleRegistration(ctx, mod, valueOrZero(call.Value))
}

// MultiAttest evaluates a batch of attestations under ledger accounting.
//
// Items are dispatched strictly in input order, each with its declared
// value. An item declaring more than the remaining balance aborts the whole
// call with InsufficientValue before its hook runs. A rejecting hook stops
// the batch: later items are never evaluated and the overall verdict is
// false.
func (c *Core) MultiAttest(ctx context.Context, call Call, atts []record.Attestation, values []*uint256.Int) (bool, error) {
	if err := c.enter(call, CapabilityMultiAttest); err != nil {
		return false, err
	}
	return c.runBatch(call, len(atts), values, func(i int, v *uint256.Int) (bool, error) {
		return c.hook.ValidateAttest(ctx, atts[i], v)
	})
}

// MultiRevoke evaluates a batch of revocations under ledger accounting,
// with the same ordering and short-circuit semantics as MultiAttest.
func (c *Core) MultiRevoke(ctx context.Context, call Call, atts []record.Attestation, values []*uint256.Int) (bool, error) {
	if err := c.enter(call, CapabilityMultiRevoke); err != nil {
		return false, err
	}
	return c.runBatch(call, len(atts), values, func(i int, v *uint256.Int) (bool, error) {
		return c.hook.ValidateRevoke(ctx, atts[i], v)
	})
}

func (c *Core) enter(call Call, capability Capability) error {
	if !c.caps.has(capability) {
		return newError(KindValidation, "ARC-CAP-001",
			"operation "+string(capability)+" not supported by this resolver variant")
	}
	return c.guard.Require(call.Caller)
}

func (c *Core) runBatch(call Call, n int, values []*uint256.Int, dispatch func(int, *uint256.Int) (bool, error)) (bool, error) {
	if len(values) != n {
		return false, newError(KindValidation, "ARC-VAL-002", "records and values length mismatch")
	}
	ledger := NewLedger(call.Value)
	for i := 0; i < n; i++ {
		v := valueOrZero(values[i])
		if err := ledger.Covered(v); err != nil {
			return false, err
		}
		ok, err := dispatch(i, v)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if err := ledger.Consume(v); err != nil {
			// Covered held before dispatch and the ledger is call-local,
			// so this should be unreachable.
			return false, err
		}
	}
	return true, nil
}

func valueOrZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return v.Clone()
}
