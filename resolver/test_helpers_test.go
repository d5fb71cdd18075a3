package resolver

import (
	"context"
	"testing"

	"github.com/holiman/uint256"

	"xdao.co/arc/identity"
	"xdao.co/arc/record"
	"xdao.co/arc/uidutil"
)

// ----- test helpers -----

func addr(b byte) identity.Address {
	var a identity.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func val(v uint64) *uint256.Int { return uint256.NewInt(v) }

func att(t *testing.T, subject byte) record.Attestation {
	t.Helper()
	schema, err := uidutil.UID([]byte("test-schema"))
	if err != nil {
		t.Fatalf("uidutil.UID: %v", err)
	}
	return record.Attestation{
		Schema:   schema,
		Subject:  addr(subject),
		Attester: addr(0xaa),
		Time:     1000,
	}
}

// hookFuncs adapts per-kind functions to the Hook interface.
// A nil function approves.
type hookFuncs struct {
	attest func(att record.Attestation, v *uint256.Int) (bool, error)
	revoke func(att record.Attestation, v *uint256.Int) (bool, error)
	module func(mod record.Module, v *uint256.Int) (bool, error)
}

func (h hookFuncs) ValidateAttest(_ context.Context, a record.Attestation, v *uint256.Int) (bool, error) {
	if h.attest == nil {
		return true, nil
	}
	return h.attest(a, v)
}

func (h hookFuncs) ValidateRevoke(_ context.Context, a record.Attestation, v *uint256.Int) (bool, error) {
	if h.revoke == nil {
		return true, nil
	}
	return h.revoke(a, v)
}

func (h hookFuncs) ValidateModuleRegistration(_ context.Context, m record.Module, v *uint256.Int) (bool, error) {
	if h.module == nil {
		return true, nil
	}
	return h.module(m, v)
}

// recordingHook records every dispatch (subject + value) in invocation
// order. verdict, when set, decides acceptance per dispatch index.
type recordingHook struct {
	subjects []identity.Address
	values   []*uint256.Int
	modules  int

	verdict func(i int) (bool, error)
}

func (h *recordingHook) dispatch(subject identity.Address, v *uint256.Int) (bool, error) {
	i := len(h.subjects)
	h.subjects = append(h.subjects, subject)
	h.values = append(h.values, v.Clone())
	if h.verdict == nil {
		return true, nil
	}
	return h.verdict(i)
}

func (h *recordingHook) ValidateAttest(_ context.Context, a record.Attestation, v *uint256.Int) (bool, error) {
	return h.dispatch(a.Subject, v)
}

func (h *recordingHook) ValidateRevoke(_ context.Context, a record.Attestation, v *uint256.Int) (bool, error) {
	return h.dispatch(a.Subject, v)
}

func (h *recordingHook) ValidateModuleRegistration(_ context.Context, m record.Module, v *uint256.Int) (bool, error) {
	h.modules++
	return h.dispatch(m.Sender, v)
}

func newCore(t *testing.T, hook Hook) *Core {
	t.Helper()
	c, err := New(Config{TrustedCaller: addr(0x01), Hook: hook})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func trustedCall(value *uint256.Int) Call {
	return Call{Caller: addr(0x01), Value: value}
}
