package policy

import (
	"context"
	"testing"

	"github.com/holiman/uint256"

	"xdao.co/arc/identity"
	"xdao.co/arc/record"
)

func addr(b byte) identity.Address {
	var a identity.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func val(v uint64) *uint256.Int { return uint256.NewInt(v) }

func att(attester, subject byte) record.Attestation {
	return record.Attestation{
		Attester: addr(attester),
		Subject:  addr(subject),
		Time:     1000,
	}
}

func TestOpen_ApprovesEverything(t *testing.T) {
	ctx := context.Background()
	var p Open

	if ok, err := p.ValidateAttest(ctx, att(1, 2), val(0)); err != nil || !ok {
		t.Fatalf("attest: ok=%v err=%v", ok, err)
	}
	if ok, err := p.ValidateRevoke(ctx, att(1, 2), val(0)); err != nil || !ok {
		t.Fatalf("revoke: ok=%v err=%v", ok, err)
	}
	if ok, err := p.ValidateModuleRegistration(ctx, record.Module{}, val(0)); err != nil || !ok {
		t.Fatalf("module: ok=%v err=%v", ok, err)
	}
}

func TestFee_AttestationsPay(t *testing.T) {
	ctx := context.Background()
	p := Fee{Amount: val(5)}

	cases := []struct {
		value *uint256.Int
		want  bool
	}{
		{val(4), false},
		{val(5), true},
		{val(6), true},
		{nil, false},
	}
	for _, c := range cases {
		ok, err := p.ValidateAttest(ctx, att(1, 2), c.value)
		if err != nil {
			t.Fatalf("ValidateAttest(%v): %v", c.value, err)
		}
		if ok != c.want {
			t.Fatalf("ValidateAttest(%v) = %v, want %v", c.value, ok, c.want)
		}
	}

	// Revocation and module registration are free.
	if ok, _ := p.ValidateRevoke(ctx, att(1, 2), val(0)); !ok {
		t.Fatalf("revoke should be free")
	}
	if ok, _ := p.ValidateModuleRegistration(ctx, record.Module{}, val(0)); !ok {
		t.Fatalf("module registration should be free")
	}
}

func TestFee_ZeroFeeApproves(t *testing.T) {
	ctx := context.Background()
	for _, p := range []Fee{{}, {Amount: val(0)}} {
		if ok, _ := p.ValidateAttest(ctx, att(1, 2), nil); !ok {
			t.Fatalf("zero fee should approve value-less attestations")
		}
	}
}

func TestDenylist(t *testing.T) {
	ctx := context.Background()
	d := NewDenylist(addr(0x66))

	if ok, _ := d.ValidateAttest(ctx, att(0x01, 0x02), val(0)); !ok {
		t.Fatalf("clean attestation should pass")
	}
	if ok, _ := d.ValidateAttest(ctx, att(0x66, 0x02), val(0)); ok {
		t.Fatalf("denied attester should be rejected")
	}
	if ok, _ := d.ValidateAttest(ctx, att(0x01, 0x66), val(0)); ok {
		t.Fatalf("denied subject should be rejected")
	}
	if ok, _ := d.ValidateRevoke(ctx, att(0x66, 0x02), val(0)); ok {
		t.Fatalf("denied attester should be rejected on revoke")
	}

	if ok, _ := d.ValidateModuleRegistration(ctx, record.Module{Sender: addr(0x01)}, val(0)); !ok {
		t.Fatalf("clean sender should pass")
	}

	d.Deny(addr(0x01))
	if ok, _ := d.ValidateModuleRegistration(ctx, record.Module{Sender: addr(0x01)}, val(0)); ok {
		t.Fatalf("denied sender should be rejected")
	}
	if !d.Denied(addr(0x01)) {
		t.Fatalf("Denied(0x01) should be true after Deny")
	}
}

func TestExpiryWindow(t *testing.T) {
	ctx := context.Background()
	p := ExpiryWindow{MaxTTL: 100, Now: func() uint64 { return 1010 }}

	a := att(1, 2)

	// Never-expiring attestations are rejected.
	if ok, _ := p.ValidateAttest(ctx, a, nil); ok {
		t.Fatalf("no expiration should be rejected")
	}

	a.ExpirationTime = a.Time + 100
	if ok, _ := p.ValidateAttest(ctx, a, nil); !ok {
		t.Fatalf("within window should pass")
	}

	a.ExpirationTime = a.Time + 101
	if ok, _ := p.ValidateAttest(ctx, a, nil); ok {
		t.Fatalf("beyond window should be rejected")
	}

	// Expired on arrival.
	expired := att(1, 2)
	expired.ExpirationTime = 1005
	if ok, _ := p.ValidateAttest(ctx, expired, nil); ok {
		t.Fatalf("expired attestation should be rejected")
	}

	// Malformed: expiration before creation.
	bad := att(1, 2)
	bad.ExpirationTime = bad.Time - 1
	if ok, _ := p.ValidateAttest(ctx, bad, nil); ok {
		t.Fatalf("expiration before creation should be rejected")
	}

	if ok, _ := p.ValidateRevoke(ctx, a, nil); !ok {
		t.Fatalf("revoke should be unaffected")
	}
}
