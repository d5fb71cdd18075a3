package resolver

import (
	"testing"

	"xdao.co/arc/identity"
)

func TestNewGuard_RejectsNullIdentity(t *testing.T) {
	_, err := NewGuard(identity.Zero)
	if err == nil {
		t.Fatalf("expected error for null trusted caller")
	}
	if !IsInvalidTrustedCaller(err) {
		t.Fatalf("expected InvalidTrustedCaller, got %v (rule %s)", err, RuleID(err))
	}
	if !IsKind(err, KindConfig) {
		t.Fatalf("expected KindConfig, got %v", err)
	}
}

func TestGuard_Require(t *testing.T) {
	g, err := NewGuard(addr(0x01))
	if err != nil {
		t.Fatalf("NewGuard: %v", err)
	}
	if g.Trusted() != addr(0x01) {
		t.Fatalf("Trusted mismatch")
	}

	if err := g.Require(addr(0x01)); err != nil {
		t.Fatalf("Require(trusted): %v", err)
	}

	for _, caller := range []byte{0x00, 0x02, 0xff} {
		err := g.Require(addr(caller))
		if err == nil {
			t.Fatalf("Require(0x%02x): expected AccessDenied", caller)
		}
		if !IsAccessDenied(err) {
			t.Fatalf("Require(0x%02x): expected AccessDenied, got %v", caller, err)
		}
	}
}
