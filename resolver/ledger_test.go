package resolver

import "testing"

func TestLedger_NilTotalIsZero(t *testing.T) {
	l := NewLedger(nil)
	if !l.Remaining().IsZero() {
		t.Fatalf("expected zero remaining")
	}
	if err := l.Covered(nil); err != nil {
		t.Fatalf("Covered(nil): %v", err)
	}
	if err := l.Covered(val(0)); err != nil {
		t.Fatalf("Covered(0): %v", err)
	}
	if err := l.Covered(val(1)); !IsInsufficientValue(err) {
		t.Fatalf("Covered(1): expected InsufficientValue, got %v", err)
	}
}

func TestLedger_Conservation(t *testing.T) {
	total := val(6)
	l := NewLedger(total)

	for _, v := range []uint64{1, 2, 3} {
		if err := l.Consume(val(v)); err != nil {
			t.Fatalf("Consume(%d): %v", v, err)
		}
	}

	if !l.Remaining().IsZero() {
		t.Fatalf("expected zero remaining, got %s", l.Remaining().Dec())
	}
	if l.Consumed().Cmp(total) != 0 {
		t.Fatalf("consumed %s, want %s", l.Consumed().Dec(), total.Dec())
	}
}

func TestLedger_OvercommitDetected(t *testing.T) {
	l := NewLedger(val(6))

	if err := l.Consume(val(1)); err != nil {
		t.Fatalf("Consume(1): %v", err)
	}
	if err := l.Consume(val(2)); err != nil {
		t.Fatalf("Consume(2): %v", err)
	}

	// Remaining is 3; an item declaring 4 overcommits.
	err := l.Consume(val(4))
	if !IsInsufficientValue(err) {
		t.Fatalf("expected InsufficientValue, got %v", err)
	}

	// A failed consume leaves the ledger untouched.
	if l.Remaining().Uint64() != 3 {
		t.Fatalf("remaining changed after failed consume: %s", l.Remaining().Dec())
	}
	if l.Consumed().Uint64() != 3 {
		t.Fatalf("consumed changed after failed consume: %s", l.Consumed().Dec())
	}
}

func TestLedger_AccessorsReturnCopies(t *testing.T) {
	l := NewLedger(val(10))
	r := l.Remaining()
	r.SetUint64(0)
	if l.Remaining().Uint64() != 10 {
		t.Fatalf("Remaining exposed internal state")
	}
}
