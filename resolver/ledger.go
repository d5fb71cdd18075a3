package resolver

import "github.com/holiman/uint256"

// Ledger tracks the remaining transferable value across one batched call.
//
// It is call-local: a fresh ledger is created per batch invocation and never
// shared, so there is no cross-call state to lock. The invariant it
// maintains is conservation: consumed + remaining == the call's attached
// total, and remaining never underflows.
type Ledger struct {
	remaining uint256.Int
	consumed  uint256.Int
}

// NewLedger starts a ledger holding the call's total attached value.
// A nil total is treated as zero.
func NewLedger(total *uint256.Int) *Ledger {
	l := &Ledger{}
	if total != nil {
		l.remaining.Set(total)
	}
	return l
}

// Covered fails with InsufficientValue when v exceeds the remaining balance.
// A nil v is treated as zero and is always covered.
func (l *Ledger) Covered(v *uint256.Int) error {
	if v != nil && v.Gt(&l.remaining) {
		return newError(KindValue, "ARC-VAL-001",
			"declared item value "+v.Dec()+" exceeds remaining "+l.remaining.Dec())
	}
	return nil
}

// Consume deducts an accepted item's value. It fails exactly when Covered
// does, so a Covered-then-Consume sequence cannot underflow.
func (l *Ledger) Consume(v *uint256.Int) error {
	if err := l.Covered(v); err != nil {
		return err
	}
	if v != nil {
		l.remaining.Sub(&l.remaining, v)
		l.consumed.Add(&l.consumed, v)
	}
	return nil
}

// Remaining returns a copy of the undistributed balance.
func (l *Ledger) Remaining() *uint256.Int { return l.remaining.Clone() }

// Consumed returns a copy of the value handed to accepted items so far.
func (l *Ledger) Consumed() *uint256.Int { return l.consumed.Clone() }
