package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/holiman/uint256"

	"xdao.co/arc/record"
)

func batch(t *testing.T, subjects ...byte) []record.Attestation {
	t.Helper()
	atts := make([]record.Attestation, 0, len(subjects))
	for _, s := range subjects {
		atts = append(atts, att(t, s))
	}
	return atts
}

func values(vs ...uint64) []*uint256.Int {
	out := make([]*uint256.Int, 0, len(vs))
	for _, v := range vs {
		out = append(out, uint256.NewInt(v))
	}
	return out
}

func TestMultiAttest_AllAcceptedConsumesExactly(t *testing.T) {
	ctx := context.Background()
	hook := &recordingHook{}
	core := newCore(t, hook)

	// Batch [A,B,C], values [1,2,3], attached total 6.
	ok, err := core.MultiAttest(ctx, trustedCall(val(6)), batch(t, 'A', 'B', 'C'), values(1, 2, 3))
	if err != nil {
		t.Fatalf("MultiAttest: %v", err)
	}
	if !ok {
		t.Fatalf("expected overall acceptance")
	}

	if len(hook.values) != 3 {
		t.Fatalf("expected 3 dispatches, got %d", len(hook.values))
	}
	var sum uint256.Int
	for i, want := range []uint64{1, 2, 3} {
		if hook.values[i].Uint64() != want {
			t.Fatalf("item %d saw value %s, want %d", i, hook.values[i].Dec(), want)
		}
		sum.Add(&sum, hook.values[i])
	}
	// Conservation: every attached wei was handed to exactly one item.
	if sum.Uint64() != 6 {
		t.Fatalf("values handed out sum to %s, want 6", sum.Dec())
	}
}

func TestMultiAttest_OvercommitAbortsBeforeDispatch(t *testing.T) {
	ctx := context.Background()
	hook := &recordingHook{}
	core := newCore(t, hook)

	// Values [1,2,4] against total 6: after A,B remaining is 3 and C declares 4.
	ok, err := core.MultiAttest(ctx, trustedCall(val(6)), batch(t, 'A', 'B', 'C'), values(1, 2, 4))
	if ok {
		t.Fatalf("expected failure")
	}
	if !IsInsufficientValue(err) {
		t.Fatalf("expected InsufficientValue, got %v", err)
	}

	// C's hook never ran: the overcommit is detected before dispatch.
	if len(hook.subjects) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(hook.subjects))
	}
}

func TestMultiAttest_RejectionShortCircuits(t *testing.T) {
	ctx := context.Background()
	hook := &recordingHook{
		verdict: func(i int) (bool, error) { return i != 1, nil }, // reject B
	}
	core := newCore(t, hook)

	ok, err := core.MultiAttest(ctx, trustedCall(val(10)), batch(t, 'A', 'B', 'C'), values(1, 2, 3))
	if err != nil {
		t.Fatalf("MultiAttest: %v", err)
	}
	if ok {
		t.Fatalf("expected overall rejection")
	}

	// B's hook ran; C's never did.
	if len(hook.subjects) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(hook.subjects))
	}
	if hook.subjects[1] != addr('B') {
		t.Fatalf("second dispatch was %s, want subject B", hook.subjects[1])
	}
}

func TestMultiAttest_OrderDeterminism(t *testing.T) {
	ctx := context.Background()
	hook := &recordingHook{}
	core := newCore(t, hook)

	subjects := []byte{'E', 'A', 'D', 'B', 'C'}
	ok, err := core.MultiAttest(ctx, trustedCall(val(5)), batch(t, subjects...), values(1, 1, 1, 1, 1))
	if err != nil || !ok {
		t.Fatalf("MultiAttest: ok=%v err=%v", ok, err)
	}

	for i, s := range subjects {
		if hook.subjects[i] != addr(s) {
			t.Fatalf("dispatch %d was %s, want subject %c (caller-supplied order)", i, hook.subjects[i], s)
		}
	}
}

func TestMultiAttest_LengthMismatch(t *testing.T) {
	ctx := context.Background()
	core := newCore(t, hookFuncs{})

	_, err := core.MultiAttest(ctx, trustedCall(val(1)), batch(t, 'A', 'B'), values(1))
	if !IsKind(err, KindValidation) {
		t.Fatalf("expected KindValidation, got %v", err)
	}
}

func TestMultiAttest_NilValueIsZero(t *testing.T) {
	ctx := context.Background()
	hook := &recordingHook{}
	core := newCore(t, hook)

	ok, err := core.MultiAttest(ctx, trustedCall(nil), batch(t, 'A'), []*uint256.Int{nil})
	if err != nil || !ok {
		t.Fatalf("MultiAttest: ok=%v err=%v", ok, err)
	}
	if !hook.values[0].IsZero() {
		t.Fatalf("nil declared value should dispatch as zero")
	}
}

func TestMultiAttest_HookErrorAborts(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend unavailable")
	hook := &recordingHook{
		verdict: func(i int) (bool, error) {
			if i == 1 {
				return false, boom
			}
			return true, nil
		},
	}
	core := newCore(t, hook)

	_, err := core.MultiAttest(ctx, trustedCall(val(3)), batch(t, 'A', 'B', 'C'), values(1, 1, 1))
	if !errors.Is(err, boom) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if len(hook.subjects) != 2 {
		t.Fatalf("expected no dispatch after the failing item")
	}
}

func TestMultiRevoke_SameProtocol(t *testing.T) {
	ctx := context.Background()
	hook := &recordingHook{
		verdict: func(i int) (bool, error) { return i != 1, nil },
	}
	core := newCore(t, hook)

	ok, err := core.MultiRevoke(ctx, trustedCall(val(2)), batch(t, 'A', 'B'), values(1, 1))
	if err != nil {
		t.Fatalf("MultiRevoke: %v", err)
	}
	if ok {
		t.Fatalf("expected overall rejection")
	}

	hook2 := &recordingHook{}
	core2 := newCore(t, hook2)
	ok, err = core2.MultiRevoke(ctx, trustedCall(val(3)), batch(t, 'A', 'B', 'C'), values(1, 1, 1))
	if err != nil || !ok {
		t.Fatalf("MultiRevoke accept-all: ok=%v err=%v", ok, err)
	}
	if len(hook2.subjects) != 3 {
		t.Fatalf("expected 3 dispatches")
	}

	_, err = core2.MultiRevoke(ctx, trustedCall(val(1)), batch(t, 'A', 'B'), values(1, 1))
	if !IsInsufficientValue(err) {
		t.Fatalf("expected InsufficientValue, got %v", err)
	}
}
