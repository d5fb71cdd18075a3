package resolverrpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"xdao.co/arc/identity"
	"xdao.co/arc/model"
	"xdao.co/arc/policy"
	"xdao.co/arc/resolver"
	"xdao.co/arc/uidutil"
)

const (
	trustedHex  = "0x0101010101010101010101010101010101010101"
	strangerHex = "0x0202020202020202020202020202020202020202"
)

func newTestClient(t *testing.T, cfg resolver.Config) *Client {
	t.Helper()

	core, err := resolver.New(cfg)
	if err != nil {
		t.Fatalf("resolver.New: %v", err)
	}

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterResolverServer(srv, &Server{Core: core})

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	t.Cleanup(func() { cc.Close() })

	return &Client{cc: cc, client: NewResolverClient(cc), Timeout: 2 * time.Second}
}

func testRecord(t *testing.T, subject string) model.AttestationRecord {
	t.Helper()
	schema, err := uidutil.UID([]byte("rpc-test-schema"))
	if err != nil {
		t.Fatalf("uidutil.UID: %v", err)
	}
	return model.AttestationRecord{
		Schema:   schema.String(),
		Subject:  subject,
		Attester: trustedHex,
		Time:     1000,
	}
}

func openConfig(t *testing.T) resolver.Config {
	t.Helper()
	return resolver.Config{
		TrustedCaller: identity.MustParse(trustedHex),
		Hook:          policy.Open{},
		Payable:       true,
	}
}

func TestRPC_Attest_RoundTrip(t *testing.T) {
	client := newTestClient(t, openConfig(t))

	ok, err := client.Attest(model.SingleRequest{
		Caller: trustedHex,
		Record: testRecord(t, strangerHex),
	})
	if err != nil {
		t.Fatalf("Attest: %v", err)
	}
	if !ok {
		t.Fatalf("expected acceptance")
	}
}

func TestRPC_Attest_AccessDenied(t *testing.T) {
	client := newTestClient(t, openConfig(t))

	_, err := client.Attest(model.SingleRequest{
		Caller: strangerHex,
		Record: testRecord(t, strangerHex),
	})
	var ce *model.CodedError
	if !errors.As(err, &ce) || ce.Code != model.ErrAccessDenied {
		t.Fatalf("expected ACCESS_DENIED, got %v", err)
	}
}

func TestRPC_MultiAttest_Accounting(t *testing.T) {
	client := newTestClient(t, openConfig(t))

	records := []model.AttestationRecord{
		testRecord(t, strangerHex),
		testRecord(t, trustedHex),
		testRecord(t, strangerHex),
	}

	ok, err := client.MultiAttest(model.BatchRequest{
		Caller:  trustedHex,
		Value:   "6",
		Records: records,
		Values:  []string{"1", "2", "3"},
	})
	if err != nil {
		t.Fatalf("MultiAttest: %v", err)
	}
	if !ok {
		t.Fatalf("expected acceptance")
	}

	_, err = client.MultiAttest(model.BatchRequest{
		Caller:  trustedHex,
		Value:   "6",
		Records: records,
		Values:  []string{"1", "2", "4"},
	})
	var ce *model.CodedError
	if !errors.As(err, &ce) || ce.Code != model.ErrInsufficientValue {
		t.Fatalf("expected INSUFFICIENT_VALUE, got %v", err)
	}
}

func TestRPC_MultiAttest_LengthMismatch(t *testing.T) {
	client := newTestClient(t, openConfig(t))

	_, err := client.MultiAttest(model.BatchRequest{
		Caller:  trustedHex,
		Records: []model.AttestationRecord{testRecord(t, strangerHex)},
		Values:  []string{"1", "2"},
	})
	var ce *model.CodedError
	if !errors.As(err, &ce) || ce.Code != model.ErrInvalidRequest {
		t.Fatalf("expected INVALID_REQUEST, got %v", err)
	}
}

func TestRPC_CapabilitiesAndPayable(t *testing.T) {
	cfg := openConfig(t)
	cfg.Capabilities = []resolver.Capability{resolver.CapabilityAttest}
	client := newTestClient(t, cfg)

	caps, err := client.Capabilities()
	if err != nil {
		t.Fatalf("Capabilities: %v", err)
	}
	if !caps.Payable {
		t.Fatalf("expected payable variant")
	}
	found := false
	for _, c := range caps.Capabilities {
		if c == string(resolver.CapabilityAttest) {
			found = true
		}
		if c == string(resolver.CapabilityRevoke) {
			t.Fatalf("revoke should not be advertised: %v", caps.Capabilities)
		}
	}
	if !found {
		t.Fatalf("attest missing from capabilities: %v", caps.Capabilities)
	}

	payable, err := client.IsPayable()
	if err != nil {
		t.Fatalf("IsPayable: %v", err)
	}
	if !payable {
		t.Fatalf("expected payable")
	}

	_, err = client.Revoke(model.SingleRequest{
		Caller: trustedHex,
		Record: testRecord(t, strangerHex),
	})
	var ce *model.CodedError
	if !errors.As(err, &ce) || ce.Code != model.ErrInvalidRequest {
		t.Fatalf("expected INVALID_REQUEST for unsupported op, got %v", err)
	}
}

func TestRPC_MalformedRequest(t *testing.T) {
	client := newTestClient(t, openConfig(t))

	_, err := client.Attest(model.SingleRequest{
		Caller: "not-an-address",
		Record: testRecord(t, strangerHex),
	})
	var ce *model.CodedError
	if !errors.As(err, &ce) {
		t.Fatalf("expected coded error, got %v", err)
	}
	if ce.Code != model.ErrInvalidAddress {
		t.Fatalf("expected INVALID_ADDRESS, got %v", ce.Code)
	}
}
