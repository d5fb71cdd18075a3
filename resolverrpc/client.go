package resolverrpc

import (
	"context"
	"encoding/json"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"xdao.co/arc/model"
)

// Client is a typed client for the Resolver gRPC service. It speaks the model
// package's boundary DTOs and hides the Struct framing.
type Client struct {
	cc     *grpc.ClientConn
	client ResolverClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewResolverClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Attest reports the resolver's verdict for a single attestation.
func (c *Client) Attest(req model.SingleRequest) (bool, error) {
	return c.verdict(func(ctx context.Context, in *structpb.Struct) (boolReply, error) {
		return c.client.Attest(ctx, in)
	}, req)
}

// Revoke reports the resolver's verdict for a single revocation.
func (c *Client) Revoke(req model.SingleRequest) (bool, error) {
	return c.verdict(func(ctx context.Context, in *structpb.Struct) (boolReply, error) {
		return c.client.Revoke(ctx, in)
	}, req)
}

// MultiAttest reports the resolver's verdict for a batch of attestations.
func (c *Client) MultiAttest(req model.BatchRequest) (bool, error) {
	return c.verdict(func(ctx context.Context, in *structpb.Struct) (boolReply, error) {
		return c.client.MultiAttest(ctx, in)
	}, req)
}

// MultiRevoke reports the resolver's verdict for a batch of revocations.
func (c *Client) MultiRevoke(req model.BatchRequest) (bool, error) {
	return c.verdict(func(ctx context.Context, in *structpb.Struct) (boolReply, error) {
		return c.client.MultiRevoke(ctx, in)
	}, req)
}

// RegisterModule reports the resolver's verdict for a module registration.
func (c *Client) RegisterModule(req model.ModuleRequest) (bool, error) {
	return c.verdict(func(ctx context.Context, in *structpb.Struct) (boolReply, error) {
		return c.client.RegisterModule(ctx, in)
	}, req)
}

// Capabilities queries the resolver's supported operations.
func (c *Client) Capabilities() (model.Capabilities, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Capabilities(ctx, &emptypb.Empty{})
	if err != nil {
		return model.Capabilities{}, FromStatus(err)
	}
	b, err := reply.MarshalJSON()
	if err != nil {
		return model.Capabilities{}, model.NewError(model.ErrInternal, "malformed capability reply")
	}
	var out model.Capabilities
	if err := json.Unmarshal(b, &out); err != nil {
		return model.Capabilities{}, model.NewError(model.ErrInternal, "malformed capability reply: "+err.Error())
	}
	return out, nil
}

// IsPayable queries whether the resolver accepts value transfers.
func (c *Client) IsPayable() (bool, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.IsPayable(ctx, &emptypb.Empty{})
	if err != nil {
		return false, FromStatus(err)
	}
	return reply.GetValue(), nil
}

type boolReply interface{ GetValue() bool }

func (c *Client) verdict(rpc func(context.Context, *structpb.Struct) (boolReply, error), req interface{}) (bool, error) {
	in, err := encode(req)
	if err != nil {
		return false, err
	}
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := rpc(ctx, in)
	if err != nil {
		return false, FromStatus(err)
	}
	return reply.GetValue(), nil
}

func encode(req interface{}) (*structpb.Struct, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, model.NewError(model.ErrInvalidRequest, "request encoding failed: "+err.Error())
	}
	out := new(structpb.Struct)
	if err := out.UnmarshalJSON(b); err != nil {
		return nil, model.NewError(model.ErrInvalidRequest, "request encoding failed: "+err.Error())
	}
	return out, nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
