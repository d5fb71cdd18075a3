// Package resolverrpc exposes a resolver core over gRPC.
//
// The service is the wire form of the resolver callback surface: the
// registry process drives a remote resolver variant through it. Requests
// carry the model package's JSON boundary DTOs inside a protobuf Struct.
package resolverrpc

import (
	"context"
	"encoding/json"

	"github.com/holiman/uint256"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/arc/model"
	"xdao.co/arc/record"
	"xdao.co/arc/resolver"
)

// Server exposes a *resolver.Core over the Resolver gRPC service.
type Server struct {
	UnimplementedResolverServer
	Core *resolver.Core
}

func (s *Server) Attest(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	call, att, err := s.single(in)
	if err != nil {
		return nil, mapErr(err)
	}
	ok, err := s.Core.Attest(ctx, call, att)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(ok), nil
}

func (s *Server) Revoke(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	call, att, err := s.single(in)
	if err != nil {
		return nil, mapErr(err)
	}
	ok, err := s.Core.Revoke(ctx, call, att)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(ok), nil
}

func (s *Server) MultiAttest(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	call, atts, values, err := s.batch(in)
	if err != nil {
		return nil, mapErr(err)
	}
	ok, err := s.Core.MultiAttest(ctx, call, atts, values)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(ok), nil
}

func (s *Server) MultiRevoke(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	call, atts, values, err := s.batch(in)
	if err != nil {
		return nil, mapErr(err)
	}
	ok, err := s.Core.MultiRevoke(ctx, call, atts, values)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(ok), nil
}

func (s *Server) RegisterModule(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var req model.ModuleRequest
	if err := decode(in, &req); err != nil {
		return nil, mapErr(err)
	}
	call, err := model.ToCall(req.Caller, req.Value)
	if err != nil {
		return nil, mapErr(err)
	}
	mod, err := model.ToModule(req.Record)
	if err != nil {
		return nil, mapErr(err)
	}
	ok, err := s.Core.ModuleRegistration(ctx, call, mod)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(ok), nil
}

func (s *Server) Capabilities(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	_ = ctx
	if err := s.ready(); err != nil {
		return nil, err
	}
	caps := make([]interface{}, 0, 8)
	for _, c := range s.Core.Capabilities() {
		caps = append(caps, string(c))
	}
	out, err := structpb.NewStruct(map[string]interface{}{
		"capabilities": caps,
		"payable":      s.Core.IsPayable(),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "capability encoding failed")
	}
	return out, nil
}

func (s *Server) IsPayable(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	_ = ctx
	if err := s.ready(); err != nil {
		return nil, err
	}
	return wrapperspb.Bool(s.Core.IsPayable()), nil
}

func (s *Server) ready() error {
	if s == nil || s.Core == nil {
		return status.Error(codes.FailedPrecondition, "missing resolver core")
	}
	return nil
}

func (s *Server) single(in *structpb.Struct) (resolver.Call, record.Attestation, error) {
	if err := s.ready(); err != nil {
		return resolver.Call{}, record.Attestation{}, err
	}
	var req model.SingleRequest
	if err := decode(in, &req); err != nil {
		return resolver.Call{}, record.Attestation{}, err
	}
	call, err := model.ToCall(req.Caller, req.Value)
	if err != nil {
		return resolver.Call{}, record.Attestation{}, err
	}
	att, err := model.ToAttestation(req.Record)
	if err != nil {
		return resolver.Call{}, record.Attestation{}, err
	}
	return call, att, nil
}

func (s *Server) batch(in *structpb.Struct) (resolver.Call, []record.Attestation, []*uint256.Int, error) {
	if err := s.ready(); err != nil {
		return resolver.Call{}, nil, nil, err
	}
	var req model.BatchRequest
	if err := decode(in, &req); err != nil {
		return resolver.Call{}, nil, nil, err
	}
	call, err := model.ToCall(req.Caller, req.Value)
	if err != nil {
		return resolver.Call{}, nil, nil, err
	}
	atts := make([]record.Attestation, 0, len(req.Records))
	for _, r := range req.Records {
		att, err := model.ToAttestation(r)
		if err != nil {
			return resolver.Call{}, nil, nil, err
		}
		atts = append(atts, att)
	}
	values, err := model.ToValues(req.Values)
	if err != nil {
		return resolver.Call{}, nil, nil, err
	}
	return call, atts, values, nil
}

func decode(in *structpb.Struct, out interface{}) error {
	if in == nil {
		return model.NewError(model.ErrInvalidRequest, "missing request body")
	}
	b, err := in.MarshalJSON()
	if err != nil {
		return model.NewError(model.ErrInvalidRequest, "malformed request body")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return model.NewError(model.ErrInvalidRequest, "malformed request body: "+err.Error())
	}
	return nil
}
