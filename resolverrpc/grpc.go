package resolverrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ResolverServer is the server API for the Resolver gRPC service.
//
// We intentionally use protobuf well-known types (Struct carrying the JSON
// boundary DTOs from package model) so this package does not require a
// protoc/codegen toolchain.
//
// Proto definition: resolver.proto.
type ResolverServer interface {
	Attest(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	Revoke(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	MultiAttest(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	MultiRevoke(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	RegisterModule(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	Capabilities(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	IsPayable(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error)
}

// UnimplementedResolverServer can be embedded to have forward compatible
// implementations.
type UnimplementedResolverServer struct{}

func (UnimplementedResolverServer) Attest(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Attest not implemented")
}
func (UnimplementedResolverServer) Revoke(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Revoke not implemented")
}
func (UnimplementedResolverServer) MultiAttest(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method MultiAttest not implemented")
}
func (UnimplementedResolverServer) MultiRevoke(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method MultiRevoke not implemented")
}
func (UnimplementedResolverServer) RegisterModule(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterModule not implemented")
}
func (UnimplementedResolverServer) Capabilities(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Capabilities not implemented")
}
func (UnimplementedResolverServer) IsPayable(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method IsPayable not implemented")
}

// RegisterResolverServer registers the Resolver service on a gRPC server.
func RegisterResolverServer(s grpc.ServiceRegistrar, srv ResolverServer) {
	s.RegisterService(&Resolver_ServiceDesc, srv)
}

// ResolverClient is the client API for the Resolver gRPC service.
type ResolverClient interface {
	Attest(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Revoke(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	MultiAttest(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	MultiRevoke(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	RegisterModule(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Capabilities(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	IsPayable(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
}

type resolverClient struct{ cc grpc.ClientConnInterface }

func NewResolverClient(cc grpc.ClientConnInterface) ResolverClient { return &resolverClient{cc: cc} }

const serviceName = "xdao.arc.resolverrpc.v1.Resolver"

func (c *resolverClient) verdict(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *resolverClient) Attest(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return c.verdict(ctx, "Attest", in, opts...)
}

func (c *resolverClient) Revoke(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return c.verdict(ctx, "Revoke", in, opts...)
}

func (c *resolverClient) MultiAttest(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return c.verdict(ctx, "MultiAttest", in, opts...)
}

func (c *resolverClient) MultiRevoke(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return c.verdict(ctx, "MultiRevoke", in, opts...)
}

func (c *resolverClient) RegisterModule(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return c.verdict(ctx, "RegisterModule", in, opts...)
}

func (c *resolverClient) Capabilities(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Capabilities", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *resolverClient) IsPayable(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/IsPayable", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func verdictHandler(method string, call func(ResolverServer, context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	full := "/" + serviceName + "/" + method
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ResolverServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ResolverServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func _Resolver_Capabilities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResolverServer).Capabilities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Capabilities"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResolverServer).Capabilities(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Resolver_IsPayable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResolverServer).IsPayable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/IsPayable"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResolverServer).IsPayable(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Resolver_ServiceDesc is the grpc.ServiceDesc for the Resolver service.
var Resolver_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ResolverServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Attest", Handler: verdictHandler("Attest", ResolverServer.Attest)},
		{MethodName: "Revoke", Handler: verdictHandler("Revoke", ResolverServer.Revoke)},
		{MethodName: "MultiAttest", Handler: verdictHandler("MultiAttest", ResolverServer.MultiAttest)},
		{MethodName: "MultiRevoke", Handler: verdictHandler("MultiRevoke", ResolverServer.MultiRevoke)},
		{MethodName: "RegisterModule", Handler: verdictHandler("RegisterModule", ResolverServer.RegisterModule)},
		{MethodName: "Capabilities", Handler: _Resolver_Capabilities_Handler},
		{MethodName: "IsPayable", Handler: _Resolver_IsPayable_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "resolver.proto",
}
