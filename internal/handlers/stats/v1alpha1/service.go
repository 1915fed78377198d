// Package v1alpha1 serves stats.v1alpha1.StatsService over gRPC.
//
// Every request and response is a google.protobuf.Struct, so the service
// needs no generated code: the descriptors below play the part protoc-gen-go-grpc
// would otherwise generate.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "stats.v1alpha1.StatsService"

// Full method names
const (
	MethodCreateOwner = "/" + ServiceName + "/CreateOwner"
	MethodAddStats    = "/" + ServiceName + "/AddStats"
	MethodUpdateStats = "/" + ServiceName + "/UpdateStats"
	MethodGetStat     = "/" + ServiceName + "/GetStat"
	MethodSetLevel    = "/" + ServiceName + "/SetLevel"
	MethodAwardXP     = "/" + ServiceName + "/AwardXP"
	MethodDeleteOwner = "/" + ServiceName + "/DeleteOwner"
)

// StatsServiceServer is the server API for StatsService
type StatsServiceServer interface {
	CreateOwner(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStat(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLevel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AwardXP(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteOwner(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterStatsServiceServer registers srv on s
func RegisterStatsServiceServer(s grpc.ServiceRegistrar, srv StatsServiceServer) {
	s.RegisterService(&StatsServiceDesc, srv)
}

type unaryMethod func(StatsServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StatsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StatsServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// StatsServiceDesc is the grpc.ServiceDesc for StatsService
var StatsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateOwner", Handler: unaryHandler(MethodCreateOwner, StatsServiceServer.CreateOwner)},
		{MethodName: "AddStats", Handler: unaryHandler(MethodAddStats, StatsServiceServer.AddStats)},
		{MethodName: "UpdateStats", Handler: unaryHandler(MethodUpdateStats, StatsServiceServer.UpdateStats)},
		{MethodName: "GetStat", Handler: unaryHandler(MethodGetStat, StatsServiceServer.GetStat)},
		{MethodName: "SetLevel", Handler: unaryHandler(MethodSetLevel, StatsServiceServer.SetLevel)},
		{MethodName: "AwardXP", Handler: unaryHandler(MethodAwardXP, StatsServiceServer.AwardXP)},
		{MethodName: "DeleteOwner", Handler: unaryHandler(MethodDeleteOwner, StatsServiceServer.DeleteOwner)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stats/v1alpha1/stats.proto",
}

// StatsServiceClient is the client API for StatsService
type StatsServiceClient interface {
	CreateOwner(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddStats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateStats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetStat(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetLevel(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AwardXP(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteOwner(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type statsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStatsServiceClient creates a StatsService client on cc
func NewStatsServiceClient(cc grpc.ClientConnInterface) StatsServiceClient {
	return &statsServiceClient{cc: cc}
}

func (c *statsServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statsServiceClient) CreateOwner(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCreateOwner, in, opts)
}

func (c *statsServiceClient) AddStats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAddStats, in, opts)
}

func (c *statsServiceClient) UpdateStats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodUpdateStats, in, opts)
}

func (c *statsServiceClient) GetStat(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetStat, in, opts)
}

func (c *statsServiceClient) SetLevel(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSetLevel, in, opts)
}

func (c *statsServiceClient) AwardXP(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAwardXP, in, opts)
}

func (c *statsServiceClient) DeleteOwner(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodDeleteOwner, in, opts)
}
