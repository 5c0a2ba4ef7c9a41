// Package introspect exposes an alloc.Stats instance over gRPC.
//
// There is no generated .pb.go here. The service is registered by hand
// with a plain grpc.ServiceDesc, and its wire message is
// google.golang.org/protobuf/types/known/structpb.Struct — a real,
// fully-reflectable proto.Message shipped by the protobuf module
// itself, not a stub.
package introspect

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// StatsSource is the subset of alloc.Stats this service needs. Kept as
// an interface so the package doesn't force a single instantiation of
// alloc.Stats[I] on every caller.
type StatsSource interface {
	TotalAllocated() int64
	StatsListSize() int64
}

// Server implements the StatsService gRPC service over a StatsSource.
type Server struct {
	stats StatsSource
}

// NewServer wraps stats for gRPC exposure.
func NewServer(stats StatsSource) *Server {
	return &Server{stats: stats}
}

// GetStats returns the current totals as a structpb.Struct, whose
// numbers are float64 values:
//
//	{"total_allocated": <number>, "record_count": <number>}
func (s *Server) GetStats(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"total_allocated": float64(s.stats.TotalAllocated()),
		"record_count":    float64(s.stats.StatsListSize()),
	})
}

// serviceName is the gRPC service's fully-qualified name.
const serviceName = "memkitdemo.introspect.StatsService"

// ServiceDesc is registered on a *grpc.Server with
// (*grpc.Server).RegisterService(&ServiceDesc, impl) where impl
// implements the Server methods above.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*statsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetStats",
			Handler:    getStatsHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "memkitdemo/introspect/service.proto",
}

// statsServiceServer is the interface grpc.ServiceDesc.HandlerType
// describes; *Server implements it.
type statsServiceServer interface {
	GetStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func getStatsHandler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	req := new(structpb.Struct)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(statsServiceServer).GetStats(ctx, req)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: fmt.Sprintf("/%s/GetStats", serviceName),
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(statsServiceServer).GetStats(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, req, info, handler)
}

// GetStats calls the StatsService.GetStats RPC over cc.
func GetStats(ctx context.Context, cc grpc.ClientConnInterface) (*structpb.Struct, error) {
	reply := new(structpb.Struct)
	err := cc.Invoke(ctx, fmt.Sprintf("/%s/GetStats", serviceName), &structpb.Struct{}, reply)
	if err != nil {
		return nil, err
	}
	return reply, nil
}
