package bareunpb

import (
	"context"

	"google.golang.org/grpc"
)

const RevisionService_CorrectError_FullMethodName = "/bareun.RevisionService/CorrectError"

// RevisionServiceClient is the client API for the spelling corrector.
type RevisionServiceClient interface {
	CorrectError(ctx context.Context, in *CorrectErrorRequest, opts ...grpc.CallOption) (*CorrectErrorResponse, error)
}

type revisionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRevisionServiceClient(cc grpc.ClientConnInterface) RevisionServiceClient {
	return &revisionServiceClient{cc: cc}
}

func (c *revisionServiceClient) CorrectError(ctx context.Context, in *CorrectErrorRequest, opts ...grpc.CallOption) (*CorrectErrorResponse, error) {
	out := new(CorrectErrorResponse)
	if err := c.cc.Invoke(ctx, RevisionService_CorrectError_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// RevisionServiceServer is the server API for the spelling corrector.
type RevisionServiceServer interface {
	CorrectError(context.Context, *CorrectErrorRequest) (*CorrectErrorResponse, error)
}

func RegisterRevisionServiceServer(s grpc.ServiceRegistrar, srv RevisionServiceServer) {
	s.RegisterService(&_RevisionService_serviceDesc, srv)
}

func _RevisionService_CorrectError_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CorrectErrorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RevisionServiceServer).CorrectError(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RevisionService_CorrectError_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RevisionServiceServer).CorrectError(ctx, req.(*CorrectErrorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _RevisionService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "bareun.RevisionService",
	HandlerType: (*RevisionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CorrectError",
			Handler:    _RevisionService_CorrectError_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bareun/revision_service.proto",
}
