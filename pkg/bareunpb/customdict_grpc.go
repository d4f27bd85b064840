package bareunpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	CustomDictionaryService_GetCustomDictionaryList_FullMethodName  = "/bareun.CustomDictionaryService/GetCustomDictionaryList"
	CustomDictionaryService_GetCustomDictionary_FullMethodName      = "/bareun.CustomDictionaryService/GetCustomDictionary"
	CustomDictionaryService_UpdateCustomDictionary_FullMethodName   = "/bareun.CustomDictionaryService/UpdateCustomDictionary"
	CustomDictionaryService_RemoveCustomDictionaries_FullMethodName = "/bareun.CustomDictionaryService/RemoveCustomDictionaries"
	CustomDictionaryService_CheckConflict_FullMethodName            = "/bareun.CustomDictionaryService/CheckConflict"
)

// CustomDictionaryServiceClient manages per-domain user dictionaries.
type CustomDictionaryServiceClient interface {
	GetCustomDictionaryList(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*GetCustomDictionaryListResponse, error)
	GetCustomDictionary(ctx context.Context, in *GetCustomDictionaryRequest, opts ...grpc.CallOption) (*GetCustomDictionaryResponse, error)
	UpdateCustomDictionary(ctx context.Context, in *UpdateCustomDictionaryRequest, opts ...grpc.CallOption) (*UpdateCustomDictionaryResponse, error)
	RemoveCustomDictionaries(ctx context.Context, in *RemoveCustomDictionariesRequest, opts ...grpc.CallOption) (*RemoveCustomDictionariesResponse, error)
	CheckConflict(ctx context.Context, in *CheckConflictRequest, opts ...grpc.CallOption) (*CheckConflictResponse, error)
}

type customDictionaryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCustomDictionaryServiceClient(cc grpc.ClientConnInterface) CustomDictionaryServiceClient {
	return &customDictionaryServiceClient{cc: cc}
}

func (c *customDictionaryServiceClient) GetCustomDictionaryList(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*GetCustomDictionaryListResponse, error) {
	out := new(GetCustomDictionaryListResponse)
	if err := c.cc.Invoke(ctx, CustomDictionaryService_GetCustomDictionaryList_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customDictionaryServiceClient) GetCustomDictionary(ctx context.Context, in *GetCustomDictionaryRequest, opts ...grpc.CallOption) (*GetCustomDictionaryResponse, error) {
	out := new(GetCustomDictionaryResponse)
	if err := c.cc.Invoke(ctx, CustomDictionaryService_GetCustomDictionary_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customDictionaryServiceClient) UpdateCustomDictionary(ctx context.Context, in *UpdateCustomDictionaryRequest, opts ...grpc.CallOption) (*UpdateCustomDictionaryResponse, error) {
	out := new(UpdateCustomDictionaryResponse)
	if err := c.cc.Invoke(ctx, CustomDictionaryService_UpdateCustomDictionary_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customDictionaryServiceClient) RemoveCustomDictionaries(ctx context.Context, in *RemoveCustomDictionariesRequest, opts ...grpc.CallOption) (*RemoveCustomDictionariesResponse, error) {
	out := new(RemoveCustomDictionariesResponse)
	if err := c.cc.Invoke(ctx, CustomDictionaryService_RemoveCustomDictionaries_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customDictionaryServiceClient) CheckConflict(ctx context.Context, in *CheckConflictRequest, opts ...grpc.CallOption) (*CheckConflictResponse, error) {
	out := new(CheckConflictResponse)
	if err := c.cc.Invoke(ctx, CustomDictionaryService_CheckConflict_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type CustomDictionaryServiceServer interface {
	GetCustomDictionaryList(context.Context, *emptypb.Empty) (*GetCustomDictionaryListResponse, error)
	GetCustomDictionary(context.Context, *GetCustomDictionaryRequest) (*GetCustomDictionaryResponse, error)
	UpdateCustomDictionary(context.Context, *UpdateCustomDictionaryRequest) (*UpdateCustomDictionaryResponse, error)
	RemoveCustomDictionaries(context.Context, *RemoveCustomDictionariesRequest) (*RemoveCustomDictionariesResponse, error)
	CheckConflict(context.Context, *CheckConflictRequest) (*CheckConflictResponse, error)
}

func RegisterCustomDictionaryServiceServer(s grpc.ServiceRegistrar, srv CustomDictionaryServiceServer) {
	s.RegisterService(&_CustomDictionaryService_serviceDesc, srv)
}

// unaryHandler adapts a typed method into a grpc.MethodDesc handler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(srv any, ctx context.Context, req *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var _CustomDictionaryService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "bareun.CustomDictionaryService",
	HandlerType: (*CustomDictionaryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCustomDictionaryList",
			Handler: unaryHandler(CustomDictionaryService_GetCustomDictionaryList_FullMethodName,
				func(srv any, ctx context.Context, in *emptypb.Empty) (*GetCustomDictionaryListResponse, error) {
					return srv.(CustomDictionaryServiceServer).GetCustomDictionaryList(ctx, in)
				}),
		},
		{
			MethodName: "GetCustomDictionary",
			Handler: unaryHandler(CustomDictionaryService_GetCustomDictionary_FullMethodName,
				func(srv any, ctx context.Context, in *GetCustomDictionaryRequest) (*GetCustomDictionaryResponse, error) {
					return srv.(CustomDictionaryServiceServer).GetCustomDictionary(ctx, in)
				}),
		},
		{
			MethodName: "UpdateCustomDictionary",
			Handler: unaryHandler(CustomDictionaryService_UpdateCustomDictionary_FullMethodName,
				func(srv any, ctx context.Context, in *UpdateCustomDictionaryRequest) (*UpdateCustomDictionaryResponse, error) {
					return srv.(CustomDictionaryServiceServer).UpdateCustomDictionary(ctx, in)
				}),
		},
		{
			MethodName: "RemoveCustomDictionaries",
			Handler: unaryHandler(CustomDictionaryService_RemoveCustomDictionaries_FullMethodName,
				func(srv any, ctx context.Context, in *RemoveCustomDictionariesRequest) (*RemoveCustomDictionariesResponse, error) {
					return srv.(CustomDictionaryServiceServer).RemoveCustomDictionaries(ctx, in)
				}),
		},
		{
			MethodName: "CheckConflict",
			Handler: unaryHandler(CustomDictionaryService_CheckConflict_FullMethodName,
				func(srv any, ctx context.Context, in *CheckConflictRequest) (*CheckConflictResponse, error) {
					return srv.(CustomDictionaryServiceServer).CheckConflict(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bareun/custom_dict.proto",
}
