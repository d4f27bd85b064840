package bareunpb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	LanguageService_AnalyzeSyntax_FullMethodName     = "/bareun.LanguageService/AnalyzeSyntax"
	LanguageService_AnalyzeSyntaxList_FullMethodName = "/bareun.LanguageService/AnalyzeSyntaxList"
	LanguageService_Tokenize_FullMethodName          = "/bareun.LanguageService/Tokenize"
)

// LanguageServiceClient is the client API for the morphological analyzer.
type LanguageServiceClient interface {
	AnalyzeSyntax(ctx context.Context, in *AnalyzeSyntaxRequest, opts ...grpc.CallOption) (*AnalyzeSyntaxResponse, error)
	AnalyzeSyntaxList(ctx context.Context, in *AnalyzeSyntaxListRequest, opts ...grpc.CallOption) (*AnalyzeSyntaxListResponse, error)
	Tokenize(ctx context.Context, in *TokenizeRequest, opts ...grpc.CallOption) (*TokenizeResponse, error)
}

type languageServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLanguageServiceClient(cc grpc.ClientConnInterface) LanguageServiceClient {
	return &languageServiceClient{cc: cc}
}

func (c *languageServiceClient) AnalyzeSyntax(ctx context.Context, in *AnalyzeSyntaxRequest, opts ...grpc.CallOption) (*AnalyzeSyntaxResponse, error) {
	out := new(AnalyzeSyntaxResponse)
	if err := c.cc.Invoke(ctx, LanguageService_AnalyzeSyntax_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *languageServiceClient) AnalyzeSyntaxList(ctx context.Context, in *AnalyzeSyntaxListRequest, opts ...grpc.CallOption) (*AnalyzeSyntaxListResponse, error) {
	out := new(AnalyzeSyntaxListResponse)
	if err := c.cc.Invoke(ctx, LanguageService_AnalyzeSyntaxList_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *languageServiceClient) Tokenize(ctx context.Context, in *TokenizeRequest, opts ...grpc.CallOption) (*TokenizeResponse, error) {
	out := new(TokenizeResponse)
	if err := c.cc.Invoke(ctx, LanguageService_Tokenize_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// withCodec puts the package codec first so callers can still override it.
func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
}

// LanguageServiceServer is the server API for the morphological analyzer.
type LanguageServiceServer interface {
	AnalyzeSyntax(context.Context, *AnalyzeSyntaxRequest) (*AnalyzeSyntaxResponse, error)
	AnalyzeSyntaxList(context.Context, *AnalyzeSyntaxListRequest) (*AnalyzeSyntaxListResponse, error)
	Tokenize(context.Context, *TokenizeRequest) (*TokenizeResponse, error)
}

// RegisterLanguageServiceServer registers service handlers.
func RegisterLanguageServiceServer(s grpc.ServiceRegistrar, srv LanguageServiceServer) {
	s.RegisterService(&_LanguageService_serviceDesc, srv)
}

func _LanguageService_AnalyzeSyntax_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AnalyzeSyntaxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LanguageServiceServer).AnalyzeSyntax(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LanguageService_AnalyzeSyntax_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LanguageServiceServer).AnalyzeSyntax(ctx, req.(*AnalyzeSyntaxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LanguageService_AnalyzeSyntaxList_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AnalyzeSyntaxListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LanguageServiceServer).AnalyzeSyntaxList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LanguageService_AnalyzeSyntaxList_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LanguageServiceServer).AnalyzeSyntaxList(ctx, req.(*AnalyzeSyntaxListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LanguageService_Tokenize_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TokenizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LanguageServiceServer).Tokenize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LanguageService_Tokenize_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LanguageServiceServer).Tokenize(ctx, req.(*TokenizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _LanguageService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "bareun.LanguageService",
	HandlerType: (*LanguageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzeSyntax",
			Handler:    _LanguageService_AnalyzeSyntax_Handler,
		},
		{
			MethodName: "AnalyzeSyntaxList",
			Handler:    _LanguageService_AnalyzeSyntaxList_Handler,
		},
		{
			MethodName: "Tokenize",
			Handler:    _LanguageService_Tokenize_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bareun/language_service.proto",
}
