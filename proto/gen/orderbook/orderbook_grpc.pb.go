// Wire schema for the orderbook streaming service. Generated Go bindings
// are produced at build time (see ../Makefile) and are not committed,
// following the same convention as luxfi-dex's pkg/grpc/pb and
// IRIO-ORG-Trading-System's generated packages.

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.1
// - protoc             (unknown)
// source: orderbook.proto

package orderbook

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	OrderbookService_SubscribeOrderbook_FullMethodName  = "/orderbook.OrderbookService/SubscribeOrderbook"
	OrderbookService_GetOrderbook_FullMethodName        = "/orderbook.OrderbookService/GetOrderbook"
	OrderbookService_SubscribeMarkPrices_FullMethodName = "/orderbook.OrderbookService/SubscribeMarkPrices"
	OrderbookService_GetMarkPrice_FullMethodName        = "/orderbook.OrderbookService/GetMarkPrice"
	OrderbookService_GetMarkets_FullMethodName          = "/orderbook.OrderbookService/GetMarkets"
	OrderbookService_GetStopOrders_FullMethodName       = "/orderbook.OrderbookService/GetStopOrders"
)

// OrderbookServiceClient is the client API for OrderbookService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type OrderbookServiceClient interface {
	SubscribeOrderbook(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[OrderbookSnapshot], error)
	GetOrderbook(ctx context.Context, in *GetOrderbookRequest, opts ...grpc.CallOption) (*OrderbookSnapshot, error)
	SubscribeMarkPrices(ctx context.Context, in *MarkPriceSubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[MarkPriceUpdate], error)
	GetMarkPrice(ctx context.Context, in *GetMarkPriceRequest, opts ...grpc.CallOption) (*MarkPriceResponse, error)
	GetMarkets(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*MarketsResponse, error)
	GetStopOrders(ctx context.Context, in *StopOrdersRequest, opts ...grpc.CallOption) (*StopOrdersResponse, error)
}

type orderbookServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderbookServiceClient(cc grpc.ClientConnInterface) OrderbookServiceClient {
	return &orderbookServiceClient{cc}
}

func (c *orderbookServiceClient) SubscribeOrderbook(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[OrderbookSnapshot], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &OrderbookService_ServiceDesc.Streams[0], OrderbookService_SubscribeOrderbook_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeRequest, OrderbookSnapshot]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type OrderbookService_SubscribeOrderbookClient = grpc.ServerStreamingClient[OrderbookSnapshot]

func (c *orderbookServiceClient) GetOrderbook(ctx context.Context, in *GetOrderbookRequest, opts ...grpc.CallOption) (*OrderbookSnapshot, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OrderbookSnapshot)
	err := c.cc.Invoke(ctx, OrderbookService_GetOrderbook_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderbookServiceClient) SubscribeMarkPrices(ctx context.Context, in *MarkPriceSubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[MarkPriceUpdate], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &OrderbookService_ServiceDesc.Streams[1], OrderbookService_SubscribeMarkPrices_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[MarkPriceSubscribeRequest, MarkPriceUpdate]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type OrderbookService_SubscribeMarkPricesClient = grpc.ServerStreamingClient[MarkPriceUpdate]

func (c *orderbookServiceClient) GetMarkPrice(ctx context.Context, in *GetMarkPriceRequest, opts ...grpc.CallOption) (*MarkPriceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MarkPriceResponse)
	err := c.cc.Invoke(ctx, OrderbookService_GetMarkPrice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderbookServiceClient) GetMarkets(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*MarketsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MarketsResponse)
	err := c.cc.Invoke(ctx, OrderbookService_GetMarkets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderbookServiceClient) GetStopOrders(ctx context.Context, in *StopOrdersRequest, opts ...grpc.CallOption) (*StopOrdersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StopOrdersResponse)
	err := c.cc.Invoke(ctx, OrderbookService_GetStopOrders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OrderbookServiceServer is the server API for OrderbookService service.
// All implementations must embed UnimplementedOrderbookServiceServer
// for forward compatibility.
type OrderbookServiceServer interface {
	SubscribeOrderbook(*SubscribeRequest, grpc.ServerStreamingServer[OrderbookSnapshot]) error
	GetOrderbook(context.Context, *GetOrderbookRequest) (*OrderbookSnapshot, error)
	SubscribeMarkPrices(*MarkPriceSubscribeRequest, grpc.ServerStreamingServer[MarkPriceUpdate]) error
	GetMarkPrice(context.Context, *GetMarkPriceRequest) (*MarkPriceResponse, error)
	GetMarkets(context.Context, *Empty) (*MarketsResponse, error)
	GetStopOrders(context.Context, *StopOrdersRequest) (*StopOrdersResponse, error)
	mustEmbedUnimplementedOrderbookServiceServer()
}

// UnimplementedOrderbookServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedOrderbookServiceServer struct{}

func (UnimplementedOrderbookServiceServer) SubscribeOrderbook(*SubscribeRequest, grpc.ServerStreamingServer[OrderbookSnapshot]) error {
	return status.Error(codes.Unimplemented, "method SubscribeOrderbook not implemented")
}
func (UnimplementedOrderbookServiceServer) GetOrderbook(context.Context, *GetOrderbookRequest) (*OrderbookSnapshot, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrderbook not implemented")
}
func (UnimplementedOrderbookServiceServer) SubscribeMarkPrices(*MarkPriceSubscribeRequest, grpc.ServerStreamingServer[MarkPriceUpdate]) error {
	return status.Error(codes.Unimplemented, "method SubscribeMarkPrices not implemented")
}
func (UnimplementedOrderbookServiceServer) GetMarkPrice(context.Context, *GetMarkPriceRequest) (*MarkPriceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMarkPrice not implemented")
}
func (UnimplementedOrderbookServiceServer) GetMarkets(context.Context, *Empty) (*MarketsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMarkets not implemented")
}
func (UnimplementedOrderbookServiceServer) GetStopOrders(context.Context, *StopOrdersRequest) (*StopOrdersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStopOrders not implemented")
}
func (UnimplementedOrderbookServiceServer) mustEmbedUnimplementedOrderbookServiceServer() {}
func (UnimplementedOrderbookServiceServer) testEmbeddedByValue()                          {}

// UnsafeOrderbookServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to OrderbookServiceServer will
// result in compilation errors.
type UnsafeOrderbookServiceServer interface {
	mustEmbedUnimplementedOrderbookServiceServer()
}

func RegisterOrderbookServiceServer(s grpc.ServiceRegistrar, srv OrderbookServiceServer) {
	// If the following call panics, it indicates UnimplementedOrderbookServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&OrderbookService_ServiceDesc, srv)
}

func _OrderbookService_SubscribeOrderbook_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(OrderbookServiceServer).SubscribeOrderbook(m, &grpc.GenericServerStream[SubscribeRequest, OrderbookSnapshot]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type OrderbookService_SubscribeOrderbookServer = grpc.ServerStreamingServer[OrderbookSnapshot]

func _OrderbookService_GetOrderbook_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetOrderbookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderbookServiceServer).GetOrderbook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderbookService_GetOrderbook_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderbookServiceServer).GetOrderbook(ctx, req.(*GetOrderbookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderbookService_SubscribeMarkPrices_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(MarkPriceSubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(OrderbookServiceServer).SubscribeMarkPrices(m, &grpc.GenericServerStream[MarkPriceSubscribeRequest, MarkPriceUpdate]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type OrderbookService_SubscribeMarkPricesServer = grpc.ServerStreamingServer[MarkPriceUpdate]

func _OrderbookService_GetMarkPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMarkPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderbookServiceServer).GetMarkPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderbookService_GetMarkPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderbookServiceServer).GetMarkPrice(ctx, req.(*GetMarkPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderbookService_GetMarkets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderbookServiceServer).GetMarkets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderbookService_GetMarkets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderbookServiceServer).GetMarkets(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderbookService_GetStopOrders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StopOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderbookServiceServer).GetStopOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderbookService_GetStopOrders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderbookServiceServer).GetStopOrders(ctx, req.(*StopOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OrderbookService_ServiceDesc is the grpc.ServiceDesc for OrderbookService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var OrderbookService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "orderbook.OrderbookService",
	HandlerType: (*OrderbookServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetOrderbook",
			Handler:    _OrderbookService_GetOrderbook_Handler,
		},
		{
			MethodName: "GetMarkPrice",
			Handler:    _OrderbookService_GetMarkPrice_Handler,
		},
		{
			MethodName: "GetMarkets",
			Handler:    _OrderbookService_GetMarkets_Handler,
		},
		{
			MethodName: "GetStopOrders",
			Handler:    _OrderbookService_GetStopOrders_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeOrderbook",
			Handler:       _OrderbookService_SubscribeOrderbook_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "SubscribeMarkPrices",
			Handler:       _OrderbookService_SubscribeMarkPrices_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "orderbook.proto",
}
