package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "luconnect.v1.LuConnect"

// Full method names, as seen by interceptors.
const (
	PingFullMethodName                  = "/" + ServiceName + "/Ping"
	RegisterFullMethodName              = "/" + ServiceName + "/Register"
	LoginFullMethodName                 = "/" + ServiceName + "/Login"
	RefreshTokenFullMethodName          = "/" + ServiceName + "/RefreshToken"
	WhoAmIFullMethodName                = "/" + ServiceName + "/WhoAmI"
	CreateClientFullMethodName          = "/" + ServiceName + "/CreateClient"
	GetClientFullMethodName             = "/" + ServiceName + "/GetClient"
	ListClientsFullMethodName           = "/" + ServiceName + "/ListClients"
	UpdateClientFullMethodName          = "/" + ServiceName + "/UpdateClient"
	DeleteClientFullMethodName          = "/" + ServiceName + "/DeleteClient"
	CreateProductFullMethodName         = "/" + ServiceName + "/CreateProduct"
	GetProductFullMethodName            = "/" + ServiceName + "/GetProduct"
	ListProductsFullMethodName          = "/" + ServiceName + "/ListProducts"
	UpdateProductFullMethodName         = "/" + ServiceName + "/UpdateProduct"
	DeleteProductFullMethodName         = "/" + ServiceName + "/DeleteProduct"
	ProductImageUploadURLFullMethodName = "/" + ServiceName + "/ProductImageUploadURL"
	ProductImageURLsFullMethodName      = "/" + ServiceName + "/ProductImageURLs"
	CreateOrderFullMethodName           = "/" + ServiceName + "/CreateOrder"
	GetOrderFullMethodName              = "/" + ServiceName + "/GetOrder"
	ListOrdersFullMethodName            = "/" + ServiceName + "/ListOrders"
)

// LuConnectClient is the client API for the LuConnect service.
type LuConnectClient interface {
	Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*User, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	WhoAmI(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*WhoAmIResponse, error)
	CreateClient(ctx context.Context, in *Client, opts ...grpc.CallOption) (*Client, error)
	GetClient(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Client, error)
	ListClients(ctx context.Context, in *ListClientsRequest, opts ...grpc.CallOption) (*ListClientsResponse, error)
	UpdateClient(ctx context.Context, in *UpdateClientRequest, opts ...grpc.CallOption) (*Client, error)
	DeleteClient(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error)
	CreateProduct(ctx context.Context, in *Product, opts ...grpc.CallOption) (*Product, error)
	GetProduct(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Product, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*Product, error)
	DeleteProduct(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error)
	ProductImageUploadURL(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ImageUploadURLResponse, error)
	ProductImageURLs(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ImageURLsResponse, error)
	CreateOrder(ctx context.Context, in *CreateOrderRequest, opts ...grpc.CallOption) (*Order, error)
	GetOrder(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Order, error)
	ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error)
}

type luConnectClient struct {
	cc grpc.ClientConnInterface
}

// NewLuConnectClient returns a client that sends every call with the JSON
// content-subtype.
func NewLuConnectClient(cc grpc.ClientConnInterface) LuConnectClient {
	return &luConnectClient{cc: cc}
}

func (c *luConnectClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *luConnectClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.invoke(ctx, PingFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.invoke(ctx, RegisterFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	out := new(TokenResponse)
	if err := c.invoke(ctx, LoginFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	out := new(TokenResponse)
	if err := c.invoke(ctx, RefreshTokenFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) WhoAmI(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*WhoAmIResponse, error) {
	out := new(WhoAmIResponse)
	if err := c.invoke(ctx, WhoAmIFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) CreateClient(ctx context.Context, in *Client, opts ...grpc.CallOption) (*Client, error) {
	out := new(Client)
	if err := c.invoke(ctx, CreateClientFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) GetClient(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Client, error) {
	out := new(Client)
	if err := c.invoke(ctx, GetClientFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) ListClients(ctx context.Context, in *ListClientsRequest, opts ...grpc.CallOption) (*ListClientsResponse, error) {
	out := new(ListClientsResponse)
	if err := c.invoke(ctx, ListClientsFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) UpdateClient(ctx context.Context, in *UpdateClientRequest, opts ...grpc.CallOption) (*Client, error) {
	out := new(Client)
	if err := c.invoke(ctx, UpdateClientFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) DeleteClient(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, DeleteClientFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) CreateProduct(ctx context.Context, in *Product, opts ...grpc.CallOption) (*Product, error) {
	out := new(Product)
	if err := c.invoke(ctx, CreateProductFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) GetProduct(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Product, error) {
	out := new(Product)
	if err := c.invoke(ctx, GetProductFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	out := new(ListProductsResponse)
	if err := c.invoke(ctx, ListProductsFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*Product, error) {
	out := new(Product)
	if err := c.invoke(ctx, UpdateProductFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) DeleteProduct(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, DeleteProductFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) ProductImageUploadURL(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ImageUploadURLResponse, error) {
	out := new(ImageUploadURLResponse)
	if err := c.invoke(ctx, ProductImageUploadURLFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) ProductImageURLs(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ImageURLsResponse, error) {
	out := new(ImageURLsResponse)
	if err := c.invoke(ctx, ProductImageURLsFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) CreateOrder(ctx context.Context, in *CreateOrderRequest, opts ...grpc.CallOption) (*Order, error) {
	out := new(Order)
	if err := c.invoke(ctx, CreateOrderFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) GetOrder(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Order, error) {
	out := new(Order)
	if err := c.invoke(ctx, GetOrderFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luConnectClient) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error) {
	out := new(ListOrdersResponse)
	if err := c.invoke(ctx, ListOrdersFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// LuConnectServer is the server API for the LuConnect service. Embed
// UnimplementedLuConnectServer for forward compatibility.
type LuConnectServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*User, error)
	Login(context.Context, *LoginRequest) (*TokenResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*TokenResponse, error)
	WhoAmI(context.Context, *Empty) (*WhoAmIResponse, error)
	CreateClient(context.Context, *Client) (*Client, error)
	GetClient(context.Context, *IDRequest) (*Client, error)
	ListClients(context.Context, *ListClientsRequest) (*ListClientsResponse, error)
	UpdateClient(context.Context, *UpdateClientRequest) (*Client, error)
	DeleteClient(context.Context, *IDRequest) (*Empty, error)
	CreateProduct(context.Context, *Product) (*Product, error)
	GetProduct(context.Context, *IDRequest) (*Product, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*Product, error)
	DeleteProduct(context.Context, *IDRequest) (*Empty, error)
	ProductImageUploadURL(context.Context, *IDRequest) (*ImageUploadURLResponse, error)
	ProductImageURLs(context.Context, *IDRequest) (*ImageURLsResponse, error)
	CreateOrder(context.Context, *CreateOrderRequest) (*Order, error)
	GetOrder(context.Context, *IDRequest) (*Order, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
}

// UnimplementedLuConnectServer answers every method with codes.Unimplemented.
type UnimplementedLuConnectServer struct{}

func (UnimplementedLuConnectServer) Ping(context.Context, *Empty) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func (UnimplementedLuConnectServer) Register(context.Context, *RegisterRequest) (*User, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}

func (UnimplementedLuConnectServer) Login(context.Context, *LoginRequest) (*TokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedLuConnectServer) RefreshToken(context.Context, *RefreshTokenRequest) (*TokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}

func (UnimplementedLuConnectServer) WhoAmI(context.Context, *Empty) (*WhoAmIResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method WhoAmI not implemented")
}

func (UnimplementedLuConnectServer) CreateClient(context.Context, *Client) (*Client, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateClient not implemented")
}

func (UnimplementedLuConnectServer) GetClient(context.Context, *IDRequest) (*Client, error) {
	return nil, status.Error(codes.Unimplemented, "method GetClient not implemented")
}

func (UnimplementedLuConnectServer) ListClients(context.Context, *ListClientsRequest) (*ListClientsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListClients not implemented")
}

func (UnimplementedLuConnectServer) UpdateClient(context.Context, *UpdateClientRequest) (*Client, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateClient not implemented")
}

func (UnimplementedLuConnectServer) DeleteClient(context.Context, *IDRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteClient not implemented")
}

func (UnimplementedLuConnectServer) CreateProduct(context.Context, *Product) (*Product, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProduct not implemented")
}

func (UnimplementedLuConnectServer) GetProduct(context.Context, *IDRequest) (*Product, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}

func (UnimplementedLuConnectServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}

func (UnimplementedLuConnectServer) UpdateProduct(context.Context, *UpdateProductRequest) (*Product, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProduct not implemented")
}

func (UnimplementedLuConnectServer) DeleteProduct(context.Context, *IDRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProduct not implemented")
}

func (UnimplementedLuConnectServer) ProductImageUploadURL(context.Context, *IDRequest) (*ImageUploadURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProductImageUploadURL not implemented")
}

func (UnimplementedLuConnectServer) ProductImageURLs(context.Context, *IDRequest) (*ImageURLsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProductImageURLs not implemented")
}

func (UnimplementedLuConnectServer) CreateOrder(context.Context, *CreateOrderRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateOrder not implemented")
}

func (UnimplementedLuConnectServer) GetOrder(context.Context, *IDRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrder not implemented")
}

func (UnimplementedLuConnectServer) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListOrders not implemented")
}

func RegisterLuConnectServer(s grpc.ServiceRegistrar, srv LuConnectServer) {
	s.RegisterService(&LuConnectServiceDesc, srv)
}

func _LuConnect_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PingFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).Ping(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_Register_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RegisterFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_Login_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LoginFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_RefreshToken_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RefreshTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).RefreshToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RefreshTokenFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).RefreshToken(ctx, req.(*RefreshTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_WhoAmI_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).WhoAmI(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: WhoAmIFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).WhoAmI(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_CreateClient_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Client)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).CreateClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CreateClientFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).CreateClient(ctx, req.(*Client))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_GetClient_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).GetClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetClientFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).GetClient(ctx, req.(*IDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_ListClients_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListClientsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).ListClients(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListClientsFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).ListClients(ctx, req.(*ListClientsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_UpdateClient_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).UpdateClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UpdateClientFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).UpdateClient(ctx, req.(*UpdateClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_DeleteClient_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).DeleteClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DeleteClientFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).DeleteClient(ctx, req.(*IDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_CreateProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Product)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).CreateProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CreateProductFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).CreateProduct(ctx, req.(*Product))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_GetProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).GetProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetProductFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).GetProduct(ctx, req.(*IDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_ListProducts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListProductsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).ListProducts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListProductsFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).ListProducts(ctx, req.(*ListProductsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_UpdateProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).UpdateProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UpdateProductFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).UpdateProduct(ctx, req.(*UpdateProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_DeleteProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).DeleteProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DeleteProductFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).DeleteProduct(ctx, req.(*IDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_ProductImageUploadURL_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).ProductImageUploadURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProductImageUploadURLFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).ProductImageUploadURL(ctx, req.(*IDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_ProductImageURLs_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).ProductImageURLs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProductImageURLsFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).ProductImageURLs(ctx, req.(*IDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_CreateOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).CreateOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CreateOrderFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).CreateOrder(ctx, req.(*CreateOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_GetOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).GetOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetOrderFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).GetOrder(ctx, req.(*IDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuConnect_ListOrders_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuConnectServer).ListOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListOrdersFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuConnectServer).ListOrders(ctx, req.(*ListOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LuConnectServiceDesc is the grpc.ServiceDesc for the LuConnect service.
var LuConnectServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LuConnectServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: _LuConnect_Ping_Handler},
		{MethodName: "Register", Handler: _LuConnect_Register_Handler},
		{MethodName: "Login", Handler: _LuConnect_Login_Handler},
		{MethodName: "RefreshToken", Handler: _LuConnect_RefreshToken_Handler},
		{MethodName: "WhoAmI", Handler: _LuConnect_WhoAmI_Handler},
		{MethodName: "CreateClient", Handler: _LuConnect_CreateClient_Handler},
		{MethodName: "GetClient", Handler: _LuConnect_GetClient_Handler},
		{MethodName: "ListClients", Handler: _LuConnect_ListClients_Handler},
		{MethodName: "UpdateClient", Handler: _LuConnect_UpdateClient_Handler},
		{MethodName: "DeleteClient", Handler: _LuConnect_DeleteClient_Handler},
		{MethodName: "CreateProduct", Handler: _LuConnect_CreateProduct_Handler},
		{MethodName: "GetProduct", Handler: _LuConnect_GetProduct_Handler},
		{MethodName: "ListProducts", Handler: _LuConnect_ListProducts_Handler},
		{MethodName: "UpdateProduct", Handler: _LuConnect_UpdateProduct_Handler},
		{MethodName: "DeleteProduct", Handler: _LuConnect_DeleteProduct_Handler},
		{MethodName: "ProductImageUploadURL", Handler: _LuConnect_ProductImageUploadURL_Handler},
		{MethodName: "ProductImageURLs", Handler: _LuConnect_ProductImageURLs_Handler},
		{MethodName: "CreateOrder", Handler: _LuConnect_CreateOrder_Handler},
		{MethodName: "GetOrder", Handler: _LuConnect_GetOrder_Handler},
		{MethodName: "ListOrders", Handler: _LuConnect_ListOrders_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "luconnect/v1/luconnect.json",
}
