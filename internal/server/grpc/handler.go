package grpc

import (
	"context"

	"github.com/luconnect/luconnect/internal/api"
	"github.com/luconnect/luconnect/internal/common"
	"github.com/luconnect/luconnect/internal/server/models"
	"github.com/luconnect/luconnect/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.User, error) {
	u, err := s.users.Register(ctx, models.NewUser{
		UserName:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return userToAPI(u), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {
	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.TokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, req *api.Empty) (*api.WhoAmIResponse, error) {
	username, ok := UsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}
	return &api.WhoAmIResponse{Username: username}, nil
}

// ---- clients ----

func (s *GRPCServer) CreateClient(ctx context.Context, req *api.Client) (*api.Client, error) {
	c, err := s.clients.Create(ctx, clientFromAPI(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return clientToAPI(c), nil
}

func (s *GRPCServer) GetClient(ctx context.Context, req *api.IDRequest) (*api.Client, error) {
	c, err := s.clients.Get(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return clientToAPI(c), nil
}

func (s *GRPCServer) ListClients(ctx context.Context, req *api.ListClientsRequest) (*api.ListClientsResponse, error) {
	list, err := s.clients.List(ctx, models.ClientFilter{
		Name:   req.Name,
		Email:  req.Email,
		Offset: req.Offset,
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &api.ListClientsResponse{Clients: make([]api.Client, 0, len(list))}
	for i := range list {
		resp.Clients = append(resp.Clients, *clientToAPI(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) UpdateClient(ctx context.Context, req *api.UpdateClientRequest) (*api.Client, error) {
	c, err := s.clients.Update(ctx, req.ID, models.ClientUpdate{Name: req.Name, Email: req.Email, CPF: req.CPF})
	if err != nil {
		return nil, toStatus(err)
	}
	return clientToAPI(c), nil
}

func (s *GRPCServer) DeleteClient(ctx context.Context, req *api.IDRequest) (*api.Empty, error) {
	if err := s.clients.Delete(ctx, req.ID); err != nil {
		return nil, toStatus(err)
	}
	return &api.Empty{}, nil
}

// ---- products ----

func (s *GRPCServer) CreateProduct(ctx context.Context, req *api.Product) (*api.Product, error) {
	p, err := s.products.Create(ctx, productFromAPI(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return productToAPI(p), nil
}

func (s *GRPCServer) GetProduct(ctx context.Context, req *api.IDRequest) (*api.Product, error) {
	p, err := s.products.Get(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return productToAPI(p), nil
}

func (s *GRPCServer) ListProducts(ctx context.Context, req *api.ListProductsRequest) (*api.ListProductsResponse, error) {
	list, err := s.products.List(ctx, models.ProductFilter{
		Section:     req.Section,
		OnlyInStock: req.OnlyInStock,
		Offset:      req.Offset,
		Limit:       req.Limit,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &api.ListProductsResponse{Products: make([]api.Product, 0, len(list))}
	for i := range list {
		resp.Products = append(resp.Products, *productToAPI(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) UpdateProduct(ctx context.Context, req *api.UpdateProductRequest) (*api.Product, error) {
	p, err := s.products.Update(ctx, req.ID, models.ProductUpdate{
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Barcode:     req.Barcode,
		Section:     req.Section,
		Stock:       req.Stock,
		ExpiresOn:   req.ExpiresOn,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return productToAPI(p), nil
}

func (s *GRPCServer) DeleteProduct(ctx context.Context, req *api.IDRequest) (*api.Empty, error) {
	if err := s.products.Delete(ctx, req.ID); err != nil {
		return nil, toStatus(err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) ProductImageUploadURL(ctx context.Context, req *api.IDRequest) (*api.ImageUploadURLResponse, error) {
	key, url, err := s.products.ImageUploadURL(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.ImageUploadURLResponse{Key: key, URL: url}, nil
}

func (s *GRPCServer) ProductImageURLs(ctx context.Context, req *api.IDRequest) (*api.ImageURLsResponse, error) {
	urls, err := s.products.ImageURLs(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.ImageURLsResponse{URLs: urls}, nil
}

// ---- orders ----

func (s *GRPCServer) CreateOrder(ctx context.Context, req *api.CreateOrderRequest) (*api.Order, error) {
	o, err := s.orders.Create(ctx, newOrderFromAPI(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return orderToAPI(o), nil
}

func (s *GRPCServer) GetOrder(ctx context.Context, req *api.IDRequest) (*api.Order, error) {
	o, err := s.orders.Get(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return orderToAPI(o), nil
}

func (s *GRPCServer) ListOrders(ctx context.Context, req *api.ListOrdersRequest) (*api.ListOrdersResponse, error) {
	list, err := s.orders.List(ctx, req.ClientID, req.Offset, req.Limit)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &api.ListOrdersResponse{Orders: make([]api.Order, 0, len(list))}
	for i := range list {
		resp.Orders = append(resp.Orders, *orderToAPI(&list[i]))
	}
	return resp, nil
}

func tokenResponse(t *services.TokenPair) *api.TokenResponse {
	return &api.TokenResponse{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		ExpiresAt:    t.ExpiresAt,
	}
}
