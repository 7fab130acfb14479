package client

import (
	"context"

	"github.com/luconnect/luconnect/internal/api"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, req api.RegisterRequest) (*api.User, error)
	Login(ctx context.Context, username string, password []byte) error
	Refresh(ctx context.Context) error
	WhoAmI(ctx context.Context) (string, error)
	Logout()

	ListClients(ctx context.Context, req api.ListClientsRequest) ([]api.Client, error)
	CreateClient(ctx context.Context, c api.Client) (*api.Client, error)
	GetClient(ctx context.Context, id int64) (*api.Client, error)
	DeleteClient(ctx context.Context, id int64) error

	ListProducts(ctx context.Context, req api.ListProductsRequest) ([]api.Product, error)
	CreateProduct(ctx context.Context, p api.Product) (*api.Product, error)
	ProductImageUploadURL(ctx context.Context, productID int64) (string, string, error)

	ListOrders(ctx context.Context, clientID int64) ([]api.Order, error)
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.Order, error)
	GetOrder(ctx context.Context, id int64) (*api.Order, error)
}
