// Package grpc exposes the LuConnect services over gRPC: the service
// handlers, bearer token authentication and request logging.
package grpc

import (
	"context"
	"net"

	"github.com/luconnect/luconnect/internal/api"
	"github.com/luconnect/luconnect/internal/logging"
	"github.com/luconnect/luconnect/internal/server/models"
	"github.com/luconnect/luconnect/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type UserService interface {
	Register(ctx context.Context, in models.NewUser) (*models.PublicUser, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Authorize(ctx context.Context, token string) (string, error)
}

type ClientService interface {
	Create(ctx context.Context, c models.Client) (*models.Client, error)
	Get(ctx context.Context, id int64) (*models.Client, error)
	List(ctx context.Context, filter models.ClientFilter) ([]models.Client, error)
	Update(ctx context.Context, id int64, upd models.ClientUpdate) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
}

type ProductService interface {
	Create(ctx context.Context, p models.Product) (*models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	ImageUploadURL(ctx context.Context, productID int64) (string, string, error)
	ImageURLs(ctx context.Context, productID int64) ([]string, error)
}

type OrderService interface {
	Create(ctx context.Context, in models.NewOrder) (*models.Order, error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, clientID int64, offset, limit int) ([]models.Order, error)
}

type GRPCServer struct {
	api.UnimplementedLuConnectServer
	address  string
	users    UserService
	clients  ClientService
	products ProductService
	orders   OrderService
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, cs ClientService, ps ProductService, os OrderService) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		users:    us,
		clients:  cs,
		products: ps,
		orders:   os,
	}
}

// NewServer builds the grpc.Server with interceptors, the LuConnect service
// and the standard health service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	api.RegisterLuConnectServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
