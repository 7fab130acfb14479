// Package server wires the LuConnect server together: configuration,
// logging, the signing secret, Postgres with migrations, the optional Redis
// login limiter, the services and the gRPC endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/luconnect/luconnect/internal/logging"
	"github.com/luconnect/luconnect/internal/server/auth"
	"github.com/luconnect/luconnect/internal/server/config"
	"github.com/luconnect/luconnect/internal/server/ratelimit"
	"github.com/luconnect/luconnect/internal/server/repositories/repomanager"
	"github.com/luconnect/luconnect/internal/server/secret"
	"github.com/luconnect/luconnect/internal/server/services"

	gs "github.com/luconnect/luconnect/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	closeLimiter   func() error
	userService    *services.UserService
	clientService  *services.ClientService
	productService *services.ProductService
	orderService   *services.OrderService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	sm := secret.NewManager(c.SecretKey)
	key, err := sm.Get()
	if err != nil {
		return nil, fmt.Errorf("secret init error: %w", err)
	}
	if sm.Generated() {
		logger.Warn(ctx, "no secret key configured, using a generated one; tokens will not survive a restart")
	}

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.NewHasher(auth.Algorithm(c.PasswordAlgorithm), c.BcryptCost, auth.DefaultArgon2Params)
	tokens := auth.NewTokenService(key, c.AccessTokenValidityDuration, c.RefreshTokenValidityDuration)
	limiter, closeLimiter := ratelimit.New(c.RedisAddr, c.LoginRateLimit, c.LoginRateWindow, logger)

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		closeLimiter:   closeLimiter,
		userService:    services.NewUserService(db, rm, hasher, tokens, limiter, logger),
		clientService:  services.NewClientService(db, rm, logger),
		productService: services.NewProductService(db, rm, c, logger),
		orderService:   services.NewOrderService(db, rm, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.userService, app.clientService, app.productService, app.orderService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.closeLimiter(); err != nil {
		app.logger.Warn(ctx, "closing rate limiter", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "closing database", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
