package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/luconnect/luconnect/internal/common"
	"github.com/luconnect/luconnect/internal/dbx"
	"github.com/luconnect/luconnect/internal/server/models"
	"github.com/luconnect/luconnect/internal/server/repositories/repomanager"
	"github.com/luconnect/luconnect/internal/server/repositories/users"
	"github.com/luconnect/luconnect/internal/server/services"
)

// memUsers is an in-memory credential store. Create enforces uniqueness;
// with skipExists set, Exists always answers false so callers race on
// Create like they would against the database.
type memUsers struct {
	mu         sync.Mutex
	byName     map[string]*models.User
	nextID     int64
	skipExists bool
}

func (m *memUsers) Exists(_ context.Context, username, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.skipExists {
		return false, nil
	}
	for _, u := range m.byName {
		if u.UserName == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) Create(_ context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byName {
		if u.UserName == user.UserName || u.Email == user.Email {
			return nil, common.ErrDuplicateCredential
		}
	}
	m.nextID++
	cp := *user
	cp.ID = m.nextID
	cp.CreatedAt = time.Now()
	m.byName[cp.UserName] = &cp
	out := cp
	return &out, nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byName {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return common.ErrorNotFound
}

type memRepoMgr struct {
	repomanager.RepositoryManager
	users *memUsers
}

func (m *memRepoMgr) Users(dbx.DBTX) users.Repository { return m.users }

// stubUsers answers Authorize with a fixed subject or error.
type stubUsers struct {
	UserService
	subject string
	err     error
}

func (s stubUsers) Authorize(context.Context, string) (string, error) {
	return s.subject, s.err
}

type stubClients struct {
	ClientService
	list []models.Client
	err  error
}

func (s stubClients) List(context.Context, models.ClientFilter) ([]models.Client, error) {
	return s.list, s.err
}

func (s stubClients) Get(_ context.Context, id int64) (*models.Client, error) {
	for i := range s.list {
		if s.list[i].ID == id {
			return &s.list[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

type stubOrders struct {
	OrderService
	err error
}

func (s stubOrders) Create(context.Context, models.NewOrder) (*models.Order, error) {
	return nil, s.err
}

var _ UserService = (*services.UserService)(nil)
var _ ClientService = (*services.ClientService)(nil)
var _ ProductService = (*services.ProductService)(nil)
var _ OrderService = (*services.OrderService)(nil)
