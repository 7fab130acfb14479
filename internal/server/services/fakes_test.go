package services

import (
	"context"
	"sync"
	"time"

	"github.com/luconnect/luconnect/internal/common"
	"github.com/luconnect/luconnect/internal/dbx"
	"github.com/luconnect/luconnect/internal/server/models"
	"github.com/luconnect/luconnect/internal/server/repositories/clients"
	"github.com/luconnect/luconnect/internal/server/repositories/orders"
	"github.com/luconnect/luconnect/internal/server/repositories/products"
	"github.com/luconnect/luconnect/internal/server/repositories/repomanager"
	"github.com/luconnect/luconnect/internal/server/repositories/users"
)

// fakeRepoMgr hands out the same in-memory repositories regardless of the
// DBTX, so transactions are only visible through the sqlmock expectations.
type fakeRepoMgr struct {
	repomanager.RepositoryManager
	users    *fakeUsersRepo
	clients  *fakeClientsRepo
	products *fakeProductsRepo
	orders   *fakeOrdersRepo
}

func newFakeRepoMgr() *fakeRepoMgr {
	return &fakeRepoMgr{
		users:    &fakeUsersRepo{byName: map[string]*models.User{}},
		clients:  &fakeClientsRepo{byID: map[int64]*models.Client{}},
		products: &fakeProductsRepo{byID: map[int64]*models.Product{}},
		orders:   &fakeOrdersRepo{byID: map[int64]*models.Order{}},
	}
}

func (m *fakeRepoMgr) Users(dbx.DBTX) users.Repository       { return m.users }
func (m *fakeRepoMgr) Clients(dbx.DBTX) clients.Repository   { return m.clients }
func (m *fakeRepoMgr) Products(dbx.DBTX) products.Repository { return m.products }
func (m *fakeRepoMgr) Orders(dbx.DBTX) orders.Repository     { return m.orders }

// fakeUsersRepo enforces uniqueness inside Create, like the database
// constraints do.
type fakeUsersRepo struct {
	mu     sync.Mutex
	byName map[string]*models.User
	nextID int64

	existsOverride *bool
	existsErr      error
	findErr        error
	createErr      error
	updated        map[int64]string
}

func (f *fakeUsersRepo) Exists(_ context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	if f.existsOverride != nil {
		return *f.existsOverride, nil
	}
	for _, u := range f.byName {
		if u.UserName == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsersRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, u := range f.byName {
		if u.UserName == user.UserName || u.Email == user.Email {
			return nil, common.ErrDuplicateCredential
		}
	}
	f.nextID++
	cp := *user
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	f.byName[cp.UserName] = &cp
	out := cp
	return &out, nil
}

func (f *fakeUsersRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byName {
		if u.ID == id {
			u.PasswordHash = hash
			if f.updated == nil {
				f.updated = map[int64]string{}
			}
			f.updated[id] = hash
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeClientsRepo struct {
	mu     sync.Mutex
	byID   map[int64]*models.Client
	nextID int64
	err    error
}

func (f *fakeClientsRepo) Exists(_ context.Context, email, cpf string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byID {
		if c.Email == email || c.CPF == cpf {
			return true, nil
		}
	}
	return false, f.err
}

func (f *fakeClientsRepo) Create(_ context.Context, c *models.Client) (*models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.byID[c.ID] = &cp
	return c, nil
}

func (f *fakeClientsRepo) GetByID(_ context.Context, id int64) (*models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientsRepo) List(_ context.Context, filter models.ClientFilter) ([]models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Client, 0, len(f.byID))
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.byID[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeClientsRepo) Update(_ context.Context, id int64, upd models.ClientUpdate) (*models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.CPF != nil {
		c.CPF = *upd.CPF
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientsRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeProductsRepo struct {
	mu     sync.Mutex
	byID   map[int64]*models.Product
	nextID int64
}

func (f *fakeProductsRepo) add(p models.Product) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p.ID = f.nextID
	if p.Images == nil {
		p.Images = []string{}
	}
	f.byID[p.ID] = &p
	return p.ID
}

func (f *fakeProductsRepo) Create(_ context.Context, p *models.Product) (*models.Product, error) {
	id := f.add(*p)
	p.ID = id
	return p, nil
}

func (f *fakeProductsRepo) GetByID(_ context.Context, id int64) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	cp.Images = append([]string{}, p.Images...)
	return &cp, nil
}

func (f *fakeProductsRepo) List(_ context.Context, _ models.ProductFilter) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Product, 0, len(f.byID))
	for id := int64(1); id <= f.nextID; id++ {
		if p, ok := f.byID[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductsRepo) Update(_ context.Context, id int64, upd models.ProductUpdate) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.PriceCents != nil {
		p.PriceCents = *upd.PriceCents
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductsRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeProductsRepo) AppendImage(_ context.Context, id int64, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	p.Images = append(p.Images, key)
	return nil
}

func (f *fakeProductsRepo) DecrementStock(_ context.Context, id int64, qty int32) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	if p.Stock-qty < 0 {
		return 0, common.ErrInsufficientStock
	}
	p.Stock -= qty
	return p.PriceCents, nil
}

type fakeOrdersRepo struct {
	mu     sync.Mutex
	byID   map[int64]*models.Order
	nextID int64
	getErr error
}

func (f *fakeOrdersRepo) Create(_ context.Context, o *models.Order) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	o.ID = f.nextID
	o.CreatedAt = time.Now()
	for i := range o.Items {
		o.Items[i].ID = int64(i + 1)
		o.Items[i].OrderID = o.ID
	}
	cp := *o
	f.byID[o.ID] = &cp
	return o, nil
}

func (f *fakeOrdersRepo) GetByID(_ context.Context, id int64) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	o, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrdersRepo) List(_ context.Context, clientID int64, _, _ int) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Order, 0)
	for id := f.nextID; id >= 1; id-- {
		if o, ok := f.byID[id]; ok && (clientID == 0 || o.ClientID == clientID) {
			out = append(out, *o)
		}
	}
	return out, nil
}
