package repomanager

import (
	"context"
	"database/sql"

	"github.com/luconnect/luconnect/internal/dbx"
	"github.com/luconnect/luconnect/internal/server/repositories/clients"
	"github.com/luconnect/luconnect/internal/server/repositories/orders"
	"github.com/luconnect/luconnect/internal/server/repositories/products"
	"github.com/luconnect/luconnect/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// runs against *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Clients(db dbx.DBTX) clients.Repository
	Products(db dbx.DBTX) products.Repository
	Orders(db dbx.DBTX) orders.Repository
}
