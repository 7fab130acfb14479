package products

import (
	"context"

	"github.com/luconnect/luconnect/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	AppendImage(ctx context.Context, id int64, key string) error
	// DecrementStock removes qty units and returns the unit price. It never
	// takes stock below zero.
	DecrementStock(ctx context.Context, id int64, qty int32) (int64, error)
}
