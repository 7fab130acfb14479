package orders

import (
	"context"

	"github.com/luconnect/luconnect/internal/server/models"
)

type Repository interface {
	// Create inserts the order and its items. Run it inside a transaction
	// together with the stock updates.
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, clientID int64, offset, limit int) ([]models.Order, error)
}
