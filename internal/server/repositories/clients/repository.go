package clients

import (
	"context"

	"github.com/luconnect/luconnect/internal/server/models"
)

type Repository interface {
	Exists(ctx context.Context, email, cpf string) (bool, error)
	Create(ctx context.Context, client *models.Client) (*models.Client, error)
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	List(ctx context.Context, filter models.ClientFilter) ([]models.Client, error)
	Update(ctx context.Context, id int64, upd models.ClientUpdate) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
}
