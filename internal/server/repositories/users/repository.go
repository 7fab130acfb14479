package users

import (
	"context"

	"github.com/luconnect/luconnect/internal/server/models"
)

// Repository is the credential store. Username and email uniqueness is
// enforced by the database; Exists is advisory only.
type Repository interface {
	Exists(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}
