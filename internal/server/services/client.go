package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/luconnect/luconnect/internal/common"
	"github.com/luconnect/luconnect/internal/logging"
	"github.com/luconnect/luconnect/internal/server/models"
	"github.com/luconnect/luconnect/internal/server/repositories/repomanager"
)

type ClientService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewClientService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *ClientService {
	return &ClientService{db: db, repomanager: m, log: log}
}

// Create stores a client. Email and CPF collisions yield common.ErrorConflict.
func (s *ClientService) Create(ctx context.Context, c models.Client) (*models.Client, error) {
	c.Name = common.Truncate(strings.TrimSpace(c.Name), common.MaxFieldLength)
	c.Email = common.Truncate(strings.TrimSpace(c.Email), common.MaxFieldLength)
	c.CPF = strings.TrimSpace(c.CPF)

	if err := validateStruct(c); err != nil {
		return nil, err
	}

	repo := s.repomanager.Clients(s.db)

	exists, err := repo.Exists(ctx, c.Email, c.CPF)
	if err != nil {
		return nil, fmt.Errorf("error checking client: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: email or cpf already registered", common.ErrorConflict)
	}

	created, err := repo.Create(ctx, &c)
	if err != nil {
		return nil, fmt.Errorf("error creating client: %w", err)
	}

	s.log.Info(ctx, "client created", "id", created.ID)
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (*models.Client, error) {
	return s.repomanager.Clients(s.db).GetByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context, filter models.ClientFilter) ([]models.Client, error) {
	if filter.Offset < 0 || filter.Limit < 0 {
		return nil, fmt.Errorf("%w: offset and limit must not be negative", common.ErrorValidation)
	}
	return s.repomanager.Clients(s.db).List(ctx, filter)
}

// Update applies the fields present in upd. Blank strings count as absent.
func (s *ClientService) Update(ctx context.Context, id int64, upd models.ClientUpdate) (*models.Client, error) {
	upd.Name = common.TruncatePtr(upd.Name, common.MaxFieldLength)
	upd.Email = common.TruncatePtr(upd.Email, common.MaxFieldLength)
	upd.CPF = common.TruncatePtr(upd.CPF, 11)

	if err := validateStruct(upd); err != nil {
		return nil, err
	}

	c, err := s.repomanager.Clients(s.db).Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("error updating client %d: %w", id, err)
	}

	s.log.Info(ctx, "client updated", "id", id)
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Clients(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting client %d: %w", id, err)
	}
	s.log.Info(ctx, "client deleted", "id", id)
	return nil
}
