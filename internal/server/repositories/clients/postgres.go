package clients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/luconnect/luconnect/internal/common"
	"github.com/luconnect/luconnect/internal/dbx"
	"github.com/luconnect/luconnect/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, email, cpf string) (bool, error) {
	query :=
		`SELECT EXISTS(SELECT 1 FROM clients WHERE email = $1 OR cpf = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email, cpf).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	query :=
		`INSERT INTO clients (name, email, cpf)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	if err := r.db.QueryRowContext(ctx, query, client.Name, client.Email, client.CPF).Scan(&client.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	return client, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	query :=
		`SELECT id, name, email, cpf FROM clients
		 WHERE id = $1
		 `

	c := &models.Client{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.CPF)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	return c, nil
}

// List returns clients ordered by id. Name matches case-insensitively as a
// substring; email matches exactly.
func (r *PostgresRepository) List(ctx context.Context, filter models.ClientFilter) ([]models.Client, error) {
	query :=
		`SELECT id, name, email, cpf FROM clients
		 WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR email = $2)
		 ORDER BY id
		 OFFSET $3
		 LIMIT NULLIF($4, 0)
		 `

	rows, err := r.db.QueryContext(ctx, query, filter.Name, filter.Email, filter.Offset, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	defer rows.Close()

	result := make([]models.Client, 0)
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CPF); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update applies the non-nil fields of upd.
func (r *PostgresRepository) Update(ctx context.Context, id int64, upd models.ClientUpdate) (*models.Client, error) {
	query :=
		`UPDATE clients
		 SET name = COALESCE($1, name),
		     email = COALESCE($2, email),
		     cpf = COALESCE($3, cpf)
		 WHERE id = $4
		 RETURNING id, name, email, cpf
		 `

	c := &models.Client{}
	err := r.db.QueryRowContext(ctx, query, upd.Name, upd.Email, upd.CPF, id).Scan(&c.ID, &c.Name, &c.Email, &c.CPF)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM clients WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if dbx.HasCode(err, dbx.CodeForeignKeyViolation) {
			return fmt.Errorf("%w: client has orders: %w", common.ErrorConflict, err)
		}
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
