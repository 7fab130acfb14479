package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/luconnect/luconnect/internal/common"
	"github.com/luconnect/luconnect/internal/dbx"
	"github.com/luconnect/luconnect/internal/server/models"
)

const productColumns = `id, description, price_cents, barcode, section, stock, expires_on, images`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// scanProduct reads one row of productColumns. The images array arrives in
// Postgres text form and is decoded with pgtype.
func scanProduct(row scanner, m *pgtype.Map) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(&p.ID, &p.Description, &p.PriceCents, &p.Barcode, &p.Section,
		&p.Stock, &p.ExpiresOn, m.SQLScanner(&p.Images))
	if err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	query :=
		`INSERT INTO products (description, price_cents, barcode, section, stock, expires_on, images)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id
		 `

	images := product.Images
	if images == nil {
		images = []string{}
	}

	err := r.db.QueryRowContext(ctx, query,
		product.Description, product.PriceCents, product.Barcode, product.Section,
		product.Stock, product.ExpiresOn, images).Scan(&product.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	product.Images = images
	return product, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query :=
		`SELECT ` + productColumns + ` FROM products
		 WHERE id = $1
		 `

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id), pgtype.NewMap())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query :=
		`SELECT ` + productColumns + ` FROM products
		 WHERE ($1 = '' OR section = $1)
		   AND (NOT $2 OR stock > 0)
		 ORDER BY id
		 OFFSET $3
		 LIMIT NULLIF($4, 0)
		 `

	rows, err := r.db.QueryContext(ctx, query, filter.Section, filter.OnlyInStock, filter.Offset, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	defer rows.Close()

	m := pgtype.NewMap()
	result := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows, m)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update applies the non-nil fields of upd.
func (r *PostgresRepository) Update(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error) {
	query :=
		`UPDATE products
		 SET description = COALESCE($1, description),
		     price_cents = COALESCE($2, price_cents),
		     barcode = COALESCE($3, barcode),
		     section = COALESCE($4, section),
		     stock = COALESCE($5, stock),
		     expires_on = COALESCE($6, expires_on)
		 WHERE id = $7
		 RETURNING ` + productColumns

	row := r.db.QueryRowContext(ctx, query,
		upd.Description, upd.PriceCents, upd.Barcode, upd.Section, upd.Stock, upd.ExpiresOn, id)

	p, err := scanProduct(row, pgtype.NewMap())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM products WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if dbx.HasCode(err, dbx.CodeForeignKeyViolation) {
			return fmt.Errorf("%w: product is referenced by orders: %w", common.ErrorConflict, err)
		}
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	return requireOneRow(res)
}

func (r *PostgresRepository) AppendImage(ctx context.Context, id int64, key string) error {
	query :=
		`UPDATE products SET images = array_append(images, $1)
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, key, id)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	return requireOneRow(res)
}

// DecrementStock returns common.ErrorNotFound for an unknown product and
// common.ErrInsufficientStock when fewer than qty units remain.
func (r *PostgresRepository) DecrementStock(ctx context.Context, id int64, qty int32) (int64, error) {
	query :=
		`UPDATE products SET stock = stock - $1
		 WHERE id = $2 AND stock - $1 >= 0
		 RETURNING price_cents
		 `

	var price int64
	err := r.db.QueryRowContext(ctx, query, qty, id).Scan(&price)
	if err == nil {
		return price, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	var exists bool
	err = r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	switch {
	case err != nil:
		return 0, fmt.Errorf("db error: %w", dbx.Classify(err))
	case !exists:
		return 0, fmt.Errorf("product %d: %w", id, common.ErrorNotFound)
	default:
		return 0, fmt.Errorf("product %d: %w", id, common.ErrInsufficientStock)
	}
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
