package orders

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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	query :=
		`INSERT INTO orders (client_id, total_cents)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, order.ClientID, order.TotalCents).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	itemQuery :=
		`INSERT INTO order_items (order_id, product_id, quantity, price_cents)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err := r.db.QueryRowContext(ctx, itemQuery, order.ID, item.ProductID, item.Quantity, item.PriceCents).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
		}
	}

	return order, nil
}

const orderSelect = `SELECT o.id, o.client_id, o.total_cents, o.created_at, c.name, c.email, c.cpf
	 FROM orders o
	 JOIN clients c ON c.id = o.client_id
	 `

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	o := &models.Order{Client: &models.Client{}}
	if err := row.Scan(&o.ID, &o.ClientID, &o.TotalCents, &o.CreatedAt, &o.Client.Name, &o.Client.Email, &o.Client.CPF); err != nil {
		return nil, err
	}
	o.Client.ID = o.ClientID
	return o, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	query := orderSelect + `WHERE o.id = $1`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	if o.Items, err = r.items(ctx, o.ID); err != nil {
		return nil, err
	}

	return o, nil
}

// List returns orders newest first. A zero clientID lists every client's
// orders; a zero limit means no limit.
func (r *PostgresRepository) List(ctx context.Context, clientID int64, offset, limit int) ([]models.Order, error) {
	query := orderSelect +
		`WHERE ($1 = 0 OR o.client_id = $1)
		 ORDER BY o.created_at DESC, o.id DESC
		 OFFSET $2
		 LIMIT NULLIF($3, 0)
		 `

	rows, err := r.db.QueryContext(ctx, query, clientID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	result := make([]models.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("db error: %w", err)
	}
	rows.Close()

	for i := range result {
		if result[i].Items, err = r.items(ctx, result[i].ID); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *PostgresRepository) items(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	query :=
		`SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price_cents,
		        p.description, p.price_cents, p.barcode, p.section, p.stock, p.expires_on, p.images
		 FROM order_items oi
		 JOIN products p ON p.id = oi.product_id
		 WHERE oi.order_id = $1
		 ORDER BY oi.id
		 `

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	defer rows.Close()

	m := pgtype.NewMap()
	items := make([]models.OrderItem, 0)
	for rows.Next() {
		var it models.OrderItem
		p := &models.Product{}
		err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.PriceCents,
			&p.Description, &p.PriceCents, &p.Barcode, &p.Section, &p.Stock, &p.ExpiresOn, m.SQLScanner(&p.Images))
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		p.ID = it.ProductID
		if p.Images == nil {
			p.Images = []string{}
		}
		it.Product = p
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}
