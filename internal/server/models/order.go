package models

import "time"

// Order is a client purchase with its line items.
type Order struct {
	ID         int64       `db:"id" json:"id"`
	ClientID   int64       `db:"client_id" json:"client_id"`
	TotalCents int64       `db:"total_cents" json:"total_cents"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	Client     *Client     `json:"client,omitempty"`
	Items      []OrderItem `json:"items"`
}

type OrderItem struct {
	ID         int64    `db:"id" json:"id"`
	OrderID    int64    `db:"order_id" json:"order_id"`
	ProductID  int64    `db:"product_id" json:"product_id"`
	Quantity   int32    `db:"quantity" json:"quantity"`
	PriceCents int64    `db:"price_cents" json:"price_cents"`
	Product    *Product `json:"product,omitempty"`
}

// NewOrder is the order creation input.
type NewOrder struct {
	ClientID int64          `validate:"required,gt=0"`
	Items    []NewOrderItem `validate:"required,min=1,dive"`
}

type NewOrderItem struct {
	ProductID int64 `validate:"required,gt=0"`
	Quantity  int32 `validate:"required,gt=0"`
}
