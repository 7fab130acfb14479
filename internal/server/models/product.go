package models

import "time"

// Product is a catalogue item. Prices are in cents; Images holds object
// storage keys.
type Product struct {
	ID          int64      `db:"id" json:"id"`
	Description string     `db:"description" json:"description" validate:"required,max=255"`
	PriceCents  int64      `db:"price_cents" json:"price_cents" validate:"gte=0"`
	Barcode     *string    `db:"barcode" json:"barcode,omitempty" validate:"omitempty,max=64"`
	Section     *string    `db:"section" json:"section,omitempty" validate:"omitempty,max=255"`
	Stock       int32      `db:"stock" json:"stock" validate:"gte=0"`
	ExpiresOn   *time.Time `db:"expires_on" json:"expires_on,omitempty"`
	Images      []string   `db:"images" json:"images,omitempty"`
}

// ProductUpdate is a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	Description *string    `json:"description,omitempty" validate:"omitempty,max=255"`
	PriceCents  *int64     `json:"price_cents,omitempty" validate:"omitempty,gte=0"`
	Barcode     *string    `json:"barcode,omitempty" validate:"omitempty,max=64"`
	Section     *string    `json:"section,omitempty" validate:"omitempty,max=255"`
	Stock       *int32     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ExpiresOn   *time.Time `json:"expires_on,omitempty"`
}

// ProductFilter narrows ListProducts. Zero values match everything.
type ProductFilter struct {
	Section     string
	OnlyInStock bool
	Offset      int
	Limit       int
}
