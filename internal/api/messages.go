package api

import "time"

type Empty struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// User is the public view of an account; it never carries the password hash.
type User struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse answers Login and RefreshToken. RefreshToken is only set by
// Login.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type WhoAmIResponse struct {
	Username string `json:"username"`
}

// IDRequest addresses a single record.
type IDRequest struct {
	ID int64 `json:"id"`
}

type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

type ListClientsRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Offset int    `json:"offset,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type ListClientsResponse struct {
	Clients []Client `json:"clients"`
}

type UpdateClientRequest struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	CPF   *string `json:"cpf,omitempty"`
}

type Product struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	PriceCents  int64      `json:"price_cents"`
	Barcode     *string    `json:"barcode,omitempty"`
	Section     *string    `json:"section,omitempty"`
	Stock       int32      `json:"stock"`
	ExpiresOn   *time.Time `json:"expires_on,omitempty"`
	Images      []string   `json:"images,omitempty"`
}

type ListProductsRequest struct {
	Section     string `json:"section,omitempty"`
	OnlyInStock bool   `json:"only_in_stock,omitempty"`
	Offset      int    `json:"offset,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}

type ListProductsResponse struct {
	Products []Product `json:"products"`
}

type UpdateProductRequest struct {
	ID          int64      `json:"id"`
	Description *string    `json:"description,omitempty"`
	PriceCents  *int64     `json:"price_cents,omitempty"`
	Barcode     *string    `json:"barcode,omitempty"`
	Section     *string    `json:"section,omitempty"`
	Stock       *int32     `json:"stock,omitempty"`
	ExpiresOn   *time.Time `json:"expires_on,omitempty"`
}

type ImageUploadURLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type ImageURLsResponse struct {
	URLs []string `json:"urls"`
}

type CreateOrderRequest struct {
	ClientID int64             `json:"client_id"`
	Items    []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

type Order struct {
	ID         int64       `json:"id"`
	ClientID   int64       `json:"client_id"`
	TotalCents int64       `json:"total_cents"`
	CreatedAt  time.Time   `json:"created_at"`
	Client     *Client     `json:"client,omitempty"`
	Items      []OrderItem `json:"items"`
}

type OrderItem struct {
	ID         int64    `json:"id"`
	ProductID  int64    `json:"product_id"`
	Quantity   int32    `json:"quantity"`
	PriceCents int64    `json:"price_cents"`
	Product    *Product `json:"product,omitempty"`
}

// ListOrdersRequest lists all orders, or one client's when ClientID is set.
type ListOrdersRequest struct {
	ClientID int64 `json:"client_id,omitempty"`
	Offset   int   `json:"offset,omitempty"`
	Limit    int   `json:"limit,omitempty"`
}

type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
}
