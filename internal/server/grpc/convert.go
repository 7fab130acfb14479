package grpc

import (
	"github.com/luconnect/luconnect/internal/api"
	"github.com/luconnect/luconnect/internal/server/models"
)

func userToAPI(u *models.PublicUser) *api.User {
	return &api.User{
		ID:        u.ID,
		Username:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func clientToAPI(c *models.Client) *api.Client {
	return &api.Client{ID: c.ID, Name: c.Name, Email: c.Email, CPF: c.CPF}
}

func clientFromAPI(c *api.Client) models.Client {
	return models.Client{Name: c.Name, Email: c.Email, CPF: c.CPF}
}

func productToAPI(p *models.Product) *api.Product {
	return &api.Product{
		ID:          p.ID,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Barcode:     p.Barcode,
		Section:     p.Section,
		Stock:       p.Stock,
		ExpiresOn:   p.ExpiresOn,
		Images:      p.Images,
	}
}

func productFromAPI(p *api.Product) models.Product {
	return models.Product{
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Barcode:     p.Barcode,
		Section:     p.Section,
		Stock:       p.Stock,
		ExpiresOn:   p.ExpiresOn,
	}
}

func orderToAPI(o *models.Order) *api.Order {
	out := &api.Order{
		ID:         o.ID,
		ClientID:   o.ClientID,
		TotalCents: o.TotalCents,
		CreatedAt:  o.CreatedAt,
		Items:      make([]api.OrderItem, 0, len(o.Items)),
	}
	if o.Client != nil {
		out.Client = clientToAPI(o.Client)
	}
	for _, it := range o.Items {
		item := api.OrderItem{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			PriceCents: it.PriceCents,
		}
		if it.Product != nil {
			item.Product = productToAPI(it.Product)
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func newOrderFromAPI(in *api.CreateOrderRequest) models.NewOrder {
	o := models.NewOrder{ClientID: in.ClientID, Items: make([]models.NewOrderItem, 0, len(in.Items))}
	for _, it := range in.Items {
		o.Items = append(o.Items, models.NewOrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return o
}
