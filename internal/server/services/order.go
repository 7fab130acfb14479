package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/luconnect/luconnect/internal/common"
	"github.com/luconnect/luconnect/internal/dbx"
	"github.com/luconnect/luconnect/internal/logging"
	"github.com/luconnect/luconnect/internal/server/models"
	"github.com/luconnect/luconnect/internal/server/repositories/repomanager"
)

type OrderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewOrderService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *OrderService {
	return &OrderService{db: db, repomanager: m, log: log}
}

// Create places an order. Stock is taken and the order with its items is
// written in one transaction, so a failure on any item leaves stock
// untouched. Items for the same product are merged.
func (s *OrderService) Create(ctx context.Context, in models.NewOrder) (*models.Order, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	items, err := mergeItems(in.Items)
	if err != nil {
		return nil, err
	}

	var placed *models.Order
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		client, err := s.repomanager.Clients(tx).GetByID(ctx, in.ClientID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("client %d: %w", in.ClientID, err)
			}
			return err
		}

		productRepo := s.repomanager.Products(tx)
		order := &models.Order{ClientID: in.ClientID, Client: client, Items: make([]models.OrderItem, 0, len(items))}

		for _, it := range items {
			price, err := productRepo.DecrementStock(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return err
			}
			if price > 0 && int64(it.Quantity) > (math.MaxInt64-order.TotalCents)/price {
				return fmt.Errorf("%w: order total is too large", common.ErrorValidation)
			}
			order.TotalCents += price * int64(it.Quantity)
			order.Items = append(order.Items, models.OrderItem{
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				PriceCents: price,
			})
		}

		placed, err = s.repomanager.Orders(tx).Create(ctx, order)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating order: %w", err)
	}

	s.log.Info(ctx, "order created", "id", placed.ID, "client_id", in.ClientID)

	// Committed. On a failed re-read the items come back without product details.
	full, err := s.repomanager.Orders(s.db).GetByID(ctx, placed.ID)
	if err != nil {
		s.log.Warn(ctx, "order re-read failed", "id", placed.ID, "error", err)
		return placed, nil
	}
	return full, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	return s.repomanager.Orders(s.db).GetByID(ctx, id)
}

// List returns orders, optionally for one client.
func (s *OrderService) List(ctx context.Context, clientID int64, offset, limit int) ([]models.Order, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: offset and limit must not be negative", common.ErrorValidation)
	}
	return s.repomanager.Orders(s.db).List(ctx, clientID, offset, limit)
}

// mergeItems folds items for the same product into one line. A merged
// quantity above math.MaxInt32 is a validation error.
func mergeItems(items []models.NewOrderItem) ([]models.NewOrderItem, error) {
	merged := make([]models.NewOrderItem, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, it := range items {
		if i, ok := index[it.ProductID]; ok {
			sum := int64(merged[i].Quantity) + int64(it.Quantity)
			if sum > math.MaxInt32 {
				return nil, fmt.Errorf("%w: quantity for product %d is too large", common.ErrorValidation, it.ProductID)
			}
			merged[i].Quantity = int32(sum)
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, it)
	}
	return merged, nil
}
