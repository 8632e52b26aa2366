package store

import (
	"context"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStore is the order collection view consumed by the service layer
type OrderStore interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	FindOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	FindOrdersByCar(ctx context.Context, carID uuid.UUID) ([]model.Order, error)
	UpdateOrderAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Order, error)
}

// CreateOrder inserts a new order in the pending state
func (s *Store) CreateOrder(_ context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = newID()
	order.Status = model.OrderStatusPending
	order.CreatedOn = s.now()
	s.orders = append(s.orders, *order)
	return nil
}

// FindOrderByID scans for an order by id
func (s *Store) FindOrderByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

// FindOrdersByCar returns every order placed against the given listing
func (s *Store) FindOrdersByCar(_ context.Context, carID uuid.UUID) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Order
	for i := range s.orders {
		if s.orders[i].CarID == carID {
			out = append(out, s.orders[i])
		}
	}
	return out, nil
}

// UpdateOrderAmount mutates the offered amount in place
func (s *Store) UpdateOrderAmount(_ context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Amount = amount
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, ErrNotFound
}
