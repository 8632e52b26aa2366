package service

import (
	"context"
	"strings"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"
	"github.com/Lucky-tech10/auto-mart-api/internal/store"
	"github.com/Lucky-tech10/auto-mart-api/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	CarID  string          `json:"car_id" binding:"required,uuid"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type UpdateOrderPriceRequest struct {
	NewPrice decimal.Decimal `json:"new_price" binding:"required"`
}

// OrderService covers purchase offers placed against listings
type OrderService interface {
	CreateOrder(ctx context.Context, buyerID uuid.UUID, req CreateOrderRequest) (*model.Order, error)
	UpdateOrderPrice(ctx context.Context, orderID, requesterID uuid.UUID, newPrice decimal.Decimal) (*model.Order, error)
}

type orderService struct {
	orders   store.OrderStore
	cars     store.CarStore
	notifier Notifier
}

// NewOrderService wires order operations. notifier may be nil.
func NewOrderService(orders store.OrderStore, cars store.CarStore, notifier Notifier) OrderService {
	return &orderService{orders: orders, cars: cars, notifier: notifier}
}

// CreateOrder places a pending offer on an available listing. A buyer may
// hold several orders on the same car; only self-dealing is rejected.
func (s *orderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, req CreateOrderRequest) (*model.Order, error) {
	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid car id")
	}
	if !req.Amount.IsPositive() {
		return nil, apperr.BadRequest("Amount must be greater than zero")
	}

	car, err := s.cars.FindCarByID(ctx, carID)
	if err != nil {
		return nil, apperr.NotFound("Car not found or not available")
	}
	// Self-dealing is rejected before the status check, so the owner of a
	// sold car still gets the policy error rather than a not-found.
	if car.Owner == buyerID {
		return nil, apperr.BadRequest("You cannot order your own car")
	}
	// Absence and unavailability collapse into the same signal so callers
	// cannot probe for cars that are off the market.
	if !strings.EqualFold(car.Status, model.CarStatusAvailable) {
		return nil, apperr.NotFound("Car not found or not available")
	}

	order := &model.Order{
		CarID:  carID,
		Buyer:  buyerID,
		Amount: req.Amount,
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(EventOrderCreated, order)
	}
	return order, nil
}

// UpdateOrderPrice lets the buyer revise a pending offer. The car is
// re-checked because its status may have changed since the order was
// placed.
func (s *orderService) UpdateOrderPrice(ctx context.Context, orderID, requesterID uuid.UUID, newPrice decimal.Decimal) (*model.Order, error) {
	if !newPrice.IsPositive() {
		return nil, apperr.BadRequest("Amount must be greater than zero")
	}

	order, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, apperr.NotFound("Order not found")
	}
	if order.Status != model.OrderStatusPending {
		return nil, apperr.BadRequest("Only pending orders can be updated")
	}

	car, err := s.cars.FindCarByID(ctx, order.CarID)
	if err != nil || !strings.EqualFold(car.Status, model.CarStatusAvailable) {
		return nil, apperr.NotFound("Car not found or not available")
	}

	// Only the buyer may revise their own offer, never the car owner
	if order.Buyer != requesterID {
		return nil, apperr.Unauthorized("Not authorized to access this resource")
	}

	updated, err := s.orders.UpdateOrderAmount(ctx, orderID, newPrice)
	if err != nil {
		return nil, apperr.NotFound("Order not found")
	}
	return updated, nil
}
