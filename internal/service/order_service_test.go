package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"
	"github.com/Lucky-tech10/auto-mart-api/internal/store"
	"github.com/Lucky-tech10/auto-mart-api/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewOrderService(s, s, nil)
	owner := seedServiceUser(t, s, "owner@test.com", model.RoleUser)
	buyer := seedServiceUser(t, s, "buyer@test.com", model.RoleUser)
	car := seedListing(t, s, owner.ID, "Toyota", model.CarStatusAvailable, 25000)

	order, err := svc.CreateOrder(ctx, buyer.ID, CreateOrderRequest{CarID: car.ID.String(), Amount: decimal.NewFromInt(24000)})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, car.ID, order.CarID)
	assert.Equal(t, buyer.ID, order.Buyer)

	// No uniqueness constraint: a second order on the same car is fine
	_, err = svc.CreateOrder(ctx, buyer.ID, CreateOrderRequest{CarID: car.ID.String(), Amount: decimal.NewFromInt(23000)})
	assert.NoError(t, err)
}

func TestCreateOrderOwnCarAlwaysRejected(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewOrderService(s, s, nil)
	owner := seedServiceUser(t, s, "owner@test.com", model.RoleUser)
	car := seedListing(t, s, owner.ID, "Toyota", model.CarStatusAvailable, 25000)
	soldCar := seedListing(t, s, owner.ID, "Honda", model.CarStatusSold, 18000)

	_, err := svc.CreateOrder(ctx, owner.ID, CreateOrderRequest{CarID: car.ID.String(), Amount: decimal.NewFromInt(24000)})
	require.Error(t, err)
	assert.EqualError(t, err, "You cannot order your own car")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	// The self-dealing error wins even when the car is no longer available
	_, err = svc.CreateOrder(ctx, owner.ID, CreateOrderRequest{CarID: soldCar.ID.String(), Amount: decimal.NewFromInt(17000)})
	require.Error(t, err)
	assert.EqualError(t, err, "You cannot order your own car")
}

func TestCreateOrderAbsentAndSoldCollapse(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewOrderService(s, s, nil)
	owner := seedServiceUser(t, s, "owner@test.com", model.RoleUser)
	buyer := seedServiceUser(t, s, "buyer@test.com", model.RoleUser)
	sold := seedListing(t, s, owner.ID, "Toyota", model.CarStatusSold, 25000)

	_, soldErr := svc.CreateOrder(ctx, buyer.ID, CreateOrderRequest{CarID: sold.ID.String(), Amount: decimal.NewFromInt(24000)})
	_, absentErr := svc.CreateOrder(ctx, buyer.ID, CreateOrderRequest{CarID: uuid.NewString(), Amount: decimal.NewFromInt(24000)})

	// Absence and unavailability are indistinguishable to the caller
	require.Error(t, soldErr)
	require.Error(t, absentErr)
	assert.EqualError(t, soldErr, "Car not found or not available")
	assert.Equal(t, soldErr.Error(), absentErr.Error())
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(soldErr))
}

// Walks the documented offer-revision scenario: B orders A's car for
// 24000, revises to 26000, then A's own attempt is rejected.
func TestUpdateOrderPriceScenario(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewOrderService(s, s, nil)
	alice := seedServiceUser(t, s, "alice@test.com", model.RoleUser)
	bob := seedServiceUser(t, s, "bob@test.com", model.RoleUser)
	car := seedListing(t, s, alice.ID, "Toyota", model.CarStatusAvailable, 25000)

	order, err := svc.CreateOrder(ctx, bob.ID, CreateOrderRequest{CarID: car.ID.String(), Amount: decimal.NewFromInt(24000)})
	require.NoError(t, err)

	updated, err := svc.UpdateOrderPrice(ctx, order.ID, bob.ID, decimal.NewFromInt(26000))
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(26000)))

	// The car owner may not touch the buyer's offer
	_, err = svc.UpdateOrderPrice(ctx, order.ID, alice.ID, decimal.NewFromInt(20000))
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperr.StatusOf(err))
}

func TestUpdateOrderPriceChecksCarStillAvailable(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewOrderService(s, s, nil)
	owner := seedServiceUser(t, s, "owner@test.com", model.RoleUser)
	buyer := seedServiceUser(t, s, "buyer@test.com", model.RoleUser)
	car := seedListing(t, s, owner.ID, "Toyota", model.CarStatusAvailable, 25000)

	order, err := svc.CreateOrder(ctx, buyer.ID, CreateOrderRequest{CarID: car.ID.String(), Amount: decimal.NewFromInt(24000)})
	require.NoError(t, err)

	// The owner marking the car sold invalidates further revisions
	_, err = s.UpdateCarStatus(ctx, car.ID, model.CarStatusSold)
	require.NoError(t, err)

	_, err = svc.UpdateOrderPrice(ctx, order.ID, buyer.ID, decimal.NewFromInt(26000))
	require.Error(t, err)
	assert.EqualError(t, err, "Car not found or not available")
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}

func TestUpdateOrderPriceUnknownOrder(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewOrderService(s, s, nil)
	buyer := seedServiceUser(t, s, "buyer@test.com", model.RoleUser)

	_, err := svc.UpdateOrderPrice(ctx, uuid.New(), buyer.ID, decimal.NewFromInt(26000))
	require.Error(t, err)
	assert.EqualError(t, err, "Order not found")
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}

func TestCreateOrderAmountMustBePositive(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewOrderService(s, s, nil)
	owner := seedServiceUser(t, s, "owner@test.com", model.RoleUser)
	buyer := seedServiceUser(t, s, "buyer@test.com", model.RoleUser)
	car := seedListing(t, s, owner.ID, "Toyota", model.CarStatusAvailable, 25000)

	_, err := svc.CreateOrder(ctx, buyer.ID, CreateOrderRequest{CarID: car.ID.String(), Amount: decimal.Zero})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}
