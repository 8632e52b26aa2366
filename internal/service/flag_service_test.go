package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"
	"github.com/Lucky-tech10/auto-mart-api/internal/store"
	"github.com/Lucky-tech10/auto-mart-api/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFlag(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewFlagService(s, s)
	owner := seedServiceUser(t, s, "owner@test.com", model.RoleUser)
	reporter := seedServiceUser(t, s, "reporter@test.com", model.RoleUser)
	car := seedListing(t, s, owner.ID, "Toyota", model.CarStatusAvailable, 25000)

	flag, err := svc.CreateFlag(ctx, reporter.ID, CreateFlagRequest{
		CarID:       car.ID.String(),
		Reason:      "pricing",
		Description: "Price is far above market value",
	})
	require.NoError(t, err)
	assert.Equal(t, car.ID, flag.CarID)
	assert.Equal(t, reporter.ID, flag.Reporter)
	assert.Equal(t, "pricing", flag.Reason)
	assert.NotEqual(t, uuid.Nil, flag.ID)
}

func TestCreateFlagDuplicate(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewFlagService(s, s)
	owner := seedServiceUser(t, s, "owner@test.com", model.RoleUser)
	reporter := seedServiceUser(t, s, "reporter@test.com", model.RoleUser)
	other := seedServiceUser(t, s, "other@test.com", model.RoleUser)
	car := seedListing(t, s, owner.ID, "Toyota", model.CarStatusAvailable, 25000)

	_, err := svc.CreateFlag(ctx, reporter.ID, CreateFlagRequest{CarID: car.ID.String(), Reason: "pricing"})
	require.NoError(t, err)

	// Same reporter, same car: rejected even with a different reason
	_, err = svc.CreateFlag(ctx, reporter.ID, CreateFlagRequest{CarID: car.ID.String(), Reason: "weird demands"})
	require.Error(t, err)
	assert.EqualError(t, err, "You have already flagged this car")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	// A different reporter may still flag the same car
	_, err = svc.CreateFlag(ctx, other.ID, CreateFlagRequest{CarID: car.ID.String(), Reason: "pricing"})
	assert.NoError(t, err)
}

func TestCreateFlagOwnCar(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewFlagService(s, s)
	owner := seedServiceUser(t, s, "owner@test.com", model.RoleUser)
	car := seedListing(t, s, owner.ID, "Toyota", model.CarStatusAvailable, 25000)
	soldCar := seedListing(t, s, owner.ID, "Honda", model.CarStatusSold, 18000)

	_, err := svc.CreateFlag(ctx, owner.ID, CreateFlagRequest{CarID: car.ID.String(), Reason: "pricing"})
	require.Error(t, err)
	assert.EqualError(t, err, "You cannot flag your own car")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	// The self-dealing error wins even when the car is no longer available
	_, err = svc.CreateFlag(ctx, owner.ID, CreateFlagRequest{CarID: soldCar.ID.String(), Reason: "pricing"})
	require.Error(t, err)
	assert.EqualError(t, err, "You cannot flag your own car")
}

func TestCreateFlagUnavailableCar(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewFlagService(s, s)
	owner := seedServiceUser(t, s, "owner@test.com", model.RoleUser)
	reporter := seedServiceUser(t, s, "reporter@test.com", model.RoleUser)
	sold := seedListing(t, s, owner.ID, "Toyota", model.CarStatusSold, 25000)

	_, soldErr := svc.CreateFlag(ctx, reporter.ID, CreateFlagRequest{CarID: sold.ID.String(), Reason: "pricing"})
	_, absentErr := svc.CreateFlag(ctx, reporter.ID, CreateFlagRequest{CarID: uuid.NewString(), Reason: "pricing"})

	require.Error(t, soldErr)
	require.Error(t, absentErr)
	assert.EqualError(t, soldErr, "Car not found or not available")
	assert.Equal(t, soldErr.Error(), absentErr.Error())
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(soldErr))
}
