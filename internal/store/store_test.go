package store

import (
	"context"
	"testing"
	"time"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, s *Store, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, FirstName: "Test", LastName: "User", Password: "hash", Role: model.RoleUser}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func seedCar(t *testing.T, s *Store, owner uuid.UUID, status string) *model.Car {
	t.Helper()
	c := &model.Car{
		Owner:    owner,
		Make:     "Toyota",
		Model:    "Corolla",
		Price:    decimal.NewFromInt(15000),
		Status:   status,
		State:    model.CarStateUsed,
		BodyType: "sedan",
		Images:   []string{"https://img.test/1.jpg"},
	}
	require.NoError(t, s.CreateCar(context.Background(), c))
	return c
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	s := New()
	u := seedUser(t, s, "a@test.com")

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.CreatedOn.IsZero())

	got, err := s.FindUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@test.com", got.Email)
}

func TestFindUserByEmailNotFound(t *testing.T) {
	s := New()
	_, err := s.FindUserByEmail(context.Background(), "missing@test.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindCarsByStatusFoldsCase(t *testing.T) {
	s := New()
	owner := seedUser(t, s, "owner@test.com")
	seedCar(t, s, owner.ID, "Available")
	seedCar(t, s, owner.ID, model.CarStatusSold)

	cars, err := s.FindCarsByStatus(context.Background(), "AVAILABLE")
	require.NoError(t, err)
	assert.Len(t, cars, 1)
}

func TestDeleteCarCascadesOrdersAndFlags(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := seedUser(t, s, "owner@test.com")
	buyer := seedUser(t, s, "buyer@test.com")
	car := seedCar(t, s, owner.ID, model.CarStatusAvailable)
	other := seedCar(t, s, owner.ID, model.CarStatusAvailable)

	order := &model.Order{CarID: car.ID, Buyer: buyer.ID, Amount: decimal.NewFromInt(14000)}
	require.NoError(t, s.CreateOrder(ctx, order))
	keptOrder := &model.Order{CarID: other.ID, Buyer: buyer.ID, Amount: decimal.NewFromInt(15000)}
	require.NoError(t, s.CreateOrder(ctx, keptOrder))
	require.NoError(t, s.CreateFlag(ctx, &model.Flag{CarID: car.ID, Reporter: buyer.ID, Reason: "scam"}))

	removed, err := s.DeleteCar(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, car.ID, removed.ID)

	_, err = s.FindCarByID(ctx, car.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindOrderByID(ctx, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	flags, err := s.FindFlagsByCar(ctx, car.ID)
	require.NoError(t, err)
	assert.Empty(t, flags)

	// Records tied to other cars survive the cascade
	_, err = s.FindOrderByID(ctx, keptOrder.ID)
	assert.NoError(t, err)
}

func TestDeleteCarNotFound(t *testing.T) {
	s := New()
	_, err := s.DeleteCar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateInPlace(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := seedUser(t, s, "owner@test.com")
	car := seedCar(t, s, owner.ID, model.CarStatusAvailable)

	updated, err := s.UpdateCarStatus(ctx, car.ID, model.CarStatusSold)
	require.NoError(t, err)
	assert.Equal(t, model.CarStatusSold, updated.Status)

	updated, err = s.UpdateCarPrice(ctx, car.ID, decimal.NewFromInt(12500))
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(12500)))

	got, err := s.FindCarByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CarStatusSold, got.Status)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(12500)))
}

func TestResetTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	current := time.Now()
	s := NewWithClock(func() time.Time { return current })
	user := seedUser(t, s, "reset@test.com")

	tok, err := s.CreateResetToken(ctx, user.ID, user.Email, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, current.Add(model.ResetTokenTTL), tok.ExpiresAt)

	found, err := s.FindResetToken(ctx, user.Email, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	require.NoError(t, s.DeleteResetToken(ctx, "hash-1"))
	_, err = s.FindResetToken(ctx, user.Email, "hash-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPurgeExpiredTokens(t *testing.T) {
	ctx := context.Background()
	current := time.Now()
	s := NewWithClock(func() time.Time { return current })
	user := seedUser(t, s, "reset@test.com")

	_, err := s.CreateResetToken(ctx, user.ID, user.Email, "hash-old")
	require.NoError(t, err)

	// Fresh token created 14 minutes later survives the purge
	current = current.Add(14 * time.Minute)
	_, err = s.CreateResetToken(ctx, user.ID, user.Email, "hash-new")
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	assert.Equal(t, 1, s.PurgeExpiredTokens(ctx))

	_, err = s.FindResetToken(ctx, user.Email, "hash-old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindResetToken(ctx, user.Email, "hash-new")
	assert.NoError(t, err)
}

func TestHasUserFlaggedCar(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := seedUser(t, s, "owner@test.com")
	reporter := seedUser(t, s, "reporter@test.com")
	car := seedCar(t, s, owner.ID, model.CarStatusAvailable)

	assert.False(t, s.HasUserFlaggedCar(ctx, car.ID, reporter.ID))
	require.NoError(t, s.CreateFlag(ctx, &model.Flag{CarID: car.ID, Reporter: reporter.ID, Reason: "scam"}))
	assert.True(t, s.HasUserFlaggedCar(ctx, car.ID, reporter.ID))
	assert.False(t, s.HasUserFlaggedCar(ctx, car.ID, owner.ID))
}
