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
	"golang.org/x/crypto/bcrypt"
)

func seedUserWithPassword(t *testing.T, s *store.Store, email, password string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{Email: email, FirstName: "Test", LastName: "User", Password: string(hashed), Role: model.RoleUser}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewUserService(s)
	user := seedUserWithPassword(t, s, "me@test.com", "secret123")

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.GetUser(ctx, uuid.New())
	require.Error(t, err)
	assert.EqualError(t, err, "User not found")
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewUserService(s)
	user := seedUserWithPassword(t, s, "me@test.com", "secret123")

	err := svc.UpdatePassword(ctx, user.ID, UpdatePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "brandnew1",
		ConfirmPassword: "brandnew1",
	})
	require.NoError(t, err)

	stored, err := s.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("brandnew1")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestUpdatePasswordRejections(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewUserService(s)
	user := seedUserWithPassword(t, s, "me@test.com", "secret123")

	err := svc.UpdatePassword(ctx, user.ID, UpdatePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "brandnew1",
		ConfirmPassword: "different",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "New password and confirmation do not match")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	err = svc.UpdatePassword(ctx, user.ID, UpdatePasswordRequest{
		CurrentPassword: "wrongpass",
		NewPassword:     "brandnew1",
		ConfirmPassword: "brandnew1",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Current password is incorrect")
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))

	err = svc.UpdatePassword(ctx, uuid.New(), UpdatePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "brandnew1",
		ConfirmPassword: "brandnew1",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}

// Re-using the current password as the new one is explicitly allowed
func TestUpdatePasswordSamePassword(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	svc := NewUserService(s)
	user := seedUserWithPassword(t, s, "me@test.com", "secret123")

	err := svc.UpdatePassword(ctx, user.ID, UpdatePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	stored, err := s.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}
