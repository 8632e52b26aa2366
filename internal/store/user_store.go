package store

import (
	"context"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"

	"github.com/google/uuid"
)

// UserStore is the user collection view consumed by the service layer
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	CountUsers(ctx context.Context) int
}

// CreateUser inserts a new user, assigning its id and creation timestamp
func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = newID()
	user.CreatedOn = s.now()
	s.users = append(s.users, *user)
	return nil
}

// FindUserByEmail scans for a user by exact email match
func (s *Store) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// FindUserByID scans for a user by id
func (s *Store) FindUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateUserPassword replaces the stored password hash in place
func (s *Store) UpdateUserPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Password = passwordHash
			return nil
		}
	}
	return ErrNotFound
}

// CountUsers returns the number of registered users. The first account
// ever counted at zero becomes the admin.
func (s *Store) CountUsers(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
