package store

import (
	"context"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"

	"github.com/google/uuid"
)

// FlagStore is the flag collection view consumed by the service layer
type FlagStore interface {
	CreateFlag(ctx context.Context, flag *model.Flag) error
	FindFlagsByCar(ctx context.Context, carID uuid.UUID) ([]model.Flag, error)
	HasUserFlaggedCar(ctx context.Context, carID, userID uuid.UUID) bool
}

// CreateFlag inserts a new flag, assigning its id and creation timestamp
func (s *Store) CreateFlag(_ context.Context, flag *model.Flag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flag.ID = newID()
	flag.CreatedOn = s.now()
	s.flags = append(s.flags, *flag)
	return nil
}

// FindFlagsByCar returns every flag raised against the given listing
func (s *Store) FindFlagsByCar(_ context.Context, carID uuid.UUID) ([]model.Flag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Flag
	for i := range s.flags {
		if s.flags[i].CarID == carID {
			out = append(out, s.flags[i])
		}
	}
	return out, nil
}

// HasUserFlaggedCar reports whether this reporter already flagged this car
func (s *Store) HasUserFlaggedCar(_ context.Context, carID, userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.flags {
		if s.flags[i].CarID == carID && s.flags[i].Reporter == userID {
			return true
		}
	}
	return false
}
