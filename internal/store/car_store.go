package store

import (
	"context"
	"strings"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarStore is the car collection view consumed by the service layer
type CarStore interface {
	CreateCar(ctx context.Context, car *model.Car) error
	FindCarByID(ctx context.Context, id uuid.UUID) (*model.Car, error)
	FindCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Car, error)
	FindCarsByStatus(ctx context.Context, status string) ([]model.Car, error)
	AllCars(ctx context.Context) ([]model.Car, error)
	UpdateCarStatus(ctx context.Context, id uuid.UUID, status string) (*model.Car, error)
	UpdateCarPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*model.Car, error)
	DeleteCar(ctx context.Context, id uuid.UUID) (*model.Car, error)
}

// CreateCar inserts a new listing, assigning its id and creation timestamp
func (s *Store) CreateCar(_ context.Context, car *model.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	car.ID = newID()
	car.CreatedOn = s.now()
	car.Images = append([]string(nil), car.Images...)
	s.cars = append(s.cars, *car)
	return nil
}

// FindCarByID scans for a listing by id
func (s *Store) FindCarByID(_ context.Context, id uuid.UUID) (*model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.carIndex(id); i >= 0 {
		c := s.cars[i]
		return &c, nil
	}
	return nil, ErrNotFound
}

// FindCarsByOwner returns every listing owned by the given user
func (s *Store) FindCarsByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Car
	for i := range s.cars {
		if s.cars[i].Owner == ownerID {
			out = append(out, s.cars[i])
		}
	}
	return out, nil
}

// FindCarsByStatus returns listings whose status matches case-insensitively
func (s *Store) FindCarsByStatus(_ context.Context, status string) ([]model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Car
	for i := range s.cars {
		if strings.EqualFold(s.cars[i].Status, status) {
			out = append(out, s.cars[i])
		}
	}
	return out, nil
}

// AllCars returns every listing regardless of status
func (s *Store) AllCars(_ context.Context) ([]model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Car, len(s.cars))
	copy(out, s.cars)
	return out, nil
}

// UpdateCarStatus mutates the listing status in place
func (s *Store) UpdateCarStatus(_ context.Context, id uuid.UUID, status string) (*model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.carIndex(id); i >= 0 {
		s.cars[i].Status = status
		c := s.cars[i]
		return &c, nil
	}
	return nil, ErrNotFound
}

// UpdateCarPrice mutates the listing price in place
func (s *Store) UpdateCarPrice(_ context.Context, id uuid.UUID, price decimal.Decimal) (*model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.carIndex(id); i >= 0 {
		s.cars[i].Price = price
		c := s.cars[i]
		return &c, nil
	}
	return nil, ErrNotFound
}

// DeleteCar removes the listing and, in the same step, every order and
// flag referencing it. This is the one cross-collection invariant the
// store enforces itself.
func (s *Store) DeleteCar(_ context.Context, id uuid.UUID) (*model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.carIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	removed := s.cars[i]
	s.cars = append(s.cars[:i], s.cars[i+1:]...)

	orders := s.orders[:0]
	for _, o := range s.orders {
		if o.CarID != id {
			orders = append(orders, o)
		}
	}
	s.orders = orders

	flags := s.flags[:0]
	for _, f := range s.flags {
		if f.CarID != id {
			flags = append(flags, f)
		}
	}
	s.flags = flags

	return &removed, nil
}

// carIndex must be called with the mutex held
func (s *Store) carIndex(id uuid.UUID) int {
	for i := range s.cars {
		if s.cars[i].ID == id {
			return i
		}
	}
	return -1
}
