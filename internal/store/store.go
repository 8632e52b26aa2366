// Package store is the in-memory entity store backing the marketplace.
// All collections live in process memory and are scanned linearly; a
// single coarse mutex serializes every operation, including the car
// delete cascade, so no partial mutation is ever observable.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup or mutation targets a record
// that does not exist.
var ErrNotFound = errors.New("record not found")

// Store owns all entity collections. Records never hold live references
// to each other; relations are by id only.
type Store struct {
	mu          sync.Mutex
	users       []model.User
	cars        []model.Car
	orders      []model.Order
	flags       []model.Flag
	resetTokens []model.ResetToken

	now func() time.Time
}

// New returns an empty store using the wall clock
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty store with an injected clock, so tests
// can drive token expiry deterministically.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

func newID() uuid.UUID {
	return uuid.New()
}
