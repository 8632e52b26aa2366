package model

import (
	"time"

	"github.com/google/uuid"
)

// Flag is a fraud report raised against a listing. A reporter may flag a
// given car at most once.
type Flag struct {
	ID          uuid.UUID `json:"id"`
	CarID       uuid.UUID `json:"car_id"`
	Reporter    uuid.UUID `json:"reporter"`
	Reason      string    `json:"reason"`
	Description string    `json:"description,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}
