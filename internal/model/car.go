package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Car listing status. Transitions are free-form: an owner may relist a
// sold car by setting it back to available.
const (
	CarStatusAvailable = "available"
	CarStatusSold      = "sold"
)

// Car condition
const (
	CarStateNew  = "new"
	CarStateUsed = "used"
)

// Car represents a listing. Images holds 1-5 upload URLs in the order
// they were submitted; MainPhotoIndex points at the cover photo.
type Car struct {
	ID             uuid.UUID       `json:"id"`
	Owner          uuid.UUID       `json:"owner"`
	Make           string          `json:"make"`
	Model          string          `json:"model"`
	Price          decimal.Decimal `json:"price"`
	Status         string          `json:"status"`
	State          string          `json:"state"`
	Location       string          `json:"location"`
	Description    string          `json:"description"`
	BodyType       string          `json:"body_type"`
	Images         []string        `json:"images"`
	MainPhotoIndex int             `json:"mainPhotoIndex"`
	CreatedOn      time.Time       `json:"created_on"`
}
