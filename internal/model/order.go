package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatusPending is the state every new order starts in. The field is
// free-form storage; no other transition is exposed by the API.
const OrderStatusPending = "pending"

// Order is a purchase offer a buyer places on a listing. Amount is the
// offered price and may be revised by the buyer while the order is pending.
type Order struct {
	ID        uuid.UUID       `json:"id"`
	CarID     uuid.UUID       `json:"car_id"`
	Buyer     uuid.UUID       `json:"buyer"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedOn time.Time       `json:"created_on"`
}
