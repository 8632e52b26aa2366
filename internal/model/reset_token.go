package model

import (
	"time"

	"github.com/google/uuid"
)

// ResetTokenTTL bounds how long a password reset link stays valid
const ResetTokenTTL = 15 * time.Minute

// ResetToken records an outstanding password reset. TokenHash is the
// sha-256 of the raw token mailed to the user; the raw value is never
// stored. Tokens are single-use and expire after ResetTokenTTL.
type ResetToken struct {
	ID        uuid.UUID `json:"id"` // user id
	Email     string    `json:"email"`
	TokenHash string    `json:"-"`
	CreatedOn time.Time `json:"created_on"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token is past its expiry at the given time
func (t *ResetToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
