package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles. The first registered account becomes the admin, everyone
// after that is a regular user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a marketplace account
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedOn time.Time `json:"created_on"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
