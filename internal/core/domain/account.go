package domain

import (
	"errors"
	"time"
)

// Role is a closed enumeration; free-text role strings never reach
// authorization logic.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCashier
}

var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrInvalidRole = errors.New("invalid role")

// Account models an authenticated actor in the system.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
