package ports

import (
	"context"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
)

// Actor identifies the authenticated account performing an operation, as
// extracted from a verified session token.
type Actor struct {
	ID       int64
	Username string
	Role     domain.Role
}

// RegisterInput carries the fields for provisioning a new account.
// Requester is the admin performing the registration (for the audit trail).
type RegisterInput struct {
	Requester Actor
	Username  string
	Password  string
	Role      domain.Role
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token    string
	Username string
	Role     domain.Role
}

// AuthService defines authentication use cases.
type AuthService interface {
	// Login verifies credentials and issues a signed, time-limited token.
	// Absent account and wrong password are indistinguishable to the
	// caller: both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Register creates a new account. Only reachable through an
	// admin-gated route; role validity is still checked here.
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
}
