package ports

import (
	"context"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
//
// Create must rely on the storage layer's uniqueness constraint for
// usernames and surface domain.ErrAccountExists on violation; a
// read-then-write existence check is race-prone and is not acceptable.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
}
