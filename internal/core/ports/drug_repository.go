package ports

import (
	"context"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
)

// DrugRepository defines persistence operations for the inventory ledger.
type DrugRepository interface {
	// List returns all drugs ordered by id ascending.
	List(ctx context.Context) ([]domain.Drug, error)
	GetByID(ctx context.Context, id int64) (*domain.Drug, error)
	Create(ctx context.Context, drug *domain.Drug) (*domain.Drug, error)
	// Update replaces every field of the identified drug.
	Update(ctx context.Context, drug *domain.Drug) (*domain.Drug, error)
	Delete(ctx context.Context, id int64) error
	// Sell atomically decrements quantity by qty, but only when the
	// current quantity covers it. The check and the write must be a
	// single indivisible statement against the store so concurrent
	// sales can never both succeed on stock that covers only one.
	// Returns domain.ErrDrugNotFound when id is absent and
	// *domain.InsufficientStockError when stock does not cover qty.
	Sell(ctx context.Context, id int64, qty int) (*domain.Drug, error)
}
