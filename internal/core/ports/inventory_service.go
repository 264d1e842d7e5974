package ports

import (
	"context"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
)

// DrugInput carries the full field set for creating or replacing a drug.
type DrugInput struct {
	Name     string
	Dosage   string
	Quantity int
	Price    float64
	Brand    string
	Location string
}

// SellInput carries a sale request. IdempotencyKey is optional; when the
// same key is replayed the previous outcome is returned instead of
// depleting stock a second time.
type SellInput struct {
	Actor          Actor
	DrugID         int64
	Quantity       int
	IdempotencyKey string
}

// InventoryService defines the inventory ledger use cases.
type InventoryService interface {
	List(ctx context.Context) ([]domain.Drug, error)
	Create(ctx context.Context, actor Actor, input DrugInput) (*domain.Drug, error)
	Update(ctx context.Context, actor Actor, id int64, input DrugInput) (*domain.Drug, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	Sell(ctx context.Context, input SellInput) (*domain.Drug, error)
}
