package ports

import (
	"context"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
)

// ActivityRepository defines persistence for the append-only audit trail.
// Entries are never updated or deleted.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLogEntry) error
	// ListRecent returns at most limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityLogEntry, error)
	// ListAll returns the full trail, newest first, for report export.
	ListAll(ctx context.Context) ([]domain.ActivityLogEntry, error)
}
