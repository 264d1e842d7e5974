package ports

import (
	"context"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
)

// ActivityRecorder is the side channel every mutating operation publishes
// to. Record never returns an error: a failed audit write is logged and
// swallowed so it cannot abort the primary operation it describes.
type ActivityRecorder interface {
	Record(ctx context.Context, actor Actor, action domain.ActionKind, details string)
}

// ActivityService exposes the audit trail to the admin surface.
type ActivityService interface {
	ActivityRecorder
	// ListRecent returns the newest entries, bounded by the service's
	// configured cap.
	ListRecent(ctx context.Context) ([]domain.ActivityLogEntry, error)
	// Report returns the complete trail for export.
	Report(ctx context.Context) ([]domain.ActivityLogEntry, error)
}
