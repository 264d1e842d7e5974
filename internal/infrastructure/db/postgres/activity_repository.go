package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
)

const activityColumns = "id, user_id, username, action_type, details, timestamp"

// ActivityRepository persists the append-only audit trail. There are no
// update or delete operations on purpose.
type ActivityRepository struct {
	db DB
}

func NewActivityRepository(db DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityLogEntry) error {
	query, args, err := psql.Insert("activity_logs").
		Columns("user_id", "username", "action_type", "details", "timestamp").
		Values(entry.ActorID, entry.Username, string(entry.Action), entry.Details, entry.Timestamp).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListRecent returns at most limit entries, newest first.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]domain.ActivityLogEntry, error) {
	builder := psql.Select(activityColumns).
		From("activity_logs").
		OrderBy("timestamp DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	return r.list(ctx, builder)
}

// ListAll returns the full trail, newest first, for report export.
func (r *ActivityRepository) ListAll(ctx context.Context) ([]domain.ActivityLogEntry, error) {
	return r.list(ctx, psql.Select(activityColumns).
		From("activity_logs").
		OrderBy("timestamp DESC"))
}

func (r *ActivityRepository) list(ctx context.Context, builder sq.SelectBuilder) ([]domain.ActivityLogEntry, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.ActivityLogEntry, 0)
	for rows.Next() {
		var e domain.ActivityLogEntry
		var action string
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Username, &action, &e.Details, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		e.Action = domain.ActionKind(action)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
