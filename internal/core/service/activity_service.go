package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
	"github.com/pharmatrack/inventory-system/internal/core/ports"
)

const defaultRecentLimit = 50

// ActivityService owns the audit trail. Writes are best-effort: a failed
// insert is logged and dropped, never propagated to the operation that
// triggered it.
type ActivityService struct {
	repo        ports.ActivityRepository
	log         zerolog.Logger
	recentLimit int
}

func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger, recentLimit int) *ActivityService {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}
	return &ActivityService{repo: repo, log: log, recentLimit: recentLimit}
}

// Record appends an audit entry describing an already-committed mutation.
// Failure here must not abort the caller, so the error is swallowed after
// logging.
func (s *ActivityService) Record(ctx context.Context, actor ports.Actor, action domain.ActionKind, details string) {
	entry := &domain.ActivityLogEntry{
		ActorID:   actor.ID,
		Username:  actor.Username,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.log.Error().Err(err).
			Str("action", string(action)).
			Str("username", actor.Username).
			Msg("failed to record activity")
	}
}

// ListRecent returns the newest entries, capped at the configured limit.
func (s *ActivityService) ListRecent(ctx context.Context) ([]domain.ActivityLogEntry, error) {
	return s.repo.ListRecent(ctx, s.recentLimit)
}

// Report returns the full trail, newest first, for report export.
func (s *ActivityService) Report(ctx context.Context) ([]domain.ActivityLogEntry, error) {
	return s.repo.ListAll(ctx)
}
