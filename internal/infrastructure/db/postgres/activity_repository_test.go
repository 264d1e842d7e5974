package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
)

func TestActivityRepository_Insert(t *testing.T) {
	mock := newMock(t)
	repo := NewActivityRepository(mock)

	mock.ExpectExec(`INSERT INTO activity_logs \(user_id,username,action_type,details,timestamp\)`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Insert(context.Background(), &domain.ActivityLogEntry{
		ActorID:   2,
		Username:  "bob",
		Action:    domain.ActionDrugSold,
		Details:   "Cashier sold 15 units of Paracetamol (Drug ID: 3)",
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
}

func TestActivityRepository_ListRecent_BoundedNewestFirst(t *testing.T) {
	mock := newMock(t)
	repo := NewActivityRepository(mock)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "user_id", "username", "action_type", "details", "timestamp"}).
		AddRow(int64(2), int64(2), "bob", "DRUG_SOLD", "Cashier sold 15 units of Paracetamol (Drug ID: 3)", now).
		AddRow(int64(1), int64(1), "admin", "STOCK_ADDED", "Admin added new drug: Paracetamol (Qty: 20, Price: 5.00)", now.Add(-time.Minute))
	mock.ExpectQuery(`SELECT id, user_id, username, action_type, details, timestamp FROM activity_logs ORDER BY timestamp DESC LIMIT 50`).
		WillReturnRows(rows)

	entries, err := repo.ListRecent(context.Background(), 50)
	if err != nil {
		t.Fatalf("list recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Action != domain.ActionDrugSold {
		t.Fatalf("expected newest entry first, got %+v", entries[0])
	}
}

func TestActivityRepository_ListAll_NoLimit(t *testing.T) {
	mock := newMock(t)
	repo := NewActivityRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "user_id", "username", "action_type", "details", "timestamp"})
	mock.ExpectQuery(`SELECT id, user_id, username, action_type, details, timestamp FROM activity_logs ORDER BY timestamp DESC$`).
		WillReturnRows(rows)

	entries, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty trail, got %d", len(entries))
	}
}
