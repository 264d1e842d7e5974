package domain

import "time"

// ActionKind identifies the class of a state-changing operation in the
// audit trail.
type ActionKind string

const (
	ActionUserCreated  ActionKind = "USER_CREATED"
	ActionStockAdded   ActionKind = "STOCK_ADDED"
	ActionStockUpdated ActionKind = "STOCK_UPDATED"
	ActionStockDeleted ActionKind = "STOCK_DELETED"
	ActionDrugSold     ActionKind = "DRUG_SOLD"
)

// ActivityLogEntry is an append-only audit record. Username is a snapshot
// taken at the time of the action, not a live reference, so the trail
// survives later account changes.
type ActivityLogEntry struct {
	ID        int64      `json:"id"`
	ActorID   int64      `json:"user_id"`
	Username  string     `json:"username"`
	Action    ActionKind `json:"action_type"`
	Details   string     `json:"details"`
	Timestamp time.Time  `json:"timestamp"`
}
